package routes

import (
	"github.com/labstack/echo/v4"

	"office-inventory/internal/controllers"
)

func runSectionRouter(secureGroup *echo.Group, sectionCtrl *controllers.SectionController) {
	sections := secureGroup.Group("/sections")
	{
		sections.GET("", sectionCtrl.GetSections)
		sections.POST("", sectionCtrl.CreateSection)
		sections.POST("/reset", sectionCtrl.ResetSections)
		sections.PUT("/:index", sectionCtrl.UpdateSection)
		sections.DELETE("/:index", sectionCtrl.DeleteSection)
	}
}
