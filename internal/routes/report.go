package routes

import (
	"github.com/labstack/echo/v4"

	"office-inventory/internal/controllers"
)

func runReportRouter(secureGroup *echo.Group, reportCtrl *controllers.ReportController) {
	secureGroup.GET("/reports/:kind", reportCtrl.GetReport)
}
