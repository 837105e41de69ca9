package routes

import (
	"github.com/labstack/echo/v4"

	"office-inventory/internal/controllers"
)

func runIssueRouter(secureGroup *echo.Group, issueCtrl *controllers.IssueController) {
	secureGroup.GET("/issues", issueCtrl.GetIssues)
	secureGroup.GET("/issues/available-equipment", issueCtrl.GetAvailableEquipment)
	secureGroup.POST("/issues", issueCtrl.CreateIssue)
}

func runRetrievalRouter(secureGroup *echo.Group, retrievalCtrl *controllers.RetrievalController) {
	secureGroup.GET("/retrievals/candidates", retrievalCtrl.GetCandidates)
	secureGroup.POST("/retrievals", retrievalCtrl.PrepareRetrieval)
	secureGroup.POST("/retrievals/confirm", retrievalCtrl.ConfirmRetrieval)
}
