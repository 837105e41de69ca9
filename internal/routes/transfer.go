package routes

import (
	"github.com/labstack/echo/v4"

	"office-inventory/internal/controllers"
)

func runTransferRouter(secureGroup *echo.Group, transferCtrl *controllers.TransferController) {
	secureGroup.GET("/transfers", transferCtrl.GetTransfers)
	secureGroup.POST("/transfers", transferCtrl.CreateTransfer)
}
