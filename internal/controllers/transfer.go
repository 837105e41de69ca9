package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"office-inventory/internal/dto"
	"office-inventory/internal/services"
	"office-inventory/pkg/utils"
)

type TransferController struct {
	transferService services.TransferServiceInterface
	logger          *zap.Logger
}

func NewTransferController(transferService services.TransferServiceInterface, logger *zap.Logger) *TransferController {
	return &TransferController{transferService: transferService, logger: logger}
}

func (c *TransferController) GetTransfers(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.transferService.GetTransfers(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetTransfers: failed to list transfers", zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to list transfers", nil), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Transfer log loaded", http.StatusOK, total)
}

func (c *TransferController) CreateTransfer(ctx echo.Context) error {
	var payload dto.CreateTransferDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateTransfer: bind failed", zap.Error(err))
		return utils.ErrorResponse(ctx, badRequest("Invalid request body", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		c.logger.Warn("CreateTransfer: validation failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.transferService.RecordTransfer(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateTransfer: record failed", zap.String("asset_tag", payload.AssetTag), zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to record transfer", nil), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Transfer recorded", http.StatusCreated)
}
