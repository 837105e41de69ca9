package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"office-inventory/internal/dto"
	"office-inventory/internal/services"
	"office-inventory/pkg/utils"
)

type IssueController struct {
	issueService services.IssueServiceInterface
	logger       *zap.Logger
}

func NewIssueController(issueService services.IssueServiceInterface, logger *zap.Logger) *IssueController {
	return &IssueController{issueService: issueService, logger: logger}
}

func (c *IssueController) GetIssues(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.issueService.GetIssues(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetIssues: failed to list issues", zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to list issues", nil), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Issue list loaded", http.StatusOK, total)
}

func (c *IssueController) GetAvailableEquipment(ctx echo.Context) error {
	res, err := c.issueService.AvailableEquipment(ctx.Request().Context(), ctx.QueryParam("inventory_type"))
	if err != nil {
		c.logger.Error("GetAvailableEquipment: failed", zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to list available equipment", nil), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Available equipment loaded", http.StatusOK)
}

func (c *IssueController) CreateIssue(ctx echo.Context) error {
	var payload dto.CreateIssueDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateIssue: bind failed", zap.Error(err))
		return utils.ErrorResponse(ctx, badRequest("Invalid request body", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		c.logger.Warn("CreateIssue: validation failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.issueService.IssueEquipment(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateIssue: issue failed", zap.String("inventory_id", payload.InventoryID), zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to issue equipment", map[string]interface{}{"inventory_id": payload.InventoryID}), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Equipment issued", http.StatusCreated)
}
