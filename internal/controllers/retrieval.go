package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"office-inventory/internal/dto"
	"office-inventory/internal/services"
	"office-inventory/pkg/utils"
)

type RetrievalController struct {
	retrievalService services.RetrievalServiceInterface
	logger           *zap.Logger
}

func NewRetrievalController(retrievalService services.RetrievalServiceInterface, logger *zap.Logger) *RetrievalController {
	return &RetrievalController{retrievalService: retrievalService, logger: logger}
}

func (c *RetrievalController) GetCandidates(ctx echo.Context) error {
	res, err := c.retrievalService.Candidates(ctx.Request().Context(), ctx.QueryParam("search"))
	if err != nil {
		c.logger.Error("GetCandidates: failed", zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to list issued equipment", nil), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Issued equipment loaded", http.StatusOK)
}

// PrepareRetrieval starts a retrieval and returns the confirmation token.
func (c *RetrievalController) PrepareRetrieval(ctx echo.Context) error {
	var payload dto.PrepareRetrievalDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("Invalid request body", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	issueID, err := uuid.Parse(payload.IssueID)
	if err != nil {
		return utils.ErrorResponse(ctx, badRequest("Invalid issue id", err), c.logger)
	}

	res, err := c.retrievalService.PrepareRetrieval(ctx.Request().Context(), issueID)
	if err != nil {
		c.logger.Error("PrepareRetrieval: failed", zap.String("issue_id", payload.IssueID), zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to prepare retrieval", map[string]interface{}{"issue_id": payload.IssueID}), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Confirm the retrieval to delete the issue record", http.StatusOK)
}

func (c *RetrievalController) ConfirmRetrieval(ctx echo.Context) error {
	var payload dto.ConfirmRetrievalDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("Invalid request body", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.retrievalService.ConfirmRetrieval(ctx.Request().Context(), payload.Token)
	if err != nil {
		c.logger.Error("ConfirmRetrieval: failed", zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to retrieve equipment", nil), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Equipment retrieved", http.StatusOK)
}
