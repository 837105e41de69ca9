package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"office-inventory/internal/dto"
	"office-inventory/internal/services"
	"office-inventory/pkg/utils"
)

type SectionController struct {
	sectionService services.SectionServiceInterface
	logger         *zap.Logger
}

func NewSectionController(sectionService services.SectionServiceInterface, logger *zap.Logger) *SectionController {
	return &SectionController{sectionService: sectionService, logger: logger}
}

func (c *SectionController) GetSections(ctx echo.Context) error {
	res, err := c.sectionService.ListSections(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetSections: failed", zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to load sections", nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Sections loaded", http.StatusOK)
}

func (c *SectionController) CreateSection(ctx echo.Context) error {
	var payload dto.SectionNameDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("Invalid request body", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.sectionService.AddSection(ctx.Request().Context(), payload.Name)
	if err != nil {
		c.logger.Error("CreateSection: failed", zap.String("name", payload.Name), zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to add section", nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Section added", http.StatusCreated)
}

func (c *SectionController) UpdateSection(ctx echo.Context) error {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return utils.ErrorResponse(ctx, badRequest("Invalid section index", err), c.logger)
	}

	var payload dto.SectionNameDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("Invalid request body", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.sectionService.RenameSection(ctx.Request().Context(), index, payload.Name)
	if err != nil {
		c.logger.Error("UpdateSection: failed", zap.Int("index", index), zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to rename section", map[string]interface{}{"index": index}), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Section renamed", http.StatusOK)
}

// DeleteSection expects the section name repeated in the body as confirmation.
func (c *SectionController) DeleteSection(ctx echo.Context) error {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return utils.ErrorResponse(ctx, badRequest("Invalid section index", err), c.logger)
	}

	var payload dto.DeleteSectionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("Invalid request body", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.sectionService.DeleteSection(ctx.Request().Context(), index, payload.Confirm)
	if err != nil {
		c.logger.Warn("DeleteSection: failed", zap.Int("index", index), zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to delete section", map[string]interface{}{"index": index}), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Section deleted", http.StatusOK)
}

func (c *SectionController) ResetSections(ctx echo.Context) error {
	res, err := c.sectionService.ResetSections(ctx.Request().Context())
	if err != nil {
		c.logger.Error("ResetSections: failed", zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to reset sections", nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Sections reset to defaults", http.StatusOK)
}
