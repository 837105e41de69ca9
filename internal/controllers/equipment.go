package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"office-inventory/internal/dto"
	"office-inventory/internal/services"
	"office-inventory/pkg/utils"
)

// maxImportSize caps uploaded workbooks.
const maxImportSize = 10 << 20

type EquipmentController struct {
	equipmentService    services.EquipmentServiceInterface
	availabilityService services.AvailabilityServiceInterface
	importer            services.EquipmentImporterInterface
	logger              *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	availabilityService services.AvailabilityServiceInterface,
	importer services.EquipmentImporterInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService:    equipmentService,
		availabilityService: availabilityService,
		importer:            importer,
		logger:              logger,
	}
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.equipmentService.GetEquipments(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetEquipments: failed to list equipment", zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to list equipment", nil), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Equipment list loaded", http.StatusOK, total)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, badRequest("Invalid equipment id", err), c.logger)
	}

	res, err := c.equipmentService.FindEquipment(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("FindEquipment: lookup failed", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to load equipment", map[string]interface{}{"id": id.String()}), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Equipment found", http.StatusOK)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateEquipment: bind failed", zap.Error(err))
		return utils.ErrorResponse(ctx, badRequest("Invalid request body", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		c.logger.Warn("CreateEquipment: validation failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.RegisterEquipment(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateEquipment: register failed", zap.Any("payload", payload), zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to register equipment", nil), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Equipment registered", http.StatusCreated)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, badRequest("Invalid equipment id", err), c.logger)
	}

	if err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteEquipment: delete failed", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to delete equipment", map[string]interface{}{"id": id.String()}), c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Equipment deleted", http.StatusOK)
}

// GetAvailability returns every equipment row with its derived issue state.
// Query: filter[status]=available|issued, filter[inventory_type]=PC.
func (c *EquipmentController) GetAvailability(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	status, _ := filter.Filter["status"].(string)
	bucket, _ := filter.Filter["inventory_type"].(string)

	res, err := c.availabilityService.Project(ctx.Request().Context(), status, bucket)
	if err != nil {
		c.logger.Error("GetAvailability: projection failed", zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to load availability", nil), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Availability loaded", http.StatusOK)
}

// ImportEquipment registers every row of an uploaded XLSX file (form field "file").
func (c *EquipmentController) ImportEquipment(ctx echo.Context) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx, badRequest("File is required", err), c.logger)
	}
	if file.Size > maxImportSize {
		return utils.ErrorResponse(ctx, badRequest("File is too large", nil), c.logger)
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".xlsx") {
		return utils.ErrorResponse(ctx, badRequest("Only .xlsx files can be imported", nil), c.logger)
	}

	src, err := file.Open()
	if err != nil {
		c.logger.Error("ImportEquipment: cannot open upload", zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to read file", nil), c.logger)
	}
	defer src.Close()

	reqCtx, cancel := utils.ContextWithTimeout(ctx, 6*utils.DefaultRequestTimeout)
	defer cancel()

	res, err := c.importer.Import(reqCtx, src)
	if err != nil {
		c.logger.Error("ImportEquipment: import failed", zap.String("file", file.Filename), zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to import equipment", map[string]interface{}{"file": file.Filename}), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Equipment imported", http.StatusOK)
}
