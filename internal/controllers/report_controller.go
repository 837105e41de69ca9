package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"office-inventory/internal/services"
	"office-inventory/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetReport renders /api/reports/:kind?format=pdf|xlsx as an attachment.
func (c *ReportController) GetReport(ctx echo.Context) error {
	kind := ctx.Param("kind")
	switch kind {
	case services.ReportIssues, services.ReportEquipment, services.ReportTransfers:
	default:
		return utils.ErrorResponse(ctx, badRequest(fmt.Sprintf("Unknown report %q", kind), nil), c.logger)
	}

	format := ctx.QueryParam("format")
	if format == "" {
		format = services.FormatPDF
	}
	var contentType string
	switch format {
	case services.FormatPDF:
		contentType = "application/pdf"
	case services.FormatXLSX:
		contentType = xlsxContentType
	default:
		return utils.ErrorResponse(ctx, badRequest(fmt.Sprintf("Unknown format %q", format), nil), c.logger)
	}

	// Rendered into memory first so a failure still produces a JSON error.
	reqCtx, cancel := utils.ContextWithTimeout(ctx, 2*utils.DefaultRequestTimeout)
	defer cancel()

	var buf bytes.Buffer
	if err := c.reportService.Export(reqCtx, kind, format, &buf); err != nil {
		c.logger.Error("GetReport: export failed", zap.String("kind", kind), zap.String("format", format), zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Failed to build report", nil), c.logger)
	}

	fileName := c.reportService.FileName(kind, format)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return ctx.Blob(http.StatusOK, contentType, buf.Bytes())
}
