package services

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"office-inventory/internal/dto"
	apperrors "office-inventory/pkg/errors"
)

// StructValidator checks a DTO against its validate tags.
type StructValidator interface {
	Validate(i interface{}) error
}

// importColumns maps normalised header captions onto CreateEquipmentDTO fields.
var importColumns = map[string]string{
	"inventory type":   "inventory_type",
	"type":             "inventory_type",
	"bucket":           "inventory_type",
	"serial number":    "serial_number",
	"serial":           "serial_number",
	"serial no":        "serial_number",
	"computer type":    "computer_type",
	"brand":            "brand",
	"make":             "brand",
	"model":            "model",
	"processor":        "processor",
	"cpu":              "processor",
	"ram":              "ram",
	"memory":           "ram",
	"storage":          "storage",
	"disk":             "storage",
	"operating system": "operating_system",
	"os":               "operating_system",
	"purchase date":    "purchase_date",
	"remarks":          "remarks",
	"notes":            "remarks",
}

// EquipmentImporter registers equipment rows read from an XLSX workbook.
// Each row goes through RegisterEquipment, so it gets the next identifier of
// its bucket exactly as a form submission would.
type EquipmentImporter struct {
	equipmentService EquipmentServiceInterface
	validator        StructValidator
	logger           *zap.Logger
}

func NewEquipmentImporter(equipmentService EquipmentServiceInterface, v StructValidator, logger *zap.Logger) *EquipmentImporter {
	return &EquipmentImporter{equipmentService: equipmentService, validator: v, logger: logger}
}

func normaliseHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", ".", "", "#", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// findHeader returns the first row holding at least the serial number,
// brand and model captions, with its column index per field.
func findHeader(rows [][]string) (int, map[string]int) {
	for rIdx, row := range rows {
		columns := make(map[string]int)
		for cIdx, caption := range row {
			if field, ok := importColumns[normaliseHeader(caption)]; ok {
				if _, seen := columns[field]; !seen {
					columns[field] = cIdx
				}
			}
		}
		_, serial := columns["serial_number"]
		_, brand := columns["brand"]
		_, model := columns["model"]
		if serial && brand && model {
			return rIdx, columns
		}
	}
	return -1, nil
}

func cell(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func isTotalsRow(row []string) bool {
	for _, v := range row {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "total" || v == "totals" || strings.HasPrefix(v, "total:") {
			return true
		}
	}
	return false
}

// importDate accepts YYYY-MM-DD or an Excel serial day number.
func importDate(raw string) string {
	if raw == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}

// canonicalBucket fixes the case of a known bucket name ("printer" -> "Printer").
func canonicalBucket(raw string) string {
	for _, b := range []string{"PC", "CPU", "Printer", "UPS"} {
		if strings.EqualFold(raw, b) {
			return b
		}
	}
	return raw
}

func (i *EquipmentImporter) Import(ctx context.Context, r io.Reader) (*dto.ImportResultDTO, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("file is not a readable XLSX workbook")
	}
	defer func() { _ = f.Close() }()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, err
		}
		headerRow, columns := findHeader(rows)
		if headerRow == -1 {
			continue
		}
		i.logger.Info("EquipmentImporter: header found", zap.String("sheet", sheet), zap.Int("row", headerRow+1))
		return i.importRows(ctx, sheet, rows[headerRow+1:], headerRow+2, columns)
	}

	return nil, apperrors.NewInvalidInputError("no header row with serial number, brand and model columns was found")
}

func (i *EquipmentImporter) importRows(ctx context.Context, sheet string, rows [][]string, firstRow int, columns map[string]int) (*dto.ImportResultDTO, error) {
	result := &dto.ImportResultDTO{Sheet: sheet, Created: []string{}, Failed: []dto.ImportFailureDTO{}}

	for offset, row := range rows {
		lineNum := firstRow + offset
		if isBlankRow(row) || isTotalsRow(row) {
			continue
		}

		in := dto.CreateEquipmentDTO{
			InventoryType:   canonicalBucket(cell(row, columns, "inventory_type")),
			SerialNumber:    cell(row, columns, "serial_number"),
			ComputerType:    strings.ToLower(cell(row, columns, "computer_type")),
			Brand:           cell(row, columns, "brand"),
			Model:           cell(row, columns, "model"),
			Processor:       cell(row, columns, "processor"),
			RAM:             cell(row, columns, "ram"),
			Storage:         cell(row, columns, "storage"),
			OperatingSystem: cell(row, columns, "operating_system"),
			PurchaseDate:    importDate(cell(row, columns, "purchase_date")),
			Remarks:         cell(row, columns, "remarks"),
		}

		if err := i.validator.Validate(&in); err != nil {
			result.Failed = append(result.Failed, dto.ImportFailureDTO{Row: lineNum, Error: describeValidation(err)})
			continue
		}

		res, err := i.equipmentService.RegisterEquipment(ctx, in)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			var invalid *apperrors.InvalidInputError
			if !errors.As(err, &invalid) {
				i.logger.Error("EquipmentImporter: register failed", zap.Int("row", lineNum), zap.Error(err))
			}
			result.Failed = append(result.Failed, dto.ImportFailureDTO{Row: lineNum, Error: err.Error()})
			continue
		}
		result.Created = append(result.Created, res.UniqueID)
	}

	i.logger.Info("EquipmentImporter: import finished",
		zap.String("sheet", sheet),
		zap.Int("created", len(result.Created)),
		zap.Int("failed", len(result.Failed)),
	)
	return result, nil
}

func describeValidation(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		parts = append(parts, fe.Field()+" failed on "+fe.Tag())
	}
	return strings.Join(parts, "; ")
}
