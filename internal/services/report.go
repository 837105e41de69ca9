package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "office-inventory/pkg/errors"
	"office-inventory/pkg/types"
)

const (
	ReportIssues    = "issues"
	ReportEquipment = "equipment"
	ReportTransfers = "transfers"

	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// ReportService builds the exportable views.
type ReportService struct {
	issueService        *IssueService
	availabilityService *AvailabilityService
	transferService     *TransferService
	logger              *zap.Logger
	now                 func() time.Time
}

func NewReportService(
	issueService *IssueService,
	availabilityService *AvailabilityService,
	transferService *TransferService,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		issueService:        issueService,
		availabilityService: availabilityService,
		transferService:     transferService,
		logger:              logger,
		now:                 time.Now,
	}
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func dashPtr(s *string) string {
	if s == nil {
		return "-"
	}
	return dash(*s)
}

func (s *ReportService) BuildTable(ctx context.Context, kind string) (Table, error) {
	switch kind {
	case ReportIssues:
		return s.issuesTable(ctx)
	case ReportEquipment:
		return s.equipmentTable(ctx)
	case ReportTransfers:
		return s.transfersTable(ctx)
	}
	return Table{}, apperrors.NewInvalidInputError("unknown report %q", kind)
}

func (s *ReportService) issuesTable(ctx context.Context) (Table, error) {
	issues, _, err := s.issueService.GetIssues(ctx, types.Filter{})
	if err != nil {
		return Table{}, err
	}
	t := Table{
		Title:      "Issue Records Report",
		SheetName:  "Issues",
		Headers:    []string{"Unique ID", "Serial Number", "Issued To", "Section", "Location", "Issue Date", "Remarks"},
		Widths:     []float64{40, 35, 40, 30, 35, 25, 64},
		HeaderFill: issueHeaderFill,
	}
	for _, i := range issues {
		issuedTo := i.EmployeeSection
		if i.IssuedTo != nil {
			issuedTo = *i.IssuedTo
		}
		t.Rows = append(t.Rows, []string{
			i.UniqueID, i.SerialNumber, issuedTo, i.EmployeeSection, dashPtr(i.Location), i.IssueDate, dash(i.Remarks),
		})
	}
	return t, nil
}

func (s *ReportService) equipmentTable(ctx context.Context) (Table, error) {
	rows, err := s.availabilityService.Project(ctx, "", "")
	if err != nil {
		return Table{}, err
	}
	t := Table{
		Title:      "Equipment Records Report",
		SheetName:  "Equipment",
		Headers:    []string{"Unique ID", "Type", "Serial Number", "Brand", "Model", "Status", "Issued To", "Section", "Issue Date"},
		Widths:     []float64{40, 20, 35, 28, 36, 22, 34, 30, 24},
		HeaderFill: defaultHeaderFill,
	}
	for _, r := range rows {
		status := "Available"
		if r.IsIssued {
			status = "Issued"
		}
		t.Rows = append(t.Rows, []string{
			r.UniqueID, r.InventoryType, r.SerialNumber, dash(r.Brand), dash(r.Model), status,
			dashPtr(r.IssuedTo), dashPtr(r.Section), dashPtr(r.IssueDate),
		})
	}
	return t, nil
}

func (s *ReportService) transfersTable(ctx context.Context) (Table, error) {
	transfers, err := s.transferService.GetAllTransfers(ctx)
	if err != nil {
		return Table{}, err
	}
	t := Table{
		Title:      "Transfer Records Report",
		SheetName:  "Transfers",
		Headers:    []string{"Asset Tag", "Serial Number", "Action", "From", "To", "Transferred To", "Date", "Approved By", "Condition"},
		Widths:     []float64{36, 32, 20, 28, 28, 34, 24, 35, 32},
		HeaderFill: defaultHeaderFill,
	}
	for _, tr := range transfers {
		t.Rows = append(t.Rows, []string{
			tr.AssetTag, tr.SerialNumber, tr.ActionType, tr.FromSection, dashPtr(tr.ToSection),
			dashPtr(tr.TransferredTo), tr.ExitDate, tr.ApprovedBy, tr.Condition,
		})
	}
	return t, nil
}

// Export writes report kind in format to w.
func (s *ReportService) Export(ctx context.Context, kind, format string, w io.Writer) error {
	t, err := s.BuildTable(ctx, kind)
	if err != nil {
		return err
	}
	switch format {
	case FormatPDF:
		return WritePDF(w, t, s.now())
	case FormatXLSX:
		return WriteXLSX(w, t)
	}
	return apperrors.NewInvalidInputError("unknown format %q", format)
}

// FileName is the attachment name for a report.
func (s *ReportService) FileName(kind, format string) string {
	return fmt.Sprintf("%s_report_%s.%s", kind, s.now().Format("2006-01-02"), format)
}
