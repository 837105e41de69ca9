package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "office-inventory/pkg/errors"
)

func TestReports_IssuesTable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	pc := f.register(t, "PC")
	f.issueToSection(t, pc.ID, "HR")

	table, err := f.reports.BuildTable(ctx, ReportIssues)
	require.NoError(t, err)
	assert.Equal(t, "Issue Records Report", table.Title)
	assert.Equal(t, []string{"Unique ID", "Serial Number", "Issued To", "Section", "Location", "Issue Date", "Remarks"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{pc.UniqueID, "SN-PC", "HR", "HR", "Block A", "2024-05-01", "-"}, table.Rows[0])
}

func TestReports_PDF(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for i := 0; i < 40; i++ {
		f.register(t, "CPU")
	}

	var buf bytes.Buffer
	require.NoError(t, f.reports.Export(ctx, ReportEquipment, FormatPDF, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestReports_XLSX(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.transfers.RecordTransfer(ctx, transferInput("repair"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.reports.Export(ctx, ReportTransfers, FormatXLSX, &buf))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	rows, err := book.GetRows("Transfers")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Asset Tag", rows[0][0])
	assert.Equal(t, "repair", rows[1][2])
}

func TestReports_UnknownKindOrFormat(t *testing.T) {
	f := newFixture(t)
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, f.reports.Export(context.Background(), "users", FormatPDF, &bytes.Buffer{}), &invalid)
	assert.ErrorAs(t, f.reports.Export(context.Background(), ReportIssues, "csv", &bytes.Buffer{}), &invalid)
}
