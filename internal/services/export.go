package services

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

type RGB struct{ R, G, B int }

var (
	issueHeaderFill    = RGB{234, 88, 12}
	defaultHeaderFill  = RGB{37, 99, 235}
	alternateRowFill   = RGB{245, 247, 250}
	headerTextColor    = RGB{255, 255, 255}
	bodyTextColor      = RGB{33, 33, 33}
	pdfMargin          = 14.0
	pdfRowHeight       = 7.0
	pdfLandscapeWidth  = 297.0
	pdfLandscapeHeight = 210.0
)

// Table is a rendered report: a title, a header row and string cells.
// Widths are in millimetres and should add up to the printable width.
type Table struct {
	Title      string
	SheetName  string
	Headers    []string
	Widths     []float64
	Rows       [][]string
	HeaderFill RGB
}

// WritePDF renders t as a landscape A4 document with a striped table.
func WritePDF(w io.Writer, t Table, generatedAt time.Time) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(pdfMargin, 15, tr(t.Title))
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(pdfMargin, 22, tr("Generated: "+generatedAt.Format("02.01.2006 15:04:05")))
	pdf.Text(pdfMargin, 27, fmt.Sprintf("Total Records: %d", len(t.Rows)))
	pdf.SetXY(pdfMargin, 32)

	widths := t.Widths
	if len(widths) != len(t.Headers) {
		widths = evenWidths(len(t.Headers))
	}

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(t.HeaderFill.R, t.HeaderFill.G, t.HeaderFill.B)
		pdf.SetTextColor(headerTextColor.R, headerTextColor.G, headerTextColor.B)
		for i, h := range t.Headers {
			pdf.CellFormat(widths[i], pdfRowHeight+1, tr(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(bodyTextColor.R, bodyTextColor.G, bodyTextColor.B)
	}
	drawHeader()

	for rowIdx, row := range t.Rows {
		if pdf.GetY()+pdfRowHeight > pdfLandscapeHeight-pdfMargin {
			pdf.AddPage()
			drawHeader()
		}
		fill := rowIdx%2 == 1
		if fill {
			pdf.SetFillColor(alternateRowFill.R, alternateRowFill.G, alternateRowFill.B)
		}
		for i := range t.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(widths[i], pdfRowHeight, fitCell(pdf, tr(cell), widths[i]-2), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

func evenWidths(n int) []float64 {
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = (pdfLandscapeWidth - 2*pdfMargin) / float64(n)
	}
	return out
}

// fitCell cuts s so that it fits into width, marking the cut with "..".
func fitCell(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"..") > width {
		r = r[:len(r)-1]
	}
	return string(r) + ".."
}

// WriteXLSX renders t as a single-sheet workbook with a bold header row.
func WriteXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := t.SheetName
	if sheet == "" {
		sheet = "Report"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := make([]interface{}, len(t.Headers))
	for i, h := range t.Headers {
		headers[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hexColor(t.HeaderFill)}},
	})
	if err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(t.Headers))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", style); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	for i, width := range t.Widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		// roughly 2 mm per character
		if err := f.SetColWidth(sheet, col, col, width/2); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func hexColor(c RGB) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}
