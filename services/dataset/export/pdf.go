// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/gitdot5/excavator-pin-dimensions/services/dataset"
)

// pdfMaxRecords caps the report body; the full dataset belongs in the
// machine-readable formats.
const pdfMaxRecords = 100

// pdfColumns is the fixed column subset of the report table.
var pdfColumns = []struct {
	header string
	column string
	width  float64
}{
	{"Manufacturer", dataset.ColumnManufacturer, 55},
	{"Model", dataset.ColumnModel, 55},
	{"Pin Ø (mm)", dataset.ColumnStickPinDiamMM, 35},
	{"Pin Ø (in)", dataset.ColumnStickPinDiamIn, 35},
	{"Stick W (mm)", dataset.ColumnStickWidthMM, 35},
	{"Link W (mm)", dataset.ColumnLinkWidthMM, 35},
}

// PDFExporter writes a paginated landscape report: a title, the headline
// statistics, and the first 100 records in a fixed column subset.
type PDFExporter struct{}

func (e *PDFExporter) Format() Format   { return FormatPDF }
func (e *PDFExporter) FileName() string { return "excavator_database.pdf" }

func (e *PDFExporter) Export(t *dataset.Table, stats *dataset.Statistics, path string) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Excavator Pin Dimensions Database", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writePDFStatistics(pdf, stats)
	pdf.Ln(8)
	writePDFRecords(pdf, t)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

func writePDFStatistics(pdf *fpdf.Fpdf, stats *dataset.Statistics) {
	exportDate := stats.Overview.DateGenerated
	if len(exportDate) > 10 {
		exportDate = exportDate[:10]
	}
	rows := [][2]string{
		{"Total Records", fmt.Sprintf("%d", stats.Overview.TotalRecords)},
		{"Total Manufacturers", fmt.Sprintf("%d", stats.Overview.TotalManufacturers)},
		{"Export Date", exportDate},
	}

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.CellFormat(60, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, row[1], "1", 1, "C", false, 0, "")
	}
}

func writePDFRecords(pdf *fpdf.Fpdf, t *dataset.Table) {
	pdf.SetFont("Helvetica", "B", 10)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 8, col.header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	sample := t.Head(pdfMaxRecords)
	for i := 0; i < sample.NumRows(); i++ {
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 6, pdfCellText(sample.Cell(i, col.column)), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// pdfCellText renders a cell for the report: nulls as "-", strings
// truncated to keep columns readable.
func pdfCellText(cell dataset.Cell) string {
	if cell.IsNull() {
		return "-"
	}
	s := cell.String()
	if len(s) > 15 {
		s = s[:15]
	}
	return s
}
