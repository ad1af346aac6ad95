// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/gitdot5/excavator-pin-dimensions/services/dataset"
)

const (
	sheetData          = "Excavator Database"
	sheetStatistics    = "Statistics"
	sheetManufacturers = "Manufacturers"
)

// ExcelExporter writes an xlsx workbook with the full dataset plus summary
// sheets for statistics and manufacturer counts.
type ExcelExporter struct{}

func (e *ExcelExporter) Format() Format   { return FormatExcel }
func (e *ExcelExporter) FileName() string { return "excavator_database.xlsx" }

func (e *ExcelExporter) Export(t *dataset.Table, stats *dataset.Statistics, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetData); err != nil {
		return fmt.Errorf("rename data sheet: %w", err)
	}
	if err := writeDataSheet(f, t); err != nil {
		return err
	}
	if err := writeStatisticsSheet(f, stats); err != nil {
		return err
	}
	if err := writeManufacturersSheet(f, stats); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeDataSheet(f *excelize.File, t *dataset.Table) error {
	columns := t.Columns()
	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetData, "A1", &header); err != nil {
		return fmt.Errorf("write data header: %w", err)
	}

	for i := 0; i < t.NumRows(); i++ {
		row := make([]any, len(columns))
		for c, col := range columns {
			row[c] = t.Cell(i, col).Value()
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetData, cell, &row); err != nil {
			return fmt.Errorf("write data row %d: %w", i, err)
		}
	}
	return nil
}

func writeStatisticsSheet(f *excelize.File, stats *dataset.Statistics) error {
	if _, err := f.NewSheet(sheetStatistics); err != nil {
		return fmt.Errorf("create statistics sheet: %w", err)
	}
	rows := [][]any{
		{"Metric", "Value"},
		{"Total Records", stats.Overview.TotalRecords},
		{"Total Manufacturers", stats.Overview.TotalManufacturers},
		{"Date Generated", stats.Overview.DateGenerated},
	}
	for i, row := range rows {
		r := row
		if err := f.SetSheetRow(sheetStatistics, fmt.Sprintf("A%d", i+1), &r); err != nil {
			return fmt.Errorf("write statistics row %d: %w", i, err)
		}
	}
	return nil
}

func writeManufacturersSheet(f *excelize.File, stats *dataset.Statistics) error {
	if _, err := f.NewSheet(sheetManufacturers); err != nil {
		return fmt.Errorf("create manufacturers sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetManufacturers, "A1", &[]any{"Manufacturer", "Model Count"}); err != nil {
		return fmt.Errorf("write manufacturers header: %w", err)
	}
	for i, mc := range sortedCounts(stats.Manufacturers) {
		row := []any{mc.name, mc.count}
		if err := f.SetSheetRow(sheetManufacturers, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return fmt.Errorf("write manufacturers row %d: %w", i, err)
		}
	}
	return nil
}

type nameCount struct {
	name  string
	count int
}

// sortedCounts orders a count map by descending count, name ascending on
// ties, for deterministic output.
func sortedCounts(counts map[string]int) []nameCount {
	out := make([]nameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, nameCount{name, count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	return out
}
