// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"math"
)

// ValidationReport is a stateless snapshot of dataset integrity and
// quality. It is recomputed on demand and never persisted.
type ValidationReport struct {
	// TotalRecords is the row count of the validated table.
	TotalRecords int `json:"total_records"`

	// MissingColumns lists required columns absent from the table, in
	// schema order.
	MissingColumns []string `json:"missing_columns"`

	// MissingValues maps column name to null-cell count. Columns with
	// zero nulls are omitted.
	MissingValues map[string]int `json:"missing_values"`

	// DuplicateRecords counts rows whose (Manufacturer, Model) pair was
	// already seen; the first occurrence is not counted.
	DuplicateRecords int `json:"duplicate_records"`

	// DataQualityScore is the percentage of non-missing cells across the
	// table, rounded to two decimals.
	DataQualityScore float64 `json:"data_quality_score"`

	// Issues is a deterministic, human-readable summary: missing columns,
	// then duplicates, then a low quality score.
	Issues []string `json:"issues"`
}

// Validate scans the table for schema and quality problems. It only
// reports; nothing is enforced or modified.
//
// Returns ErrNoData for a nil table, and ErrEmptyTable when the quality
// score is undefined (zero rows or zero columns).
func Validate(t *Table) (*ValidationReport, error) {
	if t == nil {
		return nil, ErrNoData
	}
	if t.NumRows() == 0 || t.NumColumns() == 0 {
		return nil, fmt.Errorf("%w: quality score is undefined", ErrEmptyTable)
	}

	report := &ValidationReport{
		TotalRecords:   t.NumRows(),
		MissingColumns: []string{},
		MissingValues:  map[string]int{},
		Issues:         []string{},
	}

	for _, col := range RequiredColumns {
		if !t.HasColumn(col) {
			report.MissingColumns = append(report.MissingColumns, col)
		}
	}

	totalMissing := 0
	for _, col := range t.Columns() {
		count := 0
		for i := 0; i < t.NumRows(); i++ {
			if t.Cell(i, col).IsNull() {
				count++
			}
		}
		totalMissing += count
		if count > 0 {
			report.MissingValues[col] = count
		}
	}

	report.DuplicateRecords = countDuplicates(t)

	totalCells := t.NumRows() * t.NumColumns()
	report.DataQualityScore = round2((1 - float64(totalMissing)/float64(totalCells)) * 100)

	if len(report.MissingColumns) > 0 {
		report.Issues = append(report.Issues,
			fmt.Sprintf("Missing required columns: %v", report.MissingColumns))
	}
	if report.DuplicateRecords > 0 {
		report.Issues = append(report.Issues,
			fmt.Sprintf("Found %d duplicate records", report.DuplicateRecords))
	}
	if report.DataQualityScore < 90 {
		report.Issues = append(report.Issues,
			fmt.Sprintf("Data quality score below 90%%: %v%%", report.DataQualityScore))
	}

	return report, nil
}

// countDuplicates counts rows colliding on (Manufacturer, Model). When
// either key column is absent the count is zero rather than treating every
// row as a collision on null.
func countDuplicates(t *Table) int {
	if !t.HasColumn(ColumnManufacturer) || !t.HasColumn(ColumnModel) {
		return 0
	}
	type key struct{ manufacturer, model string }
	seen := make(map[key]struct{}, t.NumRows())
	duplicates := 0
	for i := 0; i < t.NumRows(); i++ {
		k := key{
			manufacturer: t.Cell(i, ColumnManufacturer).String(),
			model:        t.Cell(i, ColumnModel).String(),
		}
		if _, ok := seen[k]; ok {
			duplicates++
			continue
		}
		seen[k] = struct{}{}
	}
	return duplicates
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
