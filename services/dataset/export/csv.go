// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gitdot5/excavator-pin-dimensions/services/dataset"
)

// CSVExporter writes the full table as delimited text, nulls rendered as
// empty fields.
type CSVExporter struct{}

func (e *CSVExporter) Format() Format   { return FormatCSV }
func (e *CSVExporter) FileName() string { return "excavator_database.csv" }

func (e *CSVExporter) Export(t *dataset.Table, _ *dataset.Statistics, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	columns := t.Columns()
	record := make([]string, len(columns))
	for i := 0; i < t.NumRows(); i++ {
		for c, col := range columns {
			record[c] = t.Cell(i, col).String()
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}
