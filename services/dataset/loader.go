// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/xuri/excelize/v2"

	"github.com/gitdot5/excavator-pin-dimensions/pkg/logging"
)

var (
	// ErrNoData is returned by operations invoked before a successful
	// load.
	ErrNoData = errors.New("no data loaded")

	// ErrEmptyTable is returned when an operation cannot be computed
	// over a table with zero rows or zero columns.
	ErrEmptyTable = errors.New("table has no rows or columns")

	// ErrUnsupportedFormat is returned for input files whose extension
	// is not .csv, .xlsx, or .xls.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Store holds the current dataset table. The table is swapped in whole
// after a successful load, so concurrent readers either see the previous
// table or the new one, never a partially loaded state.
type Store struct {
	table  atomic.Pointer[Table]
	logger *logging.Logger
}

// NewStore creates a Store with no table loaded.
func NewStore(logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{logger: logger}
}

// Load reads a dataset file and swaps it in as the current table. The file
// format is chosen by extension: .csv, or .xlsx/.xls. On failure the
// previous table is retained.
func (s *Store) Load(path string) error {
	table, err := LoadFile(path)
	if err != nil {
		s.logger.Error("error loading data", "path", path, "error", err.Error())
		return err
	}
	s.table.Store(table)
	s.logger.Info("loaded dataset", "path", path, "records", table.NumRows())
	return nil
}

// Table returns the current table, or nil if no load has succeeded.
func (s *Store) Table() *Table {
	return s.table.Load()
}

// Swap replaces the current table. Used by tests and by hosts that build
// tables in memory.
func (s *Store) Swap(t *Table) {
	s.table.Store(t)
}

// LoadFile reads a table from a CSV or Excel file, dispatching on the
// file extension.
func LoadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		return LoadCSV(f)
	case ".xlsx", ".xls":
		return LoadWorkbook(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadCSV reads a table from CSV data. The first row is the header and
// defines the column set; short rows are padded with null cells.
func LoadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read csv header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	table := NewTable(header)
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if err := table.AppendRow(parseCells(fields, table.NumColumns())); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// LoadWorkbook reads a table from the first sheet of an Excel workbook.
func LoadWorkbook(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}
	table := NewTable(header)
	for _, row := range rows[1:] {
		if err := table.AppendRow(parseCells(row, table.NumColumns())); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// parseCells converts raw fields to cells, truncating anything beyond the
// column count. Ragged source rows are common in hand-edited spreadsheets.
func parseCells(fields []string, columns int) []Cell {
	if len(fields) > columns {
		fields = fields[:columns]
	}
	cells := make([]Cell, len(fields))
	for i, field := range fields {
		cells[i] = ParseCell(field)
	}
	return cells
}
