// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package dataset implements the in-memory excavator pin dimensions table
// and the operations over it: loading, validation, statistics, and search.
//
// The central type is Table, an ordered collection of rows sharing a stable
// column set. A Table is immutable once built; derived results such as
// validation reports and statistics snapshots are pure functions of the
// table and are recomputed on demand, never cached.
package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RequiredColumns is the database schema: every dataset is expected to carry
// these 14 columns. Extra columns are tolerated and preserved.
var RequiredColumns = []string{
	"Manufacturer",
	"Model",
	"Stick_Pin_Diameter_mm",
	"Stick_Pin_Diameter_inch",
	"Stick_Width_mm",
	"Stick_Width_inch",
	"Link_Pin_Diameter_mm",
	"Link_Pin_Diameter_inch",
	"Link_Width_mm",
	"Link_Width_inch",
	"Pin_Centers_mm",
	"Pin_Centers_inch",
	"Data_Source",
	"Notes",
}

// Well-known column names used by the core operations.
const (
	ColumnManufacturer    = "Manufacturer"
	ColumnModel           = "Model"
	ColumnStickPinDiamMM  = "Stick_Pin_Diameter_mm"
	ColumnStickPinDiamIn  = "Stick_Pin_Diameter_inch"
	ColumnStickWidthMM    = "Stick_Width_mm"
	ColumnLinkPinDiamMM   = "Link_Pin_Diameter_mm"
	ColumnLinkWidthMM     = "Link_Width_mm"
	ColumnDataSource      = "Data_Source"
	ColumnNotes           = "Notes"
)

// CellKind discriminates the three states a cell can be in.
type CellKind int

const (
	// CellEmpty marks a missing value.
	CellEmpty CellKind = iota

	// CellNumber holds a numeric value parsed at load time.
	CellNumber

	// CellText holds free text.
	CellText
)

// Cell is a single table value with explicit null handling. The zero value
// is a null cell. Numeric-looking input is parsed to a number at load time
// so that range filters and aggregates operate on floats; everything else
// stays text.
type Cell struct {
	kind CellKind
	num  float64
	text string
}

// EmptyCell returns a null cell.
func EmptyCell() Cell { return Cell{} }

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell { return Cell{kind: CellNumber, num: v} }

// TextCell returns a text cell. An empty string yields a null cell.
func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{kind: CellText, text: s}
}

// ParseCell converts raw input to a Cell: blank input becomes null,
// numeric-looking input becomes a number, everything else text.
func ParseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{}
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return NumberCell(v)
	}
	return Cell{kind: CellText, text: trimmed}
}

// Kind returns the cell kind.
func (c Cell) Kind() CellKind { return c.kind }

// IsNull reports whether the cell has no value.
func (c Cell) IsNull() bool { return c.kind == CellEmpty }

// Number returns the numeric value and whether the cell holds one.
func (c Cell) Number() (float64, bool) {
	if c.kind != CellNumber {
		return 0, false
	}
	return c.num, true
}

// String renders the cell: "" for null, the text as-is, or the shortest
// decimal representation of the number ("50", "50.5").
func (c Cell) String() string {
	switch c.kind {
	case CellNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case CellText:
		return c.text
	default:
		return ""
	}
}

// Value returns the cell as a JSON-friendly value: nil, float64, or string.
func (c Cell) Value() any {
	switch c.kind {
	case CellNumber:
		return c.num
	case CellText:
		return c.text
	default:
		return nil
	}
}

// Table is an ordered sequence of rows sharing a common column set.
// Column order is stable for the table lifetime and row order is insertion
// order from the load source. A Table is read-only after construction; all
// consumers (validator, aggregator, search, exporters, the HTTP facade)
// only read it.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Cell
}

// NewTable creates an empty table with the given column set. Duplicate
// column names keep the first position.
func NewTable(columns []string) *Table {
	t := &Table{
		columns: make([]string, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for _, name := range columns {
		if _, ok := t.index[name]; ok {
			continue
		}
		t.index[name] = len(t.columns)
		t.columns = append(t.columns, name)
	}
	return t
}

// AppendRow adds a row. Short rows are padded with null cells; long rows
// are rejected.
func (t *Table) AppendRow(cells []Cell) error {
	if len(cells) > len(t.columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.columns))
	}
	row := make([]Cell, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return nil
}

// Columns returns a copy of the column names in table order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// NumRows returns the row count.
func (t *Table) NumRows() int { return len(t.rows) }

// NumColumns returns the column count.
func (t *Table) NumColumns() int { return len(t.columns) }

// Cell returns the value at (row, column). A missing column or
// out-of-range row yields a null cell.
func (t *Table) Cell(row int, column string) Cell {
	if row < 0 || row >= len(t.rows) {
		return Cell{}
	}
	i, ok := t.index[column]
	if !ok {
		return Cell{}
	}
	return t.rows[row][i]
}

// Row returns the cells of a row in column order. The returned slice must
// not be modified.
func (t *Table) Row(i int) []Cell {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i]
}

// Record returns a row as a column-keyed map of JSON-friendly values.
func (t *Table) Record(i int) map[string]any {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	record := make(map[string]any, len(t.columns))
	for c, name := range t.columns {
		record[name] = t.rows[i][c].Value()
	}
	return record
}

// Records returns all rows as column-keyed maps, in row order. The result
// is never nil.
func (t *Table) Records() []map[string]any {
	records := make([]map[string]any, 0, len(t.rows))
	for i := range t.rows {
		records = append(records, t.Record(i))
	}
	return records
}

// Head returns a new table holding at most n leading rows. Row slices are
// shared with the source; both tables remain read-only.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.rows) {
		n = len(t.rows)
	}
	sub := NewTable(t.columns)
	sub.rows = t.rows[:n]
	return sub
}

// Distinct returns the sorted distinct non-null values of a column,
// rendered as strings.
func (t *Table) Distinct(column string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for i := range t.rows {
		cell := t.Cell(i, column)
		if cell.IsNull() {
			continue
		}
		v := cell.String()
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// countDistinct returns the number of distinct non-null values of a column.
func (t *Table) countDistinct(column string) int {
	seen := make(map[string]struct{})
	for i := range t.rows {
		cell := t.Cell(i, column)
		if cell.IsNull() {
			continue
		}
		seen[cell.String()] = struct{}{}
	}
	return len(seen)
}

// subset creates a table sharing this table's schema and holding the rows
// at the given indexes, in the given order.
func (t *Table) subset(rowIndexes []int) *Table {
	sub := NewTable(t.columns)
	sub.rows = make([][]Cell, 0, len(rowIndexes))
	for _, i := range rowIndexes {
		sub.rows = append(sub.rows, t.rows[i])
	}
	return sub
}
