// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTable builds a small table in the full 14-column schema. Each entry
// of rows maps column name to raw cell input; unlisted columns stay null.
func testTable(t *testing.T, rows ...map[string]string) *Table {
	t.Helper()
	table := NewTable(RequiredColumns)
	for _, row := range rows {
		cells := make([]Cell, len(RequiredColumns))
		for i, col := range RequiredColumns {
			if raw, ok := row[col]; ok {
				cells[i] = ParseCell(raw)
			}
		}
		require.NoError(t, table.AppendRow(cells))
	}
	return table
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind CellKind
	}{
		{"blank", "", CellEmpty},
		{"whitespace", "   ", CellEmpty},
		{"integer", "50", CellNumber},
		{"decimal", "50.5", CellNumber},
		{"negative", "-3.2", CellNumber},
		{"text", "CAT", CellText},
		{"mixed", "320D LRR", CellText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, ParseCell(tt.raw).Kind())
		})
	}
}

func TestCell_NumberRendering(t *testing.T) {
	assert.Equal(t, "50", NumberCell(50).String())
	assert.Equal(t, "50.5", NumberCell(50.5).String())
	assert.Equal(t, "", EmptyCell().String())

	v, ok := ParseCell("65").Number()
	require.True(t, ok)
	assert.Equal(t, 65.0, v)

	_, ok = ParseCell("CAT").Number()
	assert.False(t, ok)
}

func TestCell_Value(t *testing.T) {
	assert.Nil(t, EmptyCell().Value())
	assert.Equal(t, 50.0, NumberCell(50).Value())
	assert.Equal(t, "CAT", TextCell("CAT").Value())
}

func TestTextCell_EmptyIsNull(t *testing.T) {
	assert.True(t, TextCell("").IsNull())
}

func TestNewTable_DuplicateColumnsKeepFirst(t *testing.T) {
	table := NewTable([]string{"A", "B", "A"})
	assert.Equal(t, []string{"A", "B"}, table.Columns())
}

func TestTable_AppendRow(t *testing.T) {
	table := NewTable([]string{"A", "B", "C"})

	// Short rows are padded with nulls.
	require.NoError(t, table.AppendRow([]Cell{TextCell("x")}))
	assert.Equal(t, "x", table.Cell(0, "A").String())
	assert.True(t, table.Cell(0, "B").IsNull())
	assert.True(t, table.Cell(0, "C").IsNull())

	// Long rows are rejected.
	err := table.AppendRow(make([]Cell, 4))
	assert.Error(t, err)
}

func TestTable_CellOutOfRange(t *testing.T) {
	table := testTable(t, map[string]string{"Manufacturer": "CAT"})

	assert.True(t, table.Cell(5, "Manufacturer").IsNull())
	assert.True(t, table.Cell(-1, "Manufacturer").IsNull())
	assert.True(t, table.Cell(0, "Nonexistent").IsNull())
}

func TestTable_ColumnOrderStable(t *testing.T) {
	table := testTable(t)
	assert.Equal(t, RequiredColumns, table.Columns())

	// Mutating the returned slice must not affect the table.
	cols := table.Columns()
	cols[0] = "clobbered"
	assert.Equal(t, "Manufacturer", table.Columns()[0])
}

func TestTable_Records(t *testing.T) {
	table := testTable(t,
		map[string]string{"Manufacturer": "CAT", "Model": "320", "Stick_Pin_Diameter_mm": "80"},
	)

	records := table.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "CAT", records[0]["Manufacturer"])
	assert.Equal(t, 80.0, records[0]["Stick_Pin_Diameter_mm"])
	assert.Nil(t, records[0]["Notes"])
}

func TestTable_RecordsEmptyTableNotNil(t *testing.T) {
	assert.NotNil(t, testTable(t).Records())
}

func TestTable_Head(t *testing.T) {
	table := testTable(t,
		map[string]string{"Model": "1"},
		map[string]string{"Model": "2"},
		map[string]string{"Model": "3"},
	)

	assert.Equal(t, 2, table.Head(2).NumRows())
	assert.Equal(t, 3, table.Head(10).NumRows())
	assert.Equal(t, 0, table.Head(-1).NumRows())
	assert.Equal(t, "1", table.Head(2).Cell(0, "Model").String())
}

func TestTable_Distinct(t *testing.T) {
	table := testTable(t,
		map[string]string{"Manufacturer": "Komatsu"},
		map[string]string{"Manufacturer": "CAT"},
		map[string]string{"Manufacturer": "CAT"},
		map[string]string{}, // null manufacturer excluded
	)

	assert.Equal(t, []string{"CAT", "Komatsu"}, table.Distinct("Manufacturer"))
	assert.Equal(t, 2, table.countDistinct("Manufacturer"))
	assert.Empty(t, table.Distinct("Notes"))
}
