// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }

func searchFixture(t *testing.T) *Table {
	t.Helper()
	return testTable(t,
		map[string]string{"Manufacturer": "CAT", "Model": "320", "Stick_Pin_Diameter_mm": "50", "Data_Source": "OEM Manual"},
		map[string]string{"Manufacturer": "Komatsu", "Model": "PC200", "Stick_Pin_Diameter_mm": "95", "Data_Source": "Dealer Sheet"},
		map[string]string{"Manufacturer": "Caterpillar", "Model": "336F", "Stick_Pin_Diameter_mm": "110", "Data_Source": "OEM Manual"},
		map[string]string{"Model": "Unknown", "Stick_Pin_Diameter_mm": "60"}, // null manufacturer
	)
}

func TestSearch_EmptyCriteriaIsIdentity(t *testing.T) {
	table := searchFixture(t)

	result := Search(table, Criteria{})

	require.Equal(t, table.NumRows(), result.NumRows())
	assert.Equal(t, table.Columns(), result.Columns())
	for i := 0; i < table.NumRows(); i++ {
		assert.Equal(t, table.Record(i), result.Record(i), "row %d", i)
	}
}

func TestSearch_NilTableReturnsEmptyTable(t *testing.T) {
	result := Search(nil, Criteria{Manufacturer: "CAT"})

	require.NotNil(t, result)
	assert.Zero(t, result.NumRows())
	assert.Equal(t, RequiredColumns, result.Columns())
}

func TestSearch_ManufacturerSubstringCaseInsensitive(t *testing.T) {
	table := searchFixture(t)

	result := Search(table, Criteria{Manufacturer: "cat"})

	// Matches CAT and Caterpillar; the null-manufacturer row is excluded.
	require.Equal(t, 2, result.NumRows())
	assert.Equal(t, "CAT", result.Cell(0, "Manufacturer").String())
	assert.Equal(t, "Caterpillar", result.Cell(1, "Manufacturer").String())
}

func TestSearch_WorkedExampleMinDiameter(t *testing.T) {
	table := testTable(t,
		map[string]string{"Manufacturer": "CAT", "Model": "320", "Stick_Pin_Diameter_mm": "50"},
		map[string]string{"Manufacturer": "Komatsu", "Model": "PC200", "Stick_Pin_Diameter_mm": "95"},
	)

	result := Search(table, Criteria{PinDiameterMin: float(60)})

	require.Equal(t, 1, result.NumRows())
	assert.Equal(t, "Komatsu", result.Cell(0, "Manufacturer").String())
}

func TestSearch_DiameterBoundsInclusive(t *testing.T) {
	table := searchFixture(t)

	result := Search(table, Criteria{PinDiameterMin: float(50), PinDiameterMax: float(95)})

	require.Equal(t, 3, result.NumRows())
	assert.Equal(t, "320", result.Cell(0, "Model").String())
	assert.Equal(t, "PC200", result.Cell(1, "Model").String())
	assert.Equal(t, "Unknown", result.Cell(2, "Model").String())
}

func TestSearch_NullExcludedByNumericFilter(t *testing.T) {
	table := testTable(t,
		map[string]string{"Model": "A", "Stick_Pin_Diameter_mm": "40"},
		map[string]string{"Model": "B"}, // null diameter
	)

	result := Search(table, Criteria{PinDiameterMin: float(0)})

	require.Equal(t, 1, result.NumRows())
	assert.Equal(t, "A", result.Cell(0, "Model").String())
}

func TestSearch_CriteriaAreConjunctive(t *testing.T) {
	table := searchFixture(t)

	result := Search(table, Criteria{
		Manufacturer:   "cat",
		DataSource:     "oem",
		PinDiameterMin: float(100),
	})

	require.Equal(t, 1, result.NumRows())
	assert.Equal(t, "336F", result.Cell(0, "Model").String())
}

func TestSearch_ModelAndDataSource(t *testing.T) {
	table := searchFixture(t)

	assert.Equal(t, 1, Search(table, Criteria{Model: "pc2"}).NumRows())
	assert.Equal(t, 2, Search(table, Criteria{DataSource: "oem manual"}).NumRows())
}

func TestSearch_NoMatchesReturnsEmptyNotNil(t *testing.T) {
	table := searchFixture(t)

	result := Search(table, Criteria{Manufacturer: "Volvo"})

	require.NotNil(t, result)
	assert.Zero(t, result.NumRows())
	assert.Equal(t, table.Columns(), result.Columns())
}

func TestSearch_RowOrderPreserved(t *testing.T) {
	table := searchFixture(t)

	result := Search(table, Criteria{DataSource: "OEM"})

	require.Equal(t, 2, result.NumRows())
	assert.Equal(t, "320", result.Cell(0, "Model").String())
	assert.Equal(t, "336F", result.Cell(1, "Model").String())
}

func TestCriteria_IsZero(t *testing.T) {
	assert.True(t, Criteria{}.IsZero())
	assert.False(t, Criteria{Manufacturer: "CAT"}.IsZero())
	assert.False(t, Criteria{PinDiameterMax: float(10)}.IsZero())
}
