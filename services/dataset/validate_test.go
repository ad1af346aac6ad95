// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullRow returns raw values for all 14 columns so tests can start from a
// complete record and knock out individual fields.
func fullRow(manufacturer, model string) map[string]string {
	return map[string]string{
		"Manufacturer":            manufacturer,
		"Model":                   model,
		"Stick_Pin_Diameter_mm":   "80",
		"Stick_Pin_Diameter_inch": "3.15",
		"Stick_Width_mm":          "330",
		"Stick_Width_inch":        "12.99",
		"Link_Pin_Diameter_mm":    "80",
		"Link_Pin_Diameter_inch":  "3.15",
		"Link_Width_mm":           "294",
		"Link_Width_inch":         "11.57",
		"Pin_Centers_mm":          "480",
		"Pin_Centers_inch":        "18.9",
		"Data_Source":             "OEM Manual",
		"Notes":                   "none",
	}
}

func TestValidate_NilTable(t *testing.T) {
	_, err := Validate(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestValidate_EmptyTable(t *testing.T) {
	_, err := Validate(NewTable(RequiredColumns))
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = Validate(NewTable(nil))
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestValidate_CleanTable(t *testing.T) {
	table := testTable(t, fullRow("CAT", "320"), fullRow("Komatsu", "PC200"))

	report, err := Validate(table)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalRecords)
	assert.Empty(t, report.MissingColumns)
	assert.Empty(t, report.MissingValues)
	assert.Equal(t, 0, report.DuplicateRecords)
	assert.Equal(t, 100.0, report.DataQualityScore)
	assert.Empty(t, report.Issues)
}

func TestValidate_MissingModelExample(t *testing.T) {
	// One row with Model missing out of 14 columns:
	// round((1 - 1/14)*100, 2) = 92.86.
	row := fullRow("CAT", "320")
	delete(row, "Model")
	table := testTable(t, row)

	report, err := Validate(table)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"Model": 1}, report.MissingValues)
	assert.Equal(t, 0, report.DuplicateRecords)
	assert.Equal(t, 92.86, report.DataQualityScore)
	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "below 90%")
}

func TestValidate_MissingColumns(t *testing.T) {
	table := NewTable([]string{"Manufacturer", "Model"})
	require.NoError(t, table.AppendRow([]Cell{TextCell("CAT"), TextCell("320")}))

	report, err := Validate(table)
	require.NoError(t, err)

	// 12 of the 14 required columns are absent, in schema order.
	require.Len(t, report.MissingColumns, 12)
	assert.Equal(t, "Stick_Pin_Diameter_mm", report.MissingColumns[0])
	assert.Equal(t, "Notes", report.MissingColumns[11])
	assert.Contains(t, report.Issues[0], "Missing required columns")
}

func TestValidate_ExtraColumnsCountTowardScore(t *testing.T) {
	table := NewTable([]string{"Manufacturer", "Model", "Comment"})
	require.NoError(t, table.AppendRow([]Cell{TextCell("CAT"), TextCell("320"), EmptyCell()}))

	report, err := Validate(table)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"Comment": 1}, report.MissingValues)
	// 1 missing cell of 3 -> round(66.666..., 2)
	assert.Equal(t, 66.67, report.DataQualityScore)
}

func TestValidate_Duplicates(t *testing.T) {
	table := testTable(t,
		fullRow("CAT", "320"),
		fullRow("CAT", "320"),
		fullRow("CAT", "320"),
		fullRow("Komatsu", "PC200"),
	)

	report, err := Validate(table)
	require.NoError(t, err)

	// First occurrence is not counted.
	assert.Equal(t, 2, report.DuplicateRecords)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "Found 2 duplicate records", report.Issues[0])
}

func TestValidate_DuplicatesNeedBothKeyColumns(t *testing.T) {
	table := NewTable([]string{"Manufacturer"})
	require.NoError(t, table.AppendRow([]Cell{TextCell("CAT")}))
	require.NoError(t, table.AppendRow([]Cell{TextCell("CAT")}))

	report, err := Validate(table)
	require.NoError(t, err)
	assert.Equal(t, 0, report.DuplicateRecords)
}

func TestValidate_IssueOrdering(t *testing.T) {
	// Trigger all three issues: missing column, duplicates, low score.
	table := NewTable([]string{"Manufacturer", "Model"})
	require.NoError(t, table.AppendRow([]Cell{TextCell("CAT"), EmptyCell()}))
	require.NoError(t, table.AppendRow([]Cell{TextCell("CAT"), EmptyCell()}))

	report, err := Validate(table)
	require.NoError(t, err)

	require.Len(t, report.Issues, 3)
	assert.Contains(t, report.Issues[0], "Missing required columns")
	assert.Contains(t, report.Issues[1], "duplicate records")
	assert.Contains(t, report.Issues[2], "below 90%")
}

func TestValidate_ScoreMonotonicallyNonIncreasing(t *testing.T) {
	// Adding null cells, all else equal, must never raise the score.
	rows := []map[string]string{fullRow("CAT", "320"), fullRow("Komatsu", "PC200"), fullRow("Hitachi", "ZX130")}

	previous := 101.0
	for nulls := 0; nulls <= 3; nulls++ {
		mutated := make([]map[string]string, len(rows))
		for i, row := range rows {
			clone := map[string]string{}
			for k, v := range row {
				clone[k] = v
			}
			if i < nulls {
				delete(clone, "Notes")
			}
			mutated[i] = clone
		}

		report, err := Validate(testTable(t, mutated...))
		require.NoError(t, err)
		assert.LessOrEqual(t, report.DataQualityScore, previous, "score rose after adding %d nulls", nulls)
		previous = report.DataQualityScore
	}
}
