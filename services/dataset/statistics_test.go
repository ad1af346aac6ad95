// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStatistics_NilTable(t *testing.T) {
	_, err := ComputeStatistics(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestComputeStatistics_WorkedExample(t *testing.T) {
	// T = [{CAT, 320, 50}, {Komatsu, PC200, 95}] from the pin tables:
	// weight classes must be Medium:1, Heavy:1, all others 0.
	table := testTable(t,
		map[string]string{"Manufacturer": "CAT", "Model": "320", "Stick_Pin_Diameter_mm": "50"},
		map[string]string{"Manufacturer": "Komatsu", "Model": "PC200", "Stick_Pin_Diameter_mm": "95"},
	)

	stats, err := ComputeStatistics(table)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Overview.TotalRecords)
	assert.Equal(t, 2, stats.Overview.TotalManufacturers)
	assert.NotEmpty(t, stats.Overview.DateGenerated)

	assert.Equal(t, map[string]int{"CAT": 1, "Komatsu": 1}, stats.Manufacturers)

	expected := map[string]int{
		"Mini (< 6 tons)":         0,
		"Compact (6-15 tons)":     0,
		"Medium (15-30 tons)":     1,
		"Large (30-50 tons)":      0,
		"Heavy (50-80 tons)":      1,
		"Ultra Heavy (> 80 tons)": 0,
	}
	assert.Equal(t, expected, stats.WeightClasses)

	require.NotNil(t, stats.PinDiameterDistribution)
	assert.Equal(t, 50.0, stats.PinDiameterDistribution.Min)
	assert.Equal(t, 95.0, stats.PinDiameterDistribution.Max)
	assert.Equal(t, 72.5, stats.PinDiameterDistribution.Mean)
	assert.Equal(t, 72.5, stats.PinDiameterDistribution.Median)
}

func TestComputeStatisticsAt_InjectedClock(t *testing.T) {
	table := testTable(t, map[string]string{"Manufacturer": "CAT"})
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	stats, err := ComputeStatisticsAt(table, now)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01T12:00:00Z", stats.Overview.DateGenerated)
}

func TestWeightClass_Boundaries(t *testing.T) {
	tests := []struct {
		diameter float64
		want     string
	}{
		{10, "Mini (< 6 tons)"},
		{30, "Mini (< 6 tons)"}, // first bucket is inclusive at 30
		{30.1, "Compact (6-15 tons)"},
		{45, "Compact (6-15 tons)"},
		{45.5, "Medium (15-30 tons)"},
		{65, "Medium (15-30 tons)"},
		{66, "Large (30-50 tons)"},
		{90, "Large (30-50 tons)"},
		{90.01, "Heavy (50-80 tons)"},
		{120, "Heavy (50-80 tons)"},
		{121, "Ultra Heavy (> 80 tons)"},
		{500, "Ultra Heavy (> 80 tons)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WeightClass(tt.diameter), "diameter %v", tt.diameter)
	}
}

func TestComputeStatistics_BucketsPartitionNonNullDomain(t *testing.T) {
	table := testTable(t,
		map[string]string{"Stick_Pin_Diameter_mm": "25"},
		map[string]string{"Stick_Pin_Diameter_mm": "45"},
		map[string]string{"Stick_Pin_Diameter_mm": "65"},
		map[string]string{"Stick_Pin_Diameter_mm": "90"},
		map[string]string{"Stick_Pin_Diameter_mm": "120"},
		map[string]string{"Stick_Pin_Diameter_mm": "200"},
		map[string]string{}, // null diameter, in no bucket
		map[string]string{"Stick_Pin_Diameter_mm": "unknown"}, // non-numeric, in no bucket
	)

	stats, err := ComputeStatistics(table)
	require.NoError(t, err)

	total := 0
	for _, count := range stats.WeightClasses {
		total += count
	}
	assert.Equal(t, 6, total, "bucket counts must sum to the non-null diameter count")
	assert.Len(t, stats.WeightClasses, 6)
}

func TestComputeStatistics_AllDiametersNull(t *testing.T) {
	table := testTable(t,
		map[string]string{"Manufacturer": "CAT"},
		map[string]string{"Manufacturer": "Komatsu"},
	)

	stats, err := ComputeStatistics(table)
	require.NoError(t, err)

	// Distribution is absent, not zero-filled; buckets are all zero.
	assert.Nil(t, stats.PinDiameterDistribution)
	for label, count := range stats.WeightClasses {
		assert.Zero(t, count, "bucket %s", label)
	}
}

func TestComputeStatistics_NoDiameterColumn(t *testing.T) {
	table := NewTable([]string{"Manufacturer"})
	require.NoError(t, table.AppendRow([]Cell{TextCell("CAT")}))

	stats, err := ComputeStatistics(table)
	require.NoError(t, err)

	assert.Nil(t, stats.PinDiameterDistribution)
	assert.Empty(t, stats.WeightClasses)
}

func TestComputeStatistics_CountsAreCaseSensitive(t *testing.T) {
	table := testTable(t,
		map[string]string{"Manufacturer": "CAT", "Data_Source": "OEM"},
		map[string]string{"Manufacturer": "cat", "Data_Source": "OEM"},
		map[string]string{"Data_Source": "Dealer"},
	)

	stats, err := ComputeStatistics(table)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"CAT": 1, "cat": 1}, stats.Manufacturers)
	assert.Equal(t, 2, stats.Overview.TotalManufacturers)
	assert.Equal(t, map[string]int{"OEM": 2, "Dealer": 1}, stats.DataSources)
}

func TestSummarize_EvenAndOddCounts(t *testing.T) {
	d := summarize([]float64{90, 50, 70})
	assert.Equal(t, 50.0, d.Min)
	assert.Equal(t, 90.0, d.Max)
	assert.Equal(t, 70.0, d.Median)
	assert.Equal(t, 70.0, d.Mean)

	d = summarize([]float64{10, 20, 30, 40})
	assert.Equal(t, 25.0, d.Median)
	assert.Equal(t, 25.0, d.Mean)
}
