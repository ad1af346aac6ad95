// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package dataset

import (
	"sort"
	"time"
)

// Overview carries the headline counts of a statistics snapshot.
type Overview struct {
	TotalRecords       int    `json:"total_records"`
	TotalManufacturers int    `json:"total_manufacturers"`
	DateGenerated      string `json:"date_generated"`
}

// Distribution summarizes a numeric column over its non-null values.
type Distribution struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// Statistics is a derived snapshot of the dataset. All sections except the
// generation timestamp are deterministic functions of the table.
type Statistics struct {
	Overview Overview `json:"overview"`

	// Manufacturers maps manufacturer name to model count. Counting is
	// case-sensitive; null manufacturers are excluded.
	Manufacturers map[string]int `json:"manufacturers"`

	// PinDiameterDistribution summarizes Stick_Pin_Diameter_mm over its
	// non-null values. Nil (absent in JSON) when no such values exist.
	PinDiameterDistribution *Distribution `json:"pin_diameter_distribution,omitempty"`

	// DataSources maps data source to record count, nulls excluded.
	DataSources map[string]int `json:"data_sources"`

	// WeightClasses is the six-bucket histogram over the stick pin
	// diameter. Empty when the diameter column is absent.
	WeightClasses map[string]int `json:"weight_classes"`
}

// Weight class thresholds over Stick_Pin_Diameter_mm. The boundaries are a
// business rule inherited from the published pin dimension tables:
// inclusive on the upper end, exclusive on the lower end, with the first
// bucket catching everything at or below 30 mm.
var weightClassBuckets = []struct {
	label string
	upper float64 // inclusive; the last bucket is unbounded
}{
	{"Mini (< 6 tons)", 30},
	{"Compact (6-15 tons)", 45},
	{"Medium (15-30 tons)", 65},
	{"Large (30-50 tons)", 90},
	{"Heavy (50-80 tons)", 120},
	{"Ultra Heavy (> 80 tons)", 0},
}

// WeightClassLabels returns the bucket labels from lightest to heaviest.
func WeightClassLabels() []string {
	labels := make([]string, len(weightClassBuckets))
	for i, b := range weightClassBuckets {
		labels[i] = b.label
	}
	return labels
}

// WeightClass returns the bucket label for a stick pin diameter in mm.
func WeightClass(diameter float64) string {
	for _, b := range weightClassBuckets[:len(weightClassBuckets)-1] {
		if diameter <= b.upper {
			return b.label
		}
	}
	return weightClassBuckets[len(weightClassBuckets)-1].label
}

// ComputeStatistics builds a statistics snapshot of the table, stamped
// with the current wall-clock time. Returns ErrNoData for a nil table.
func ComputeStatistics(t *Table) (*Statistics, error) {
	return ComputeStatisticsAt(t, time.Now())
}

// ComputeStatisticsAt is ComputeStatistics with an injected timestamp, so
// callers and tests control the only non-deterministic field.
func ComputeStatisticsAt(t *Table, now time.Time) (*Statistics, error) {
	if t == nil {
		return nil, ErrNoData
	}

	stats := &Statistics{
		Overview: Overview{
			TotalRecords:       t.NumRows(),
			TotalManufacturers: t.countDistinct(ColumnManufacturer),
			DateGenerated:      now.Format(time.RFC3339Nano),
		},
		Manufacturers: valueCounts(t, ColumnManufacturer),
		DataSources:   valueCounts(t, ColumnDataSource),
		WeightClasses: map[string]int{},
	}

	diameters := nonNullNumbers(t, ColumnStickPinDiamMM)
	if len(diameters) > 0 {
		stats.PinDiameterDistribution = summarize(diameters)
	}

	if t.HasColumn(ColumnStickPinDiamMM) {
		for _, b := range weightClassBuckets {
			stats.WeightClasses[b.label] = 0
		}
		for _, d := range diameters {
			stats.WeightClasses[WeightClass(d)]++
		}
	}

	return stats, nil
}

// valueCounts returns the multiset cardinality of each distinct non-null
// value in a column.
func valueCounts(t *Table, column string) map[string]int {
	counts := map[string]int{}
	for i := 0; i < t.NumRows(); i++ {
		cell := t.Cell(i, column)
		if cell.IsNull() {
			continue
		}
		counts[cell.String()]++
	}
	return counts
}

// nonNullNumbers collects the numeric values of a column in row order.
func nonNullNumbers(t *Table, column string) []float64 {
	var values []float64
	for i := 0; i < t.NumRows(); i++ {
		if v, ok := t.Cell(i, column).Number(); ok {
			values = append(values, v)
		}
	}
	return values
}

// summarize computes the four-number summary of a non-empty value set.
func summarize(values []float64) *Distribution {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return &Distribution{
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   sum / float64(n),
		Median: median,
	}
}
