// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package dataset

import "strings"

// Criteria are the recognized search filters. All supplied criteria are
// ANDed; zero-valued fields impose no filter. Unknown keys in JSON input
// are ignored.
//
// String criteria are case-insensitive substring matches. Diameter bounds
// are inclusive and apply to Stick_Pin_Diameter_mm. A row with a null
// value in a filtered column is excluded by that filter.
type Criteria struct {
	Manufacturer   string   `json:"manufacturer,omitempty" form:"manufacturer"`
	Model          string   `json:"model,omitempty" form:"model"`
	PinDiameterMin *float64 `json:"pin_diameter_min,omitempty" form:"pin_diameter_min" validate:"omitempty,gte=0"`
	PinDiameterMax *float64 `json:"pin_diameter_max,omitempty" form:"pin_diameter_max" validate:"omitempty,gte=0"`
	DataSource     string   `json:"data_source,omitempty" form:"data_source"`
}

// IsZero reports whether no filter is set.
func (c Criteria) IsZero() bool {
	return c.Manufacturer == "" && c.Model == "" && c.DataSource == "" &&
		c.PinDiameterMin == nil && c.PinDiameterMax == nil
}

// Search applies the criteria to the table and returns the matching subset
// as a new table with the same schema and preserved row order.
//
// A nil table yields an empty table over the required column set, never
// nil. This differs deliberately from Validate and ComputeStatistics,
// which surface ErrNoData: search callers get an empty result set.
func Search(t *Table, c Criteria) *Table {
	if t == nil {
		return NewTable(RequiredColumns)
	}

	var matched []int
	for i := 0; i < t.NumRows(); i++ {
		if rowMatches(t, i, c) {
			matched = append(matched, i)
		}
	}
	return t.subset(matched)
}

func rowMatches(t *Table, row int, c Criteria) bool {
	if c.Manufacturer != "" && !cellContains(t.Cell(row, ColumnManufacturer), c.Manufacturer) {
		return false
	}
	if c.Model != "" && !cellContains(t.Cell(row, ColumnModel), c.Model) {
		return false
	}
	if c.DataSource != "" && !cellContains(t.Cell(row, ColumnDataSource), c.DataSource) {
		return false
	}
	if c.PinDiameterMin != nil || c.PinDiameterMax != nil {
		d, ok := t.Cell(row, ColumnStickPinDiamMM).Number()
		if !ok {
			return false
		}
		if c.PinDiameterMin != nil && d < *c.PinDiameterMin {
			return false
		}
		if c.PinDiameterMax != nil && d > *c.PinDiameterMax {
			return false
		}
	}
	return true
}

// cellContains reports whether the cell's text contains the needle,
// case-insensitively. Null cells never match.
func cellContains(cell Cell, needle string) bool {
	if cell.IsNull() {
		return false
	}
	return strings.Contains(strings.ToLower(cell.String()), strings.ToLower(needle))
}
