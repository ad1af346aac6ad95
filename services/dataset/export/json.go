// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gitdot5/excavator-pin-dimensions/services/dataset"
)

// Metadata is the envelope of the JSON export.
type Metadata struct {
	TotalRecords       int    `json:"total_records"`
	TotalManufacturers int    `json:"total_manufacturers"`
	ExportDate         string `json:"export_date"`
	Version            string `json:"version"`
}

// Document is the JSON export layout: a metadata envelope plus the record
// array. It is exported so consumers can re-parse the artifact.
type Document struct {
	Metadata   Metadata         `json:"metadata"`
	Excavators []map[string]any `json:"excavators"`
}

// JSONExporter writes the dataset as a JSON document with a metadata
// envelope, numbers as numbers and nulls as null.
type JSONExporter struct{}

func (e *JSONExporter) Format() Format   { return FormatJSON }
func (e *JSONExporter) FileName() string { return "excavator_database.json" }

func (e *JSONExporter) Export(t *dataset.Table, stats *dataset.Statistics, path string) error {
	doc := Document{
		Metadata: Metadata{
			TotalRecords:       stats.Overview.TotalRecords,
			TotalManufacturers: stats.Overview.TotalManufacturers,
			ExportDate:         stats.Overview.DateGenerated,
			Version:            exportVersion,
		},
		Excavators: t.Records(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
