// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package export writes the dataset to the supported output formats: CSV,
// Excel workbook, JSON document, XML document, PDF report, and an embedded
// SQLite database, plus PNG chart generation.
//
// Exporters are pure consumers: they read the table and a statistics
// snapshot and write one artifact with a fixed name under the destination
// directory. Formats are registered on a Registry; a format that was not
// registered is reported as unavailable rather than crashing, so hosts can
// run with a reduced set of capabilities.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gitdot5/excavator-pin-dimensions/pkg/logging"
	"github.com/gitdot5/excavator-pin-dimensions/services/dataset"
)

// Format identifies an output format.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatExcel  Format = "excel"
	FormatJSON   Format = "json"
	FormatXML    Format = "xml"
	FormatPDF    Format = "pdf"
	FormatSQLite Format = "sqlite"
)

// exportVersion is stamped into the JSON and XML metadata envelopes.
const exportVersion = "2024.1"

// ErrFormatUnavailable is returned when a format was not registered on the
// Registry, for example because the host disabled it.
var ErrFormatUnavailable = errors.New("export format unavailable")

// Formats returns all known formats in their canonical export order.
func Formats() []Format {
	return []Format{FormatCSV, FormatExcel, FormatJSON, FormatXML, FormatPDF, FormatSQLite}
}

// ParseFormat validates a format name from user input.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Exporter writes one serialization of the dataset.
type Exporter interface {
	// Format identifies the exporter.
	Format() Format

	// FileName is the fixed artifact name under the output directory.
	FileName() string

	// Export writes the table to path. Implementations are read-only
	// over the table and statistics.
	Export(t *dataset.Table, stats *dataset.Statistics, path string) error
}

// Registry holds the available exporters.
type Registry struct {
	logger    *logging.Logger
	exporters map[Format]Exporter
}

// NewRegistry returns a registry with every built-in exporter registered.
func NewRegistry(logger *logging.Logger) *Registry {
	return NewRegistryWith(logger,
		&CSVExporter{},
		&ExcelExporter{},
		&JSONExporter{},
		&XMLExporter{},
		&PDFExporter{},
		&SQLiteExporter{},
	)
}

// NewRegistryWith returns a registry holding only the given exporters.
// Hosts and tests use this to model absent capabilities.
func NewRegistryWith(logger *logging.Logger, exporters ...Exporter) *Registry {
	if logger == nil {
		logger = logging.Default()
	}
	r := &Registry{
		logger:    logger,
		exporters: make(map[Format]Exporter, len(exporters)),
	}
	for _, e := range exporters {
		r.exporters[e.Format()] = e
	}
	return r
}

// Available reports whether the format is registered.
func (r *Registry) Available(f Format) bool {
	_, ok := r.exporters[f]
	return ok
}

// Export writes the table in the given format under outDir and returns the
// artifact path. The statistics snapshot consumed by the formats that need
// one is computed here, once per call.
//
// Errors are logged with their cause and returned; they never propagate as
// panics. A nil table yields dataset.ErrNoData, an unregistered format
// ErrFormatUnavailable.
func (r *Registry) Export(f Format, t *dataset.Table, outDir string) (string, error) {
	exporter, ok := r.exporters[f]
	if !ok {
		r.logger.Error("export format not available", "format", string(f))
		return "", fmt.Errorf("%w: %s", ErrFormatUnavailable, f)
	}
	if t == nil {
		r.logger.Error("export with no data loaded", "format", string(f))
		return "", dataset.ErrNoData
	}

	stats, err := dataset.ComputeStatistics(t)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		r.logger.Error("error creating output directory", "dir", outDir, "error", err.Error())
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(outDir, exporter.FileName())
	if err := exporter.Export(t, stats, path); err != nil {
		r.logger.Error("export failed", "format", string(f), "path", path, "error", err.Error())
		return "", err
	}

	r.logger.Info("exported dataset", "format", string(f), "path", path, "records", t.NumRows())
	return path, nil
}

// ExportAll runs every registered format in canonical order and returns
// the per-format error map. Failures in one format do not stop the others.
func (r *Registry) ExportAll(t *dataset.Table, outDir string) map[Format]error {
	results := make(map[Format]error)
	for _, f := range Formats() {
		if !r.Available(f) {
			continue
		}
		_, err := r.Export(f, t, outDir)
		results[f] = err
	}
	return results
}
