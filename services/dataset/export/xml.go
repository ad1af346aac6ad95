// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package export

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gitdot5/excavator-pin-dimensions/services/dataset"
)

// XMLExporter writes the dataset as a hierarchical XML document: a Metadata
// block followed by one Excavator element per record with one child element
// per column. Null cells are rendered as empty elements.
type XMLExporter struct{}

func (e *XMLExporter) Format() Format   { return FormatXML }
func (e *XMLExporter) FileName() string { return "excavator_database.xml" }

func (e *XMLExporter) Export(t *dataset.Table, stats *dataset.Statistics, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(xml.Header); err != nil {
		return fmt.Errorf("write xml header: %w", err)
	}

	enc := xml.NewEncoder(f)
	enc.Indent("", "  ")

	w := &xmlWriter{enc: enc}
	w.open("ExcavatorDatabase")

	w.open("Metadata")
	w.element("TotalRecords", strconv.Itoa(stats.Overview.TotalRecords))
	w.element("TotalManufacturers", strconv.Itoa(stats.Overview.TotalManufacturers))
	w.element("ExportDate", stats.Overview.DateGenerated)
	w.element("Version", exportVersion)
	w.close("Metadata")

	w.open("Excavators")
	columns := t.Columns()
	for i := 0; i < t.NumRows(); i++ {
		w.open("Excavator")
		for _, col := range columns {
			w.element(elementName(col), t.Cell(i, col).String())
		}
		w.close("Excavator")
	}
	w.close("Excavators")

	w.close("ExcavatorDatabase")
	if w.err != nil {
		return fmt.Errorf("encode xml: %w", w.err)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("flush xml: %w", err)
	}
	return f.Close()
}

// elementName makes a column name usable as an XML element name.
func elementName(column string) string {
	return strings.ReplaceAll(column, " ", "_")
}

// xmlWriter wraps xml.Encoder with sticky error handling so the export
// body reads as a flat sequence of element writes.
type xmlWriter struct {
	enc *xml.Encoder
	err error
}

func (w *xmlWriter) open(name string) {
	if w.err != nil {
		return
	}
	w.err = w.enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: name}})
}

func (w *xmlWriter) close(name string) {
	if w.err != nil {
		return
	}
	w.err = w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

func (w *xmlWriter) element(name, value string) {
	w.open(name)
	if w.err == nil && value != "" {
		w.err = w.enc.EncodeToken(xml.CharData(value))
	}
	w.close(name)
}
