// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package export

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/gitdot5/excavator-pin-dimensions/services/dataset"
)

// SQLiteExporter materializes the dataset as an embedded SQLite database:
// one `excavators` table (replaced if present) plus secondary lookup
// indexes on manufacturer, model, and pin diameter.
type SQLiteExporter struct{}

func (e *SQLiteExporter) Format() Format   { return FormatSQLite }
func (e *SQLiteExporter) FileName() string { return "excavator_database.db" }

func (e *SQLiteExporter) Export(t *dataset.Table, _ *dataset.Statistics, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", path, err)
	}
	defer db.Close()

	columns := t.Columns()

	if _, err := db.Exec(`DROP TABLE IF EXISTS excavators`); err != nil {
		return fmt.Errorf("drop excavators table: %w", err)
	}
	if _, err := db.Exec(createTableSQL(columns)); err != nil {
		return fmt.Errorf("create excavators table: %w", err)
	}

	if err := insertRows(db, t, columns); err != nil {
		return err
	}

	if err := createIndexes(db, t); err != nil {
		return err
	}
	return db.Close()
}

// createTableSQL types the dimension columns as REAL and everything else
// as TEXT.
func createTableSQL(columns []string) string {
	defs := make([]string, len(columns))
	for i, col := range columns {
		sqlType := "TEXT"
		if strings.HasSuffix(col, "_mm") || strings.HasSuffix(col, "_inch") {
			sqlType = "REAL"
		}
		defs[i] = fmt.Sprintf("%s %s", quoteIdent(col), sqlType)
	}
	return fmt.Sprintf("CREATE TABLE excavators (%s)", strings.Join(defs, ", "))
}

func insertRows(db *sql.DB, t *dataset.Table, columns []string) error {
	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
		placeholders[i] = "?"
	}
	insertSQL := fmt.Sprintf("INSERT INTO excavators (%s) VALUES (%s)",
		strings.Join(quoted, ", "), strings.Join(placeholders, ", "))

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin insert transaction: %w", err)
	}
	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < t.NumRows(); i++ {
		args := make([]any, len(columns))
		for c, col := range columns {
			args[c] = t.Cell(i, col).Value()
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit inserts: %w", err)
	}
	return nil
}

func createIndexes(db *sql.DB, t *dataset.Table) error {
	indexes := []struct {
		name   string
		column string
	}{
		{"idx_manufacturer", dataset.ColumnManufacturer},
		{"idx_model", dataset.ColumnModel},
		{"idx_pin_diameter", dataset.ColumnStickPinDiamMM},
	}
	for _, idx := range indexes {
		if !t.HasColumn(idx.column) {
			continue
		}
		stmt := fmt.Sprintf("CREATE INDEX %s ON excavators(%s)", idx.name, quoteIdent(idx.column))
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create index %s: %w", idx.name, err)
		}
	}
	return nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
