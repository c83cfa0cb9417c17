// Package store loads datasets out of sqlite so the grid host can browse
// database tables. It is read-only from the engine's point of view: rows
// come out as plain column-keyed records and the engine never writes back.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jask/jaskgrid/internal/grid"
)

// Open opens sqlite with sensible defaults.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	return db, nil
}

// LoadDataset reads every row of a table into grid rows and derives column
// descriptors from the table's declared schema. Numeric columns keep their
// values as float64 so sorting compares numbers, not digits.
func LoadDataset(db *sql.DB, table string) ([]grid.Column, []grid.Row, error) {
	if !validTableName(table) {
		return nil, nil, fmt.Errorf("invalid table name %q", table)
	}

	cols, err := tableColumns(db, table)
	if err != nil {
		return nil, nil, err
	}
	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("table %q has no columns", table)
	}

	rows, err := db.Query(fmt.Sprintf("SELECT * FROM %q", table))
	if err != nil {
		return nil, nil, fmt.Errorf("select from %s: %w", table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out []grid.Row
	for rows.Next() {
		values := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		row := grid.Row{}
		for i, name := range names {
			row[name] = normalizeValue(values[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return cols, out, nil
}

// tableColumns derives grid column descriptors from PRAGMA table_info.
func tableColumns(db *sql.DB, table string) ([]grid.Column, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	var cols []grid.Column
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		align := ""
		if numericType(ctype) {
			align = "right"
		}
		cols = append(cols, grid.Column{
			Key:      name,
			Label:    name,
			Sortable: true,
			Align:    align,
		})
	}
	return cols, rows.Err()
}

func numericType(ctype string) bool {
	switch ctype {
	case "INTEGER", "REAL", "NUMERIC":
		return true
	}
	return false
}

// normalizeValue maps driver scan types onto the engine's scalar set.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case int64:
		return float64(t)
	case []byte:
		return string(t)
	default:
		return v
	}
}

// validTableName rejects anything that could escape the quoted identifier;
// table names come from the command line, not from data.
func validTableName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}
