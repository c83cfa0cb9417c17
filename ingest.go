package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/jask/jaskgrid/internal/grid"
)

// dataset bundles everything the host feeds the engine for one table.
type dataset struct {
	Title    string
	Columns  []grid.Column
	Rows     []grid.Row
	Settings viewSettings
}

// loadDataset picks a loader from the file extension: .csv, .json, or a
// .toml dataset definition.
func loadDataset(path string) (dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSVFile(path)
	case ".json":
		return loadJSONFile(path)
	case ".toml":
		return loadDatasetFile(path)
	default:
		return dataset{}, fmt.Errorf("unsupported dataset format: %s", path)
	}
}

// ---------------------------------------------------------------------------
// CSV
// ---------------------------------------------------------------------------

// loadCSVFile reads a headed CSV: the first record supplies column keys,
// every later record becomes a row. Numeric-looking cells are stored as
// numbers so sorting compares them numerically.
func loadCSVFile(path string) (dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataset{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	cols, rows, err := readCSV(f)
	if err != nil {
		return dataset{}, err
	}
	return dataset{
		Title:    filepath.Base(path),
		Columns:  cols,
		Rows:     rows,
		Settings: defaultSettings(),
	}, nil
}

func readCSV(r io.Reader) ([]grid.Column, []grid.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	keys := make([]string, len(header))
	cols := make([]grid.Column, len(header))
	for i, h := range header {
		key := strings.TrimSpace(h)
		keys[i] = key
		cols[i] = grid.Column{Key: key, Label: key, Sortable: true}
	}

	var rows []grid.Row
	for {
		rec, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, fmt.Errorf("read csv row: %w", err)
		}
		row := grid.Row{}
		for i, raw := range rec {
			if i >= len(keys) || keys[i] == "" {
				continue
			}
			row[keys[i]] = parseCell(strings.TrimSpace(raw))
		}
		rows = append(rows, row)
	}
	return cols, rows, nil
}

// parseCell stores numeric-looking values as numbers. Everything else stays
// a string; the engine does not coerce types when comparing.
func parseCell(raw string) any {
	if raw == "" {
		return ""
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}

// ---------------------------------------------------------------------------
// JSON
// ---------------------------------------------------------------------------

// loadJSONFile reads a serialized row collection (the widget's data
// attribute format) and infers the column set from the rows.
func loadJSONFile(path string) (dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return dataset{}, fmt.Errorf("read json: %w", err)
	}
	rows, err := grid.ParseRowsStrict(string(raw))
	if err != nil {
		return dataset{}, err
	}
	return dataset{
		Title:    filepath.Base(path),
		Columns:  inferColumns(rows),
		Rows:     rows,
		Settings: defaultSettings(),
	}, nil
}

// inferColumns derives descriptors from the union of row keys, "id" first
// and the rest alphabetical.
func inferColumns(rows []grid.Row) []grid.Column {
	seen := map[string]bool{}
	for _, r := range rows {
		for k := range r {
			seen[k] = true
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		if k != "id" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if seen["id"] {
		keys = append([]string{"id"}, keys...)
	}

	cols := make([]grid.Column, len(keys))
	for i, k := range keys {
		cols[i] = grid.Column{Key: k, Label: labelFor(k), Sortable: true}
	}
	return cols
}

func labelFor(key string) string {
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
