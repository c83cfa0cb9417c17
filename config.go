package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jask/jaskgrid/internal/grid"
)

// ---------------------------------------------------------------------------
// Dataset definition files (TOML)
// ---------------------------------------------------------------------------
//
// A dataset file names its CSV source and declares the column descriptors
// and view settings. Columns not declared are still loaded but hidden from
// the view, since the engine only looks up keys the column set names.

// datasetFile is the top-level TOML structure.
type datasetFile struct {
	Title    string          `toml:"title"`
	Source   string          `toml:"source"`
	Columns  []datasetColumn `toml:"column"`
	Settings viewSettings    `toml:"settings"`
}

type datasetColumn struct {
	Key      string `toml:"key"`
	Label    string `toml:"label"`
	Sortable bool   `toml:"sortable"`
	Width    int    `toml:"width"`
	Align    string `toml:"align"`
}

type viewSettings struct {
	RowsPerPage int    `toml:"rows_per_page"`
	Selectable  string `toml:"selectable"`
	Sortable    bool   `toml:"sortable"`
	Searchable  bool   `toml:"searchable"`
	Pageable    bool   `toml:"pageable"`
}

// defaultSettings mirror the widget attribute defaults, except the TUI
// turns the affordances on; a dataset file can switch them off.
func defaultSettings() viewSettings {
	return viewSettings{
		RowsPerPage: grid.DefaultPageSize,
		Selectable:  "none",
		Sortable:    true,
		Searchable:  true,
		Pageable:    true,
	}
}

// loadDatasetFile reads a TOML dataset definition plus the CSV it points
// at. The source path is resolved relative to the definition file.
func loadDatasetFile(path string) (dataset, error) {
	def := datasetFile{Settings: defaultSettings()}
	if _, err := toml.DecodeFile(path, &def); err != nil {
		return dataset{}, fmt.Errorf("parse dataset file: %w", err)
	}
	if def.Source == "" {
		return dataset{}, fmt.Errorf("dataset file %s names no source", path)
	}

	source := def.Source
	if !filepath.IsAbs(source) {
		source = filepath.Join(filepath.Dir(path), source)
	}
	f, err := os.Open(source)
	if err != nil {
		return dataset{}, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	_, rows, err := readCSV(f)
	if err != nil {
		return dataset{}, fmt.Errorf("read source %s: %w", source, err)
	}

	ds := dataset{
		Title:    def.Title,
		Rows:     rows,
		Settings: def.Settings,
	}
	if ds.Title == "" {
		ds.Title = filepath.Base(source)
	}
	for _, c := range def.Columns {
		label := c.Label
		if label == "" {
			label = c.Key
		}
		ds.Columns = append(ds.Columns, grid.Column{
			Key:      c.Key,
			Label:    label,
			Sortable: c.Sortable,
			Width:    c.Width,
			Align:    c.Align,
		})
	}
	if len(ds.Columns) == 0 {
		return dataset{}, fmt.Errorf("dataset file %s declares no columns", path)
	}
	return ds, nil
}
