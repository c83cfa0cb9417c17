package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskgrid/internal/config"
	"github.com/jask/jaskgrid/internal/grid"
	"github.com/jask/jaskgrid/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "jaskgrid:", err)
		os.Exit(1)
	}
}

func run() error {
	dataPath := flag.String("data", "", "dataset file (.csv, .json or .toml definition)")
	dbPath := flag.String("db", "", "sqlite database to browse")
	dbTable := flag.String("table", "", "table to load from -db")
	pageSize := flag.Int("page-size", 0, "rows per page (overrides config)")
	selectable := flag.String("select", "", "selection mode: none, single or multiple")
	migrations := flag.String("migrate", "", "apply migrations from this directory to -db, then continue")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *dataPath == "" {
		*dataPath = cfg.Data.Path
	}
	if *dbPath == "" {
		*dbPath = cfg.Data.DB
	}
	if *dbTable == "" {
		*dbTable = cfg.Data.Table
	}
	if *pageSize == 0 {
		*pageSize = cfg.UI.PageSize
	}
	if *selectable == "" {
		*selectable = cfg.UI.Selectable
	}

	if *migrations != "" {
		if *dbPath == "" {
			return fmt.Errorf("-migrate needs -db")
		}
		if err := store.RunMigrations(*dbPath, *migrations); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	ds, err := resolveDataset(*dataPath, *dbPath, *dbTable)
	if err != nil {
		return err
	}
	if *pageSize > 0 {
		ds.Settings.RowsPerPage = *pageSize
	}
	if *selectable != "" {
		ds.Settings.Selectable = *selectable
	}

	eng := grid.NewEngine()
	if logFile := cfg.Log.File; logFile != "" {
		f, err := tea.LogToFile(logFile, "jaskgrid")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		eng.Subscribe(grid.LogListener{
			Logger: slog.New(slog.NewTextHandler(f, nil)),
		})
	}

	for _, a := range []grid.Action{
		grid.SetPageSize{Size: ds.Settings.RowsPerPage},
		grid.SetSelectionMode{Mode: grid.ParseSelectionMode(ds.Settings.Selectable)},
		grid.ReplaceColumns{Columns: ds.Columns},
		grid.ReplaceRows{Rows: ds.Rows},
	} {
		if _, err := eng.Dispatch(a); err != nil {
			return err
		}
	}

	m := newModel(eng, ds.Title)
	m.sortable = ds.Settings.Sortable
	m.searchable = ds.Settings.Searchable
	m.pageable = ds.Settings.Pageable

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// resolveDataset prefers an explicit dataset file and falls back to a
// database table.
func resolveDataset(dataPath, dbPath, table string) (dataset, error) {
	if dataPath != "" {
		return loadDataset(dataPath)
	}
	if dbPath != "" {
		if table == "" {
			return dataset{}, fmt.Errorf("-db needs -table")
		}
		db, err := store.Open(dbPath)
		if err != nil {
			return dataset{}, fmt.Errorf("open db: %w", err)
		}
		defer db.Close()

		cols, rows, err := store.LoadDataset(db, table)
		if err != nil {
			return dataset{}, err
		}
		return dataset{
			Title:    table,
			Columns:  cols,
			Rows:     rows,
			Settings: defaultSettings(),
		}, nil
	}
	return dataset{}, fmt.Errorf("no dataset: pass -data or -db/-table")
}
