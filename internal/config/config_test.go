package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JASKGRID_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.UI.PageSize != 10 {
		t.Errorf("page size = %d, want 10", c.UI.PageSize)
	}
	if c.UI.Selectable != "none" {
		t.Errorf("selectable = %q, want none", c.UI.Selectable)
	}
	if c.Data.Path != "" || c.Data.DB != "" {
		t.Errorf("data defaults not empty: %+v", c.Data)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[data]
path = "people.csv"

[ui]
page_size = 25
selectable = "multiple"

[log]
file = "debug.log"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("JASKGRID_CONFIG", path)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Data.Path != "people.csv" {
		t.Errorf("data path = %q", c.Data.Path)
	}
	if c.UI.PageSize != 25 {
		t.Errorf("page size = %d, want 25", c.UI.PageSize)
	}
	if c.UI.Selectable != "multiple" {
		t.Errorf("selectable = %q", c.UI.Selectable)
	}
	if c.Log.File != "debug.log" {
		t.Errorf("log file = %q", c.Log.File)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("JASKGRID_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("JASKGRID_UI_PAGE_SIZE", "7")
	t.Setenv("JASKGRID_DATA_TABLE", "people")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.UI.PageSize != 7 {
		t.Errorf("page size = %d, want env override 7", c.UI.PageSize)
	}
	if c.Data.Table != "people" {
		t.Errorf("table = %q, want env override people", c.Data.Table)
	}
}

func TestLoadRejectsNonPositivePageSize(t *testing.T) {
	t.Setenv("JASKGRID_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("JASKGRID_UI_PAGE_SIZE", "-3")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.UI.PageSize != 10 {
		t.Errorf("page size = %d, want fallback 10", c.UI.PageSize)
	}
}
