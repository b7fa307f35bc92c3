package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("FOLIO_CONFIG_DIR", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Catalog != "" || cfg.TUI != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
	if cfg.Theme() != "" || cfg.Glyphs() != "" {
		t.Fatalf("expected empty tui prefs")
	}
}

func TestSave_WritesAndKeepsBackup(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FOLIO_CONFIG_DIR", dir)

	cfg := &Config{}
	if err := cfg.Set("tui.glyphs", "ascii"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := cfg.Set("tui.theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Glyphs() != "ascii" || loaded.Theme() != "dark" {
		t.Fatalf("unexpected loaded config %+v", loaded.TUI)
	}

	bak, err := os.ReadFile(filepath.Join(dir, "config.json.bak"))
	if err != nil {
		t.Fatalf("expected backup: %v", err)
	}
	if strings.Contains(string(bak), "dark") || !strings.Contains(string(bak), "ascii") {
		t.Fatalf("expected backup to hold the previous config, got %s", bak)
	}
}

func TestSet_RejectsUnknownKeysAndValues(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Set("nope", "x"); err == nil || !strings.Contains(err.Error(), "tui.glyphs") {
		t.Fatalf("expected unknown key error listing keys, got %v", err)
	}
	if err := cfg.Set("tui.theme", "purple"); err == nil {
		t.Fatalf("expected invalid theme error")
	}
	if err := cfg.Set("catalog", "rel/catalog.yaml"); err != nil {
		t.Fatalf("set catalog: %v", err)
	}
	if !filepath.IsAbs(cfg.Catalog) {
		t.Fatalf("expected absolute catalog path, got %q", cfg.Catalog)
	}
	if err := cfg.Set("catalog", ""); err != nil || cfg.Catalog != "" {
		t.Fatalf("expected empty value to clear catalog")
	}
}
