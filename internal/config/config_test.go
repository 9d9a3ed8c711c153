package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadFrom(nil)
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}
	if cfg.LogFile != "image_labels.csv" {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
	if len(cfg.Extensions) != 3 {
		t.Fatalf("Extensions = %v", cfg.Extensions)
	}
	if cfg.DisplayWidth != 500 || cfg.DisplayHeight != 500 {
		t.Fatalf("display box = %dx%d", cfg.DisplayWidth, cfg.DisplayHeight)
	}
	if cfg.Sorted || cfg.Seed != 0 {
		t.Fatalf("shuffle settings not defaulted: sorted=%v seed=%d", cfg.Sorted, cfg.Seed)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sortpix.toml")
	content := `
extensions = [".png", ".webp"]
log_file = "labels.csv"
seed = 42
sorted = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := loadFrom([]string{path})
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}
	if len(cfg.Extensions) != 2 || cfg.Extensions[1] != ".webp" {
		t.Fatalf("Extensions = %v", cfg.Extensions)
	}
	if cfg.LogFile != "labels.csv" {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
	if cfg.Seed != 42 || !cfg.Sorted {
		t.Fatalf("shuffle settings not loaded: seed=%d sorted=%v", cfg.Seed, cfg.Sorted)
	}
	// Unset keys keep defaults.
	if cfg.DisplayWidth != 500 {
		t.Fatalf("DisplayWidth = %d, want default", cfg.DisplayWidth)
	}
}

func TestLoad_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "global.toml")
	second := filepath.Join(dir, "local.toml")
	if err := os.WriteFile(first, []byte(`log_file = "a.csv"`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(second, []byte(`log_file = "b.csv"`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := loadFrom([]string{first, second})
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}
	if cfg.LogFile != "b.csv" {
		t.Fatalf("LogFile = %q, want b.csv", cfg.LogFile)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name string
		bad  string
	}{
		{"MissingDot", `extensions = ["png"]`},
		{"EmptyExtensions", `extensions = []`},
		{"PathInLogFile", `log_file = "sub/labels.csv"`},
		{"TinyDisplay", `display_width = 10`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "sortpix.toml")
			if err := os.WriteFile(path, []byte(tc.bad), 0644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := loadFrom([]string{path}); err == nil {
				t.Fatalf("expected validation error for %s", tc.bad)
			}
		})
	}
}
