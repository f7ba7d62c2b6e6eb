package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/scoresheet/pkg/errors"
	"github.com/matzehuels/scoresheet/pkg/render/sheet/layout"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
font = "/fonts/custom.ttf"
font_size = 20

[layout]
bars_per_column = 8
bar_height = 400
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	want.Font = "/fonts/custom.ttf"
	want.FontSize = 20
	want.Layout.BarsPerColumn = 8
	want.Layout.BarHeight = 400
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", `font = `, "parse"},
		{"unknown key", "[layout]\nbar_heigth = 10\n", "layout.bar_heigth"},
		{"zero bars per column", "[layout]\nbars_per_column = 0\n", "bars per column"},
		{"negative font size", "font_size = -1\n", "font_size"},
		{"wrong type", `font_size = "big"`, "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("Load() error = %v, want INVALID_CONFIG", err)
			}
			if !strings.Contains(errors.Details(err), tt.want) {
				t.Errorf("error details = %q, want mention of %q", errors.Details(err), tt.want)
			}
			if cfg.Layout != layout.DefaultSettings() {
				t.Errorf("failed Load() returned non-default layout %+v", cfg.Layout)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join("scoresheet", "config.toml")) {
		t.Errorf("DefaultPath() = %q", path)
	}
}
