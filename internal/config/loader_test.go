package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"toyrobot/internal/interpreter"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Table.Width != 5 || cfg.Table.Height != 5 {
		t.Errorf("Table = %+v, want 5x5", cfg.Table)
	}
	if cfg.MultiDigit {
		t.Error("MultiDigit = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "toyrobot.yaml", `
table:
  width: 12
  height: 8
multi_digit: true
log:
  level: debug
  format: json
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Table.Width != 12 || cfg.Table.Height != 8 {
		t.Errorf("Table = %+v, want 12x8", cfg.Table)
	}
	if !cfg.MultiDigit {
		t.Error("MultiDigit = false, want true")
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(strings.NewReader("table:\n  width: 7\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Table.Width != 7 || cfg.Table.Height != 5 {
		t.Errorf("Table = %+v, want 7x5", cfg.Table)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %s, want warn", cfg.Log.Level)
	}

	cfg, err = Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load(empty) error = %v", err)
	}
	if cfg.Table.Width != 5 {
		t.Errorf("Table.Width = %d, want 5", cfg.Table.Width)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"zero width", "table:\n  width: 0\n", ErrInvalidDimensions},
		{"negative height", "table:\n  height: -3\n", ErrInvalidDimensions},
		{"bad level", "log:\n  level: loud\n", ErrInvalidLogging},
		{"bad format", "log:\n  format: xml\n", ErrInvalidLogging},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(strings.NewReader(tt.content))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Load(strings.NewReader("table:\n  width: 0\n")); !errors.Is(err, interpreter.ErrInvalidDimensions) {
		t.Errorf("Load() error = %v, want interpreter.ErrInvalidDimensions", err)
	}

	if _, err := Load(strings.NewReader("robots: 3\n")); err == nil {
		t.Error("Load() with unknown key succeeded")
	}
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("missing file error = %v, want ErrConfigNotFound", err)
	}
	if _, err := LoadFile(t.TempDir()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("directory error = %v, want ErrUnsupportedFormat", err)
	}
	path := writeFile(t, "toyrobot.toml", "width = 5\n")
	if _, err := LoadFile(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("toml error = %v, want ErrUnsupportedFormat", err)
	}
}
