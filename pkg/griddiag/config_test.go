package griddiag

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plotkit/plotkit/pkg/errors"
)

func TestDefaultDrawConfig(t *testing.T) {
	cfg := DefaultDrawConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() on defaults failed: %v", err)
	}
	if cfg.Format != "svg" {
		t.Errorf("Format = %q, want svg", cfg.Format)
	}
	if cfg.CellSize != 48 {
		t.Errorf("CellSize = %d, want 48", cfg.CellSize)
	}
}

func TestLoadDrawConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draw.toml")
	content := `
background = "white"
cell_size = 64
format = "png"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDrawConfig(path)
	if err != nil {
		t.Fatalf("LoadDrawConfig() failed: %v", err)
	}

	// Overridden fields come from the file.
	if cfg.Background != "white" {
		t.Errorf("Background = %q, want white", cfg.Background)
	}
	if cfg.CellSize != 64 {
		t.Errorf("CellSize = %d, want 64", cfg.CellSize)
	}
	if cfg.Format != "png" {
		t.Errorf("Format = %q, want png", cfg.Format)
	}

	// Unset fields keep their defaults.
	if cfg.ShapeColor != "#FF0000" {
		t.Errorf("ShapeColor = %q, want default #FF0000", cfg.ShapeColor)
	}
	if cfg.BorderWidth != 1 {
		t.Errorf("BorderWidth = %d, want default 1", cfg.BorderWidth)
	}
}

func TestLoadDrawConfigMissingFile(t *testing.T) {
	_, err := LoadDrawConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want code %v", err, errors.ErrCodeInvalidConfig)
	}
}

func TestDrawConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*DrawConfig)
		wantCode errors.Code
	}{
		{
			name:     "zero cell size",
			mutate:   func(c *DrawConfig) { c.CellSize = 0 },
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "negative border width",
			mutate:   func(c *DrawConfig) { c.BorderWidth = -1 },
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "unknown format",
			mutate:   func(c *DrawConfig) { c.Format = "pdf" },
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "bad background color",
			mutate:   func(c *DrawConfig) { c.Background = "#GGGGGG" },
			wantCode: errors.ErrCodeInvalidColor,
		},
		{
			name:     "bad shape color",
			mutate:   func(c *DrawConfig) { c.ShapeColor = "notacolor" },
			wantCode: errors.ErrCodeInvalidColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDrawConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Validate() = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}
