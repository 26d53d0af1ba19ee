package griddiag

import (
	"github.com/BurntSushi/toml"

	"github.com/plotkit/plotkit/pkg/errors"
)

// DrawConfig holds the rendering options for grid diagrams.
// It is loadable from a TOML file; every field is optional and falls
// back to the value from DefaultDrawConfig.
type DrawConfig struct {
	// Background is the image background color, or "transparent".
	Background string `toml:"background"`

	// ShapeColor is the default fill for shapes without an explicit one.
	ShapeColor string `toml:"shape_color"`

	// CellSize is the edge length of one grid cell in pixels.
	CellSize int `toml:"cell_size"`

	// GridColor is the color of the grid lines.
	GridColor string `toml:"grid_color"`

	// BorderWidth is the grid line width in pixels.
	BorderWidth int `toml:"border_width"`

	// Format selects the output format ("svg" or "png") used when an
	// output path carries no known extension.
	Format string `toml:"format"`
}

// DefaultDrawConfig returns the built-in rendering options.
func DefaultDrawConfig() DrawConfig {
	return DrawConfig{
		Background:  "transparent",
		ShapeColor:  "#FF0000",
		CellSize:    48,
		GridColor:   "#000000",
		BorderWidth: 1,
		Format:      "svg",
	}
}

// LoadDrawConfig reads a TOML draw configuration from path, merged over
// the defaults.
func LoadDrawConfig(path string) (DrawConfig, error) {
	cfg := DefaultDrawConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DrawConfig{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "draw config %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return DrawConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c DrawConfig) Validate() error {
	if c.CellSize < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "cell_size must be positive, got %d", c.CellSize)
	}
	if c.BorderWidth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "border_width cannot be negative")
	}
	if c.Format != "svg" && c.Format != "png" {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg' or 'png')", c.Format)
	}
	if c.Background != "transparent" {
		if _, err := ParseColor(c.Background); err != nil {
			return err
		}
	}
	if _, err := ParseColor(c.ShapeColor); err != nil {
		return err
	}
	if _, err := ParseColor(c.GridColor); err != nil {
		return err
	}
	return nil
}
