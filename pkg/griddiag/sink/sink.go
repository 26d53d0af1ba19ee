// Package sink renders parsed grid diagrams to output formats.
//
// Two exporters exist: SVG (vector, the default) and PNG (raster).
// [ForPath] selects an exporter from an output file extension, matching
// how the CLI routes diagram files to their rendered outputs.
package sink

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/plotkit/plotkit/pkg/errors"
	"github.com/plotkit/plotkit/pkg/griddiag"
)

// Exporter renders a grid with the given draw options to w.
type Exporter interface {
	Export(g *griddiag.Grid, cfg griddiag.DrawConfig, w io.Writer) error
}

// exporters maps output extensions to constructors.
var exporters = map[string]func() Exporter{
	"svg": func() Exporter { return &SVGExporter{} },
	"png": func() Exporter { return &PNGExporter{} },
}

// ForPath returns the exporter matching the extension of target.
// Unknown extensions are a configuration error.
func ForPath(target string) (Exporter, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(target), "."))
	if mk, ok := exporters[ext]; ok {
		return mk(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat,
		"no exporter for extension %q (must be 'svg' or 'png')", ext)
}

// ExportFile renders g to the file at target, choosing the exporter
// from the target's extension.
func ExportFile(g *griddiag.Grid, cfg griddiag.DrawConfig, target string) error {
	exp, err := ForPath(target)
	if err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	return exp.Export(g, cfg, f)
}
