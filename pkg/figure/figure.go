// Package figure renders multi-plot layouts to SVG.
//
// A Figure pairs a slice of renderable plots with a [layout.Config].
// The grid planner decides the (rows, cols) arrangement, one SVG cell
// is allocated per plot in row-major order, and configuration metadata
// (title, legend, common axis labels) is drawn onto the composite.
//
// Plots are opaque to this package: anything implementing [Plot] can
// draw into its cell. [PlotFunc] adapts a plain function.
package figure

import (
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/plotkit/plotkit/pkg/layout"
)

// Default cell geometry: 3.8in x 4.8in per plot at 96 dpi.
const (
	DefaultDPI        = 96
	DefaultCellWidth  = 365 // round(3.8 * 96)
	DefaultCellHeight = 461 // round(4.8 * 96)

	titleMargin = 40
	labelMargin = 30
	cellPadding = 8
)

// Rect is a cell area in SVG user units.
type Rect struct {
	X, Y, W, H int
}

// Plot draws one panel of a figure into the given cell.
type Plot interface {
	Render(canvas *svg.SVG, cell Rect)
}

// PlotFunc adapts a function to the Plot interface.
type PlotFunc func(canvas *svg.SVG, cell Rect)

// Render implements Plot.
func (f PlotFunc) Render(canvas *svg.SVG, cell Rect) { f(canvas, cell) }

// Figure is a multi-plot composite rendered on a planned grid.
type Figure struct {
	Plots  []Plot
	Config layout.Config

	// CellWidth and CellHeight override the per-cell pixel size.
	// Zero means the defaults.
	CellWidth  int
	CellHeight int
}

// New creates a figure over the given plots.
func New(plots []Plot, cfg layout.Config) *Figure {
	return &Figure{Plots: plots, Config: cfg}
}

// Grid returns the planned grid for the current plots and configuration.
func (f *Figure) Grid() (layout.Grid, error) {
	return layout.PlanGrid(len(f.Plots), f.Config)
}

// Render writes the composite SVG to w. The grid is computed on demand;
// an invalid grid override surfaces as a configuration error here.
func (f *Figure) Render(w io.Writer) error {
	grid, err := f.Grid()
	if err != nil {
		return err
	}

	cw, ch := f.CellWidth, f.CellHeight
	if cw == 0 {
		cw = DefaultCellWidth
	}
	if ch == 0 {
		ch = DefaultCellHeight
	}

	top, left, bottom := 0, 0, 0
	if f.Config.Title != "" {
		top = titleMargin
	}
	if f.Config.YLabel != "" {
		left = labelMargin
	}
	if f.Config.XLabel != "" {
		bottom = labelMargin
	}

	width := left + grid.Cols*cw
	height := top + grid.Rows*ch + bottom
	if width == 0 {
		// Degenerate zero-plot grid still yields a valid document.
		width, height = 1, 1
	}

	canvas := svg.New(w)
	canvas.Start(width, height)

	if f.Config.Title != "" {
		canvas.Text(width/2, top/2+6, f.Config.Title,
			"text-anchor:middle;font-size:18px;font-family:sans-serif")
	}
	if f.Config.XLabel != "" {
		canvas.Text(left+(grid.Cols*cw)/2, height-labelMargin/3, f.Config.XLabel,
			"text-anchor:middle;font-size:13px;font-family:sans-serif")
	}
	if f.Config.YLabel != "" {
		canvas.TranslateRotate(labelMargin/2, top+(grid.Rows*ch)/2, 270)
		canvas.Text(0, 0, f.Config.YLabel,
			"text-anchor:middle;font-size:13px;font-family:sans-serif")
		canvas.Gend()
	}

	// Cells are allocated row-major, one per plot.
	for i, p := range f.Plots {
		row := i / grid.Cols
		col := i % grid.Cols
		cell := Rect{
			X: left + col*cw + cellPadding,
			Y: top + row*ch + cellPadding,
			W: cw - 2*cellPadding,
			H: ch - 2*cellPadding,
		}
		p.Render(canvas, cell)
	}

	if f.Config.Legend != "" {
		f.renderLegend(canvas, width, height, top, bottom)
	}

	canvas.End()
	return nil
}

// Export renders the figure to a file at path.
func (f *Figure) Export(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return f.Render(out)
}

// legend box geometry
const (
	legendWidth  = 120
	legendHeight = 26
	legendInset  = 12
)

// renderLegend draws an empty legend frame at the configured position.
// Plots that want entries draw them via the Plot interface; the frame
// gives them a consistent anchor.
func (f *Figure) renderLegend(canvas *svg.SVG, width, height, top, bottom int) {
	x, y := legendAnchor(f.Config.Legend, width, height, top, bottom)
	canvas.Rect(x, y, legendWidth, legendHeight,
		"fill:white;stroke:#666666;stroke-width:1")
	canvas.Text(x+legendWidth/2, y+legendHeight/2+4, "legend",
		"text-anchor:middle;font-size:11px;font-family:sans-serif;fill:#666666")
}

// legendAnchor maps a matplotlib-style position string to the top-left
// corner of the legend box. Unknown positions fall back to upper right.
func legendAnchor(pos string, width, height, top, bottom int) (int, int) {
	switch pos {
	case "upper left":
		return legendInset, top + legendInset
	case "lower left":
		return legendInset, height - bottom - legendHeight - legendInset
	case "lower right":
		return width - legendWidth - legendInset, height - bottom - legendHeight - legendInset
	default: // "upper right" and anything unrecognized
		return width - legendWidth - legendInset, top + legendInset
	}
}
