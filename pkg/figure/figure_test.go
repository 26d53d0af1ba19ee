package figure

import (
	"bytes"
	"strings"
	"testing"

	svg "github.com/ajstarks/svgo"

	"github.com/plotkit/plotkit/pkg/layout"
)

// markerPlot records the cell it was asked to render into.
type markerPlot struct {
	cell Rect
}

func (m *markerPlot) Render(canvas *svg.SVG, cell Rect) {
	m.cell = cell
	canvas.Rect(cell.X, cell.Y, cell.W, cell.H, "fill:none;stroke:black")
}

func TestFigure_Render_RowMajorCells(t *testing.T) {
	plots := []*markerPlot{{}, {}, {}, {}, {}}
	f := New(nil, layout.Config{Orientation: layout.OrientationX})
	for _, p := range plots {
		f.Plots = append(f.Plots, p)
	}

	// Default policy: 5 plots on X gives 2 rows x 4 cols.
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not an SVG document")
	}

	// First row cells share a Y, second row starts below
	if plots[0].cell.Y != plots[3].cell.Y {
		t.Errorf("plots 0 and 3 should share a row: %v vs %v", plots[0].cell, plots[3].cell)
	}
	if plots[4].cell.Y <= plots[0].cell.Y {
		t.Errorf("plot 4 should be on the second row: %v vs %v", plots[4].cell, plots[0].cell)
	}
	if plots[1].cell.X <= plots[0].cell.X {
		t.Errorf("plot 1 should be right of plot 0: %v vs %v", plots[1].cell, plots[0].cell)
	}
}

func TestFigure_Render_Metadata(t *testing.T) {
	f := New([]Plot{PlotFunc(func(c *svg.SVG, cell Rect) {})}, layout.Config{
		Title:  "Histograms",
		Legend: "upper right",
		XLabel: "value",
		YLabel: "count",
	})

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"Histograms", "value", "count", "legend"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestFigure_Render_OverrideTooSmall(t *testing.T) {
	f := New(make([]Plot, 15), layout.Config{Grid: &layout.Grid{Rows: 2, Cols: 2}})

	var buf bytes.Buffer
	if err := f.Render(&buf); err == nil {
		t.Fatal("expected configuration error for a too-small override")
	}
}

func TestFigure_Render_Empty(t *testing.T) {
	f := New(nil, layout.Config{})

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		t.Fatalf("Render of empty figure: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("empty figure should still render a document")
	}
}

func TestLegendAnchor(t *testing.T) {
	tests := []struct {
		pos   string
		whereX string // "left" or "right"
	}{
		{"upper left", "left"},
		{"lower left", "left"},
		{"upper right", "right"},
		{"lower right", "right"},
		{"bogus", "right"}, // fallback
	}
	const w, h = 800, 600
	for _, tt := range tests {
		x, _ := legendAnchor(tt.pos, w, h, 0, 0)
		onLeft := x < w/2
		if (tt.whereX == "left") != onLeft {
			t.Errorf("legendAnchor(%q): x=%d on wrong side", tt.pos, x)
		}
	}
}
