package sink

import (
	"io"

	"git.sr.ht/~sbinet/gg"

	"github.com/plotkit/plotkit/pkg/griddiag"
)

// PNGExporter renders grids to raster PNG images using a 2D canvas.
type PNGExporter struct{}

// Export writes the PNG image for g to w.
func (e *PNGExporter) Export(g *griddiag.Grid, cfg griddiag.DrawConfig, w io.Writer) error {
	cell := cfg.CellSize
	width := g.Cols()*cell + cfg.BorderWidth
	height := g.Rows()*cell + cfg.BorderWidth

	dc := gg.NewContext(width, height)

	if cfg.Background != "transparent" {
		bg, err := griddiag.ParseColor(cfg.Background)
		if err != nil {
			return err
		}
		dc.SetRGBA(bg.Red, bg.Green, bg.Blue, bg.Opacity)
		dc.Clear()
	}

	grid, err := griddiag.ParseColor(cfg.GridColor)
	if err != nil {
		return err
	}
	drawGridLines(dc, g, cfg, grid)

	defaultFill, err := griddiag.ParseColor(cfg.ShapeColor)
	if err != nil {
		return err
	}

	for y, row := range g.Cells {
		for x, c := range row {
			cx := float64(x*cell + cell/2)
			cy := float64(y*cell + cell/2)
			for _, shape := range c.Shapes {
				drawShapePNG(dc, shape, cx, cy, cell, defaultFill)
			}
		}
	}

	return dc.EncodePNG(w)
}

// drawGridLines strokes the cell borders over the full image.
func drawGridLines(dc *gg.Context, g *griddiag.Grid, cfg griddiag.DrawConfig, color griddiag.Color) {
	cell := float64(cfg.CellSize)
	w := float64(g.Cols()*cfg.CellSize + cfg.BorderWidth)
	h := float64(g.Rows()*cfg.CellSize + cfg.BorderWidth)

	dc.SetRGBA(color.Red, color.Green, color.Blue, color.Opacity)
	dc.SetLineWidth(float64(cfg.BorderWidth))
	for x := 0; x <= g.Cols(); x++ {
		fx := float64(x) * cell
		dc.DrawLine(fx, 0, fx, h)
	}
	for y := 0; y <= g.Rows(); y++ {
		fy := float64(y) * cell
		dc.DrawLine(0, fy, w, fy)
	}
	dc.Stroke()
}

// drawShapePNG renders one shape centered on (cx, cy), mirroring the
// SVG geometry so both sinks draw identical diagrams. The fill is laid
// down first, then the border is stroked over the same path.
func drawShapePNG(dc *gg.Context, s griddiag.Shape, cx, cy float64, cell int, defaultFill griddiag.Color) {
	size := float64(shapeSize(s.Size, cell))

	fill := defaultFill
	if s.Fill != nil {
		fill = *s.Fill
	}

	dc.Push()
	defer dc.Pop()
	if s.Rotation != 0 {
		dc.RotateAbout(gg.Radians(float64(s.Rotation)), cx, cy)
	}

	if s.Kind == griddiag.KindArrow {
		// The arrow shaft is a stroked line, not part of the fill path
		dc.SetRGBA(fill.Red, fill.Green, fill.Blue, fill.Opacity)
		dc.SetLineWidth(2)
		dc.DrawLine(cx-size/2, cy, cx+size/4, cy)
		dc.Stroke()
	}

	shapePath(dc, s.Kind, cx, cy, size)
	dc.SetRGBA(fill.Red, fill.Green, fill.Blue, fill.Opacity)
	if s.Border != nil {
		dc.FillPreserve()
		b := *s.Border
		dc.SetRGBA(b.Red, b.Green, b.Blue, b.Opacity)
		dc.SetLineWidth(1)
		dc.Stroke()
	} else {
		dc.Fill()
	}
}

// shapePath traces the outline of a shape centered on (cx, cy).
func shapePath(dc *gg.Context, kind griddiag.Kind, cx, cy, size float64) {
	h := size / 2
	switch kind {
	case griddiag.KindCircle:
		dc.DrawCircle(cx, cy, h)
	case griddiag.KindSquare:
		dc.DrawRectangle(cx-h, cy-h, size, size)
	case griddiag.KindRectangle:
		dc.DrawRectangle(cx-h, cy-size/3, size, 2*size/3)
	case griddiag.KindDiamond:
		dc.MoveTo(cx, cy-h)
		dc.LineTo(cx+h, cy)
		dc.LineTo(cx, cy+h)
		dc.LineTo(cx-h, cy)
		dc.ClosePath()
	case griddiag.KindTriangle:
		// Neutral orientation points right, like arrows
		dc.MoveTo(cx+h, cy)
		dc.LineTo(cx-h, cy-h)
		dc.LineTo(cx-h, cy+h)
		dc.ClosePath()
	case griddiag.KindStar:
		xs, ys := starPoints(int(size))
		dc.MoveTo(cx+float64(xs[0]), cy+float64(ys[0]))
		for i := 1; i < len(xs); i++ {
			dc.LineTo(cx+float64(xs[i]), cy+float64(ys[i]))
		}
		dc.ClosePath()
	case griddiag.KindArrow:
		dc.MoveTo(cx+h, cy)
		dc.LineTo(cx+size/4, cy-size/6)
		dc.LineTo(cx+size/4, cy+size/6)
		dc.ClosePath()
	}
}
