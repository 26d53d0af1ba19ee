package sink

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/plotkit/plotkit/pkg/griddiag"
)

// SVGExporter renders grids as SVG documents: a grid line background
// with every cell's shapes drawn on top, rotated about the cell center.
type SVGExporter struct{}

// Export writes the SVG document for g to w.
func (e *SVGExporter) Export(g *griddiag.Grid, cfg griddiag.DrawConfig, w io.Writer) error {
	cell := cfg.CellSize
	width := g.Cols()*cell + cfg.BorderWidth
	height := g.Rows()*cell + cfg.BorderWidth

	canvas := svg.New(w)
	canvas.Start(width, height)

	if cfg.Background != "transparent" {
		bg, err := griddiag.ParseColor(cfg.Background)
		if err != nil {
			return err
		}
		canvas.Rect(0, 0, width, height, "fill:"+bg.Web())
	}

	grid, err := griddiag.ParseColor(cfg.GridColor)
	if err != nil {
		return err
	}
	canvas.Grid(0, 0, width, height, cell,
		fmt.Sprintf("stroke:%s;stroke-width:%d", grid.Web(), cfg.BorderWidth))

	defaultFill, err := griddiag.ParseColor(cfg.ShapeColor)
	if err != nil {
		return err
	}

	for y, row := range g.Cells {
		for x, c := range row {
			cx := x*cell + cell/2
			cy := y*cell + cell/2
			for _, shape := range c.Shapes {
				drawShapeSVG(canvas, shape, cx, cy, cell, defaultFill)
			}
		}
	}

	canvas.End()
	return nil
}

// drawShapeSVG renders one shape centered on (cx, cy) within a cell of
// the given size. Rotation happens about the cell center so orientation
// symbols behave the same for every shape kind.
func drawShapeSVG(canvas *svg.SVG, s griddiag.Shape, cx, cy, cell int, defaultFill griddiag.Color) {
	size := shapeSize(s.Size, cell)
	style := shapeStyle(s, defaultFill)

	canvas.TranslateRotate(cx, cy, float64(s.Rotation))
	defer canvas.Gend()

	h := size / 2
	switch s.Kind {
	case griddiag.KindCircle:
		canvas.Circle(0, 0, h, style)
	case griddiag.KindSquare:
		canvas.Rect(-h, -h, size, size, style)
	case griddiag.KindRectangle:
		canvas.Rect(-h, -size/3, size, 2*size/3, style)
	case griddiag.KindDiamond:
		canvas.Polygon([]int{0, h, 0, -h}, []int{-h, 0, h, 0}, style)
	case griddiag.KindTriangle:
		// Neutral orientation points right, like arrows
		canvas.Polygon([]int{h, -h, -h}, []int{0, -h, h}, style)
	case griddiag.KindStar:
		xs, ys := starPoints(size)
		canvas.Polygon(xs, ys, style)
	case griddiag.KindArrow:
		canvas.Line(-h, 0, size/4, 0, style+";stroke-width:2")
		canvas.Polygon([]int{h, size / 4, size / 4}, []int{0, -size / 6, size / 6}, style)
	}
}

// starPoints computes the ten vertices of a five-pointed star with the
// given outer diameter, starting from the top point.
func starPoints(size int) (xs, ys []int) {
	outer := float64(size) / 2
	inner := outer * 0.4
	xs = make([]int, 10)
	ys = make([]int, 10)
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := float64(i)*math.Pi/5 - math.Pi/2
		xs[i] = int(math.Round(r * math.Cos(angle)))
		ys[i] = int(math.Round(r * math.Sin(angle)))
	}
	return xs, ys
}

// shapeStyle builds the fill/stroke style string for a shape.
func shapeStyle(s griddiag.Shape, defaultFill griddiag.Color) string {
	fill := defaultFill
	if s.Fill != nil {
		fill = *s.Fill
	}
	style := "fill:" + fill.Web()
	if fill.Opacity < 1 {
		style += fmt.Sprintf(";fill-opacity:%.2f", fill.Opacity)
	}
	if s.Border != nil {
		style += ";stroke:" + s.Border.Web()
	}
	return style
}

// shapeSize resolves a size token to pixels within a cell of the given
// size. Without a token, shapes take 60% of the cell.
func shapeSize(token string, cell int) int {
	if token == "" {
		return cell * 6 / 10
	}

	var n int
	var unit string
	if _, err := fmt.Sscanf(token, "%d%s", &n, &unit); err != nil {
		return cell * 6 / 10
	}
	switch unit {
	case "px":
		return n
	case "em":
		return n * 16
	case "cm":
		return n * 38 // ~96 dpi
	case "%":
		return cell * n / 100
	}
	return cell * 6 / 10
}
