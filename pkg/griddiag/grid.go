package griddiag

// Shape is one parsed shape declaration.
type Shape struct {
	Kind     Kind
	Fill     *Color // nil means the tool's default shape color
	Border   *Color // nil means no border
	Rotation int    // degrees, clockwise; 0 points right
	Size     string // raw size token ("12px", "50%", ...); empty means default
	Params   map[string]string
}

// Cell is one grid cell holding its shapes.
type Cell struct {
	Background *Color // nil means the tool's background
	Shapes     []Shape
}

// Grid is the parsed representation of a diagram file. Rows may have
// different cell counts; Cols reports the widest row.
type Grid struct {
	Cells [][]Cell
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return len(g.Cells) }

// Cols returns the cell count of the widest row.
func (g *Grid) Cols() int {
	cols := 0
	for _, row := range g.Cells {
		cols = max(cols, len(row))
	}
	return cols
}

// ShapeCount returns the total number of shapes in the grid.
func (g *Grid) ShapeCount() int {
	n := 0
	for _, row := range g.Cells {
		for _, c := range row {
			n += len(c.Shapes)
		}
	}
	return n
}
