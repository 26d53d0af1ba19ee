package layout_test

import (
	"fmt"

	"github.com/plotkit/plotkit/pkg/layout"
)

func ExampleLayout_Grid() {
	plots := make([]layout.Plot, 9)

	l := layout.New(plots, layout.Config{Orientation: layout.OrientationX})
	grid, err := l.Grid()
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d rows x %d cols\n", grid.Rows, grid.Cols)
	// Output: 2 rows x 5 cols
}

func ExamplePlanGrid_customPolicy() {
	cfg := layout.Config{
		Orientation: layout.OrientationY,
		Policy:      layout.DividedCeil(3, 3),
	}

	grid, err := layout.PlanGrid(70, cfg)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d rows x %d cols\n", grid.Rows, grid.Cols)
	// Output: 14 rows x 5 cols
}

func ExamplePlanGrid_override() {
	grid, err := layout.PlanGrid(10, layout.Config{Grid: &layout.Grid{Rows: 3, Cols: 5}})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d rows x %d cols\n", grid.Rows, grid.Cols)
	// Output: 3 rows x 5 cols
}
