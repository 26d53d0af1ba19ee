// Package layout computes grid dimensions for multi-plot figures.
//
// Given a number of plots and a [Config], the planner decides how many
// rows and columns are needed to host every plot. Three sizing strategies
// exist, selected by the configured [Orientation]:
//
//   - [OrientationSquare]: the grid is kept as close to square as
//     possible, with the column count fixed at ceil(sqrt(n)).
//   - [OrientationX]: the column count is the major (expanding) axis and
//     the row count follows from the expansion policy.
//   - [OrientationY]: like OrientationX with the axes swapped.
//
// In the non-square modes an [ExpansionPolicy] maps the major axis size
// to the minor axis size. Two canonical policies are provided: [Minus]
// and [DividedCeil]. When no policy is configured, [DefaultPolicy]
// (DividedCeil(4, 2)) is used.
//
// # Usage
//
//	l := layout.New(plots, layout.Config{Orientation: layout.OrientationX})
//	grid, err := l.Grid()
//	if err != nil {
//	    return err
//	}
//	// grid.Rows * grid.Cols >= len(plots)
//
// An explicit grid override bypasses automatic sizing entirely:
//
//	cfg := layout.Config{Grid: &layout.Grid{Rows: 3, Cols: 5}}
//
// Grid returns a configuration error if the override cannot host every
// plot.
//
// # Purity and concurrency
//
// Grid is a pure query over the current plot count and configuration: no
// caching, no I/O, no shared state between calls. Distinct Layout values
// may be used concurrently; mutating a single Layout while Grid runs is
// undefined and must be serialized by the caller.
package layout
