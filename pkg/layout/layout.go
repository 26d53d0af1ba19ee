package layout

import (
	"math"

	"github.com/plotkit/plotkit/pkg/errors"
)

// Plot is an opaque placeholder for one panel in a layout. The planner
// only ever uses the number of plots; rendering packages define the
// concrete plot types.
type Plot any

// Grid holds the computed (or overridden) grid dimensions. Rows * Cols
// is the number of cells available to host plots.
type Grid struct {
	Rows int
	Cols int
}

// Capacity returns the number of cells in the grid.
func (g Grid) Capacity() int { return g.Rows * g.Cols }

// Config defines how a layout arranges its plots.
//
// The zero value is a valid configuration: square orientation, automatic
// sizing, no decoration.
type Config struct {
	// Orientation selects the fill direction. The empty value means
	// OrientationSquare.
	Orientation Orientation

	// Policy is the expansion policy for the linear orientations. Nil
	// means DefaultPolicy. Ignored when Orientation is square.
	Policy ExpansionPolicy

	// Grid, when non-nil, overrides automatic sizing entirely. It is
	// authoritative regardless of orientation and policy, but must be
	// able to host every plot.
	Grid *Grid

	// Title is the overall figure title. Empty means no title.
	Title string

	// Legend is the composite legend position (e.g. "upper right").
	// Empty means no legend.
	Legend string

	// XLabel and YLabel are common axis labels for the whole figure.
	XLabel string
	YLabel string
}

// Layout owns an ordered sequence of plots and the configuration used
// to arrange them. Mutating Plots or Config changes the result of
// subsequent Grid calls; nothing is cached.
type Layout struct {
	Plots  []Plot
	Config Config
}

// New creates a layout over the given plots. A nil plots slice is a
// valid empty layout.
func New(plots []Plot, cfg Config) *Layout {
	return &Layout{Plots: plots, Config: cfg}
}

// Grid computes the grid dimensions for the current plots and
// configuration. See PlanGrid for the sizing rules.
func (l *Layout) Grid() (Grid, error) {
	return PlanGrid(len(l.Plots), l.Config)
}

// PlanGrid computes the (rows, cols) grid hosting n plots under cfg.
//
// If cfg.Grid is set it is returned unchanged, unless its capacity is
// smaller than n, in which case a configuration error is returned. In
// square orientation the column count is ceil(sqrt(n)) and rows follow.
// In the linear orientations the major axis starts at the policy's
// minimum and grows until major * MinorSize(major) >= n; the minor axis
// is then ceil(n / major).
//
// For every successful result, Rows * Cols >= n. Zero plots in square
// orientation yield the degenerate grid (0, 0).
func PlanGrid(n int, cfg Config) (Grid, error) {
	if cfg.Grid != nil {
		if cfg.Grid.Capacity() < n {
			return Grid{}, errors.New(errors.ErrCodeGridTooSmall,
				"grid %dx%d cannot host %d plots", cfg.Grid.Rows, cfg.Grid.Cols, n)
		}
		return *cfg.Grid, nil
	}

	switch cfg.Orientation {
	case OrientationX, OrientationY:
		p := cfg.Policy
		if p == nil {
			p = DefaultPolicy
		}
		return planLinear(n, cfg.Orientation, p), nil
	default:
		return planSquare(n), nil
	}
}

// planSquare keeps the grid as square as possible, favoring columns.
func planSquare(n int) Grid {
	if n == 0 {
		return Grid{}
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := n / cols
	if rows*cols < n {
		rows++
	}
	return Grid{Rows: rows, Cols: cols}
}

// planLinear sizes the major axis with the expansion policy and maps
// the (major, minor) pair back to (rows, cols) for the orientation.
func planLinear(n int, o Orientation, p ExpansionPolicy) Grid {
	var major, minor int
	if n <= p.MinimumMajor() {
		major, minor = n, 1
	} else {
		major = p.MinimumMajor()
		for major*p.MinorSize(major) < n {
			major++
		}
		minor = ceilDiv(n, major)
	}

	// X expands on columns, Y on rows.
	if o == OrientationX {
		return Grid{Rows: minor, Cols: major}
	}
	return Grid{Rows: major, Cols: minor}
}
