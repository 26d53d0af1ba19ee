package layout

import "github.com/plotkit/plotkit/pkg/errors"

// Orientation selects the direction in which a layout fills plots first.
// It determines which grid dimension is the major (expanding) axis in
// the non-square modes.
type Orientation string

const (
	// OrientationX expands along the horizontal axis: the column count
	// is the major axis.
	OrientationX Orientation = "x"

	// OrientationY expands along the vertical axis: the row count is
	// the major axis.
	OrientationY Orientation = "y"

	// OrientationSquare keeps the grid as close to square as possible
	// on both axes. Expansion policies do not apply.
	OrientationSquare Orientation = "square"
)

// ParseOrientation converts a string ("x", "y", "square") to an
// Orientation. The empty string maps to OrientationSquare, matching the
// configuration default.
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case OrientationX, OrientationY, OrientationSquare:
		return Orientation(s), nil
	case "":
		return OrientationSquare, nil
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "invalid orientation: %q (must be 'x', 'y', or 'square')", s)
}

// String returns the canonical string form of the orientation.
func (o Orientation) String() string { return string(o) }
