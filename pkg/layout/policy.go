package layout

import "fmt"

// ExpansionPolicy maps a major axis size to a minor axis size in the
// linear orientations. The major axis is allowed to grow from
// MinimumMajor upward until major * MinorSize(major) can host every
// plot.
//
// Contract: MinorSize must return a value >= 1 for every major >= 1,
// and major * MinorSize(major) must eventually exceed any finite plot
// count as major grows. The planner does not guard against policies
// that violate this; a broken policy makes the search loop forever.
type ExpansionPolicy interface {
	// MinorSize returns the minor axis size for the given major axis size.
	MinorSize(major int) int

	// MinimumMajor returns the smallest major axis size worth using
	// before the planner starts adding minor lines.
	MinimumMajor() int
}

// DefaultPolicy is the expansion policy used when a configuration does
// not supply one. It allows up to four plots on the major axis before
// opening new lines, with the minor axis at half the major (rounded up).
var DefaultPolicy = DividedCeil(4, 2)

// policy is the shared implementation behind the canonical constructors.
type policy struct {
	minimum int
	minor   func(major int) int
	name    string
}

func (p policy) MinorSize(major int) int { return p.minor(major) }
func (p policy) MinimumMajor() int       { return p.minimum }
func (p policy) String() string          { return p.name }

// Minus returns a policy whose minor axis size is the major size
// decreased by subtrahend, floored at 1:
//
//	minor = max(1, major - subtrahend)
func Minus(minimum, subtrahend int) ExpansionPolicy {
	return policy{
		minimum: minimum,
		minor:   func(major int) int { return max(1, major-subtrahend) },
		name:    fmt.Sprintf("M%d & R-%d", minimum, subtrahend),
	}
}

// DividedCeil returns a policy whose minor axis size is the major size
// divided by divisor, rounded up:
//
//	minor = ceil(major / divisor)
func DividedCeil(minimum, divisor int) ExpansionPolicy {
	return policy{
		minimum: minimum,
		minor:   func(major int) int { return ceilDiv(major, divisor) },
		name:    fmt.Sprintf("M%d & R/%d", minimum, divisor),
	}
}

// ceilDiv returns ceil(a / b) for positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
