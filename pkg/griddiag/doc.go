// Package griddiag turns small text descriptions into grid diagrams.
//
// A diagram file holds one grid row per line, with cells separated by
// '|'. Each cell contains zero or more shape declarations of the form
//
//	<repeat><ShapeID>{param,param,...}
//
// where repeat is an optional count (default 1), ShapeID is one of the
// short symbols (A, C, D, R, Sq, St, T) or their long names (Arrow,
// Circle, Diamond, Rectangle, Square, Star, Triangle), and the optional
// parameter block configures the shape. Parameters are either key=value
// pairs (fill=red, border=#00FF00), an orientation symbol (B, Z, C, Q,
// E, L, R, T) selecting a rotation, or a size token (12px, 50%, 2em).
//
// Example grid with two rows and three columns:
//
//	3C{red} | Sq{50%} | A{R}
//	T{fill=#0000FF} | | 2St
//
// Parsed grids are exported to SVG or PNG through the sink subpackage.
package griddiag
