package griddiag

// Grammar symbols shared by the parser and documentation.
const (
	CellSeparator   = "|"
	ParamsStart     = "{"
	ParamsEnd       = "}"
	ParamsSeparator = ","
)

// Kind identifies a shape type.
type Kind string

// Supported shape kinds.
const (
	KindArrow     Kind = "arrow"
	KindCircle    Kind = "circle"
	KindDiamond   Kind = "diamond"
	KindRectangle Kind = "rectangle"
	KindSquare    Kind = "square"
	KindStar      Kind = "star"
	KindTriangle  Kind = "triangle"
)

// shapeIDs maps grammar shape identifiers (short symbols and long
// names) to shape kinds.
var shapeIDs = map[string]Kind{
	"A":  KindArrow,
	"C":  KindCircle,
	"D":  KindDiamond,
	"R":  KindRectangle,
	"Sq": KindSquare,
	"St": KindStar,
	"T":  KindTriangle,

	"Arrow":     KindArrow,
	"Circle":    KindCircle,
	"Diamond":   KindDiamond,
	"Rectangle": KindRectangle,
	"Square":    KindSquare,
	"Star":      KindStar,
	"Triangle":  KindTriangle,
}

// KindForID resolves a grammar shape identifier to its kind.
func KindForID(id string) (Kind, bool) {
	k, ok := shapeIDs[id]
	return k, ok
}

// rotations maps orientation symbols to rotations in degrees.
// R (right) is the neutral orientation.
var rotations = map[string]int{
	"B": 90,  // bottom
	"Z": 135, // diagonal bottom left
	"C": 45,  // diagonal bottom right
	"Q": 225, // diagonal top left
	"E": 315, // diagonal top right
	"L": 180, // left
	"R": 0,   // right
	"T": 270, // top
}

// RotationFor resolves an orientation symbol to its rotation in degrees.
func RotationFor(sym string) (int, bool) {
	r, ok := rotations[sym]
	return r, ok
}
