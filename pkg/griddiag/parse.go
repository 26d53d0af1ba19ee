package griddiag

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/plotkit/plotkit/pkg/errors"
)

var (
	// declPattern splits one shape declaration into repeat count,
	// shape identifier, and optional parameter block.
	declPattern = regexp.MustCompile(`^([0-9]*)([A-Za-z]+)(\{[^{}]*\})?$`)

	// paramPattern matches key=value parameters.
	paramPattern = regexp.MustCompile(`^([a-z-]+)=(.*)$`)

	// sizePattern matches size tokens like 12px, 2em, 1cm, 50%.
	sizePattern = regexp.MustCompile(`^[0-9]+(px|cm|em|%)$`)
)

// Parser reads diagram files into Grid values.
//
// Unknown shape identifiers are logged and skipped so one bad token
// does not lose the whole diagram; malformed declarations are grammar
// errors and abort the parse.
type Parser struct {
	logger *log.Logger
}

// NewParser creates a parser. A nil logger falls back to log.Default().
func NewParser(logger *log.Logger) *Parser {
	if logger == nil {
		logger = log.Default()
	}
	return &Parser{logger: logger}
}

// ParseFile reads and parses the diagram file at path.
func (p *Parser) ParseFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "grid file %q", path)
		}
		return nil, err
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse reads a grid from r, one row per line. Blank lines are skipped.
func (p *Parser) Parse(r io.Reader) (*Grid, error) {
	grid := &Grid{}
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), " \t")
		if strings.TrimSpace(text) == "" {
			continue
		}

		var row []Cell
		for _, cellText := range strings.Split(text, CellSeparator) {
			cell, err := p.parseCell(strings.TrimSpace(cellText))
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidGrammar, err, "line %d", line)
			}
			row = append(row, cell)
		}
		grid.Cells = append(grid.Cells, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return grid, nil
}

// parseCell parses the whitespace-separated shape declarations of one cell.
func (p *Parser) parseCell(text string) (Cell, error) {
	var cell Cell
	for _, decl := range strings.Fields(text) {
		shapes, err := p.parseDecl(decl)
		if err != nil {
			return Cell{}, err
		}
		cell.Shapes = append(cell.Shapes, shapes...)
	}
	return cell, nil
}

// parseDecl interprets one declaration: repeat count, shape ID, and the
// optional parameter block. An unknown shape ID is skipped with a log
// entry; the repeat expansion shares one parsed shape value.
func (p *Parser) parseDecl(decl string) ([]Shape, error) {
	m := declPattern.FindStringSubmatch(decl)
	if m == nil {
		return nil, errors.New(errors.ErrCodeInvalidGrammar, "malformed shape declaration %q", decl)
	}

	repeat := 1
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return nil, errors.New(errors.ErrCodeInvalidGrammar, "invalid repeat count in %q", decl)
		}
		repeat = n
	}

	kind, ok := KindForID(m[2])
	if !ok {
		p.logger.Errorf("Unknown shape ID %q.", m[2])
		return nil, nil
	}

	shape := Shape{Kind: kind}
	if m[3] != "" {
		if err := p.applyParams(&shape, m[3]); err != nil {
			return nil, err
		}
	}

	shapes := make([]Shape, repeat)
	for i := range shapes {
		shapes[i] = shape
	}
	return shapes, nil
}

// applyParams interprets the {...} parameter block onto shape.
func (p *Parser) applyParams(shape *Shape, block string) error {
	inner := strings.TrimSuffix(strings.TrimPrefix(block, ParamsStart), ParamsEnd)
	if strings.TrimSpace(inner) == "" {
		return nil
	}

	for _, param := range strings.Split(inner, ParamsSeparator) {
		param = strings.TrimSpace(param)
		switch {
		case paramPattern.MatchString(param):
			m := paramPattern.FindStringSubmatch(param)
			if err := p.applyKeyValue(shape, m[1], m[2]); err != nil {
				return err
			}
		case sizePattern.MatchString(param):
			shape.Size = param
		default:
			if rot, ok := RotationFor(param); ok {
				shape.Rotation = rot
				continue
			}
			// Bare color tokens (red, #FF0000) are a fill shorthand
			if c, err := ParseColor(param); err == nil {
				fill := c
				shape.Fill = &fill
				continue
			}
			p.logger.Debugf("ignoring parameter %q", param)
		}
	}
	return nil
}

// applyKeyValue applies one key=value parameter. Color keys are parsed
// eagerly; anything else lands in the shape's parameter map.
func (p *Parser) applyKeyValue(shape *Shape, key, value string) error {
	switch strings.ReplaceAll(key, "-", "_") {
	case "fill", "fill_color":
		c, err := ParseColor(value)
		if err != nil {
			return err
		}
		shape.Fill = &c
	case "border", "border_color":
		c, err := ParseColor(value)
		if err != nil {
			return err
		}
		shape.Border = &c
	default:
		if shape.Params == nil {
			shape.Params = make(map[string]string)
		}
		shape.Params[strings.ReplaceAll(key, "-", "_")] = value
	}
	return nil
}
