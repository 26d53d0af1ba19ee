package datagen

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/plotkit/plotkit/pkg/errors"
)

// DefaultSamples is the sample count used when none is configured.
const DefaultSamples = 1000

// Column is one named series of values, numeric or textual.
type Column struct {
	Name      string
	Nums      []float64 // set for numeric columns
	Text      []string  // set for textual columns
	Precision int       // formatting digits for Nums; negative for shortest form
}

// Len returns the number of values in the column.
func (c Column) Len() int {
	if c.Text != nil {
		return len(c.Text)
	}
	return len(c.Nums)
}

// Cells returns the column values formatted as CSV cells.
func (c Column) Cells() []string {
	if c.Text != nil {
		return c.Text
	}
	cells := make([]string, len(c.Nums))
	for i, v := range c.Nums {
		cells[i] = FormatFloat(v, c.Precision)
	}
	return cells
}

// Floats returns the numeric values of the column, parsing textual
// columns when possible.
func (c Column) Floats() ([]float64, error) {
	if c.Nums != nil {
		return c.Nums, nil
	}
	nums := make([]float64, len(c.Text))
	for i, s := range c.Text {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"column %q is not numeric (%q)", c.Name, s)
		}
		nums[i] = v
	}
	return nums, nil
}

// FormatFloat formats v with the given number of digits after the
// decimal point. Negative precision selects the shortest exact form.
func FormatFloat(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("%.*f", precision, v)
}

// Frame is an ordered set of equally sized columns, the in-memory form
// of one CSV file.
type Frame struct {
	Columns []Column
}

// Column returns the named column.
func (f Frame) Column(name string) (Column, bool) {
	for _, c := range f.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Rows returns the sample count of the frame.
func (f Frame) Rows() int {
	if len(f.Columns) == 0 {
		return 0
	}
	return f.Columns[0].Len()
}

// WriteCSV writes the frame as CSV: a header row of column names, then
// the values row-major.
func (f Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(f.Columns))
	cells := make([][]string, len(f.Columns))
	for i, c := range f.Columns {
		header[i] = c.Name
		cells[i] = c.Cells()
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(f.Columns))
	for r := 0; r < f.Rows(); r++ {
		for i := range cells {
			row[i] = cells[i][r]
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Series produces one column of n samples.
type Series interface {
	Name() string
	Generate(n int) Column
}

// DataGenerator generates a set of series into one CSV file, optionally
// transforming the frame before export.
type DataGenerator struct {
	Series    []Series
	Transform Transform // optional
}

// Generate produces all series with n samples each and applies the
// configured transform.
func (g *DataGenerator) Generate(n int) Frame {
	frame := Frame{Columns: make([]Column, 0, len(g.Series))}
	for _, s := range g.Series {
		frame.Columns = append(frame.Columns, s.Generate(n))
	}
	if g.Transform != nil {
		frame = g.Transform(frame)
	}
	return frame
}

// GenerateAndExport generates n samples and writes the frame to the CSV
// file at target.
func (g *DataGenerator) GenerateAndExport(n int, target string) (Frame, error) {
	frame := g.Generate(n)
	f, err := os.Create(target)
	if err != nil {
		return Frame{}, err
	}
	defer f.Close()
	if err := frame.WriteCSV(f); err != nil {
		return Frame{}, err
	}
	return frame, nil
}
