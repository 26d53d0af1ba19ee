package datagen

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/plotkit/plotkit/pkg/errors"
)

// Stat is one named aggregate computed over a frame.
type Stat struct {
	Name    string
	Compute func(f Frame) (string, error)
}

// numericStat builds a stat from a float reduction over one column.
func numericStat(name, column string, precision int, reduce func([]float64) float64) Stat {
	return Stat{Name: name, Compute: func(f Frame) (string, error) {
		col, ok := f.Column(column)
		if !ok {
			return "", errors.New(errors.ErrCodeInvalidInput, "no column %q in frame", column)
		}
		nums, err := col.Floats()
		if err != nil {
			return "", err
		}
		if len(nums) == 0 {
			return "", errors.New(errors.ErrCodeInvalidInput, "column %q is empty", column)
		}
		return FormatFloat(reduce(nums), precision), nil
	}}
}

// Count reports the sample count of a column.
func Count(name, column string) Stat {
	return Stat{Name: name, Compute: func(f Frame) (string, error) {
		col, ok := f.Column(column)
		if !ok {
			return "", errors.New(errors.ErrCodeInvalidInput, "no column %q in frame", column)
		}
		return strconv.Itoa(col.Len()), nil
	}}
}

// Mean reports the arithmetic mean of a column.
func Mean(name, column string, precision int) Stat {
	return numericStat(name, column, precision, func(xs []float64) float64 {
		return stat.Mean(xs, nil)
	})
}

// StdDev reports the sample standard deviation of a column.
func StdDev(name, column string, precision int) Stat {
	return numericStat(name, column, precision, func(xs []float64) float64 {
		return stat.StdDev(xs, nil)
	})
}

// Min reports the smallest value of a column.
func Min(name, column string, precision int) Stat {
	return numericStat(name, column, precision, floats.Min)
}

// Max reports the largest value of a column.
func Max(name, column string, precision int) Stat {
	return numericStat(name, column, precision, floats.Max)
}

// Quantile reports the empirical q-quantile of a column.
func Quantile(name, column string, q float64, precision int) Stat {
	return numericStat(name, column, precision, func(xs []float64) float64 {
		sorted := make([]float64, len(xs))
		copy(sorted, xs)
		sort.Float64s(sorted)
		return stat.Quantile(q, stat.Empirical, sorted, nil)
	})
}

// TLA reports a random three-letter acronym, useful as a label column
// in generated statistics.
func TLA(name string, seed uint64) Stat {
	return Stat{Name: name, Compute: func(Frame) (string, error) {
		return randomTLA(rand.New(newSource(seed))), nil
	}}
}

// StatisticsGenerator reduces a frame to a two-line CSV: one header row
// of stat names and one row of values.
type StatisticsGenerator struct {
	Stats []Stat
}

// Generate computes all stats over the frame.
func (g *StatisticsGenerator) Generate(f Frame) (header, values []string, err error) {
	header = make([]string, len(g.Stats))
	values = make([]string, len(g.Stats))
	for i, s := range g.Stats {
		header[i] = s.Name
		values[i], err = s.Compute(f)
		if err != nil {
			return nil, nil, err
		}
	}
	return header, values, nil
}

// Export computes the stats and writes the two-line CSV to w.
func (g *StatisticsGenerator) Export(f Frame, w io.Writer) error {
	header, values, err := g.Generate(f)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.Write(values); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ExportFile computes the stats and writes them to the file at target.
func (g *StatisticsGenerator) ExportFile(f Frame, target string) error {
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()
	return g.Export(f, out)
}
