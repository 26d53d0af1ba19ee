package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plotkit/plotkit/pkg/errors"
	"github.com/plotkit/plotkit/pkg/layout"
)

// layoutCommand creates the layout command for planning plot grids.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		orientation string
		policy      string
		rows        int
		cols        int
	)

	cmd := &cobra.Command{
		Use:   "layout <plots>",
		Short: "Compute the grid arrangement for a number of plots",
		Long: `Compute the grid arrangement for a number of plots.

The layout command reports the (rows, cols) grid used to arrange the
given number of plots. The orientation picks the growth direction: 'x'
grows columns, 'y' grows rows, and 'square' (the default) stays as
close to a square as possible.

Linear orientations expand along an expansion policy. Policies are
written compactly:

  divided:4:2   start at 4, the minor side is the major divided by 2 (rounded up)
  minus:5:1     start at 5, the minor side is the major minus 1

An explicit --rows/--cols pair overrides the planner entirely, failing
when the grid cannot hold every plot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "plot count %q is not a non-negative integer", args[0])
			}
			return c.runLayout(n, orientation, policy, rows, cols)
		},
	}

	cmd.Flags().StringVarP(&orientation, "orientation", "t", "", "growth orientation: x, y, or square (default)")
	cmd.Flags().StringVarP(&policy, "policy", "p", "", "expansion policy, e.g. divided:4:2 or minus:5:1")
	cmd.Flags().IntVar(&rows, "rows", 0, "explicit row count (with --cols)")
	cmd.Flags().IntVar(&cols, "cols", 0, "explicit column count (with --rows)")

	return cmd
}

func (c *CLI) runLayout(n int, orientation, policy string, rows, cols int) error {
	o, err := layout.ParseOrientation(orientation)
	if err != nil {
		return err
	}

	cfg := layout.Config{Orientation: o}
	if policy != "" {
		if cfg.Policy, err = parsePolicy(policy); err != nil {
			return err
		}
	}
	if rows != 0 || cols != 0 {
		if rows < 1 || cols < 1 {
			return errors.New(errors.ErrCodeInvalidConfig, "--rows and --cols must be set together and positive")
		}
		cfg.Grid = &layout.Grid{Rows: rows, Cols: cols}
	}

	grid, err := layout.PlanGrid(n, cfg)
	if err != nil {
		return err
	}

	printSuccess("%d plot(s) arranged", n)
	printDetail("%d rows x %d cols (%s)", grid.Rows, grid.Cols, o)
	return nil
}

// parsePolicy parses a compact policy spec: "divided:<min>:<divisor>"
// or "minus:<min>:<subtrahend>".
func parsePolicy(s string) (layout.ExpansionPolicy, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"policy %q must look like divided:4:2 or minus:5:1", s)
	}
	a, errA := strconv.Atoi(parts[1])
	b, errB := strconv.Atoi(parts[2])
	if errA != nil || errB != nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "policy %q has non-numeric parameters", s)
	}

	switch parts[0] {
	case "divided":
		return layout.DividedCeil(a, b), nil
	case "minus":
		return layout.Minus(a, b), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig,
		"unknown policy %q (must be 'divided' or 'minus')", parts[0])
}
