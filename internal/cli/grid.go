package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plotkit/plotkit/pkg/errors"
	"github.com/plotkit/plotkit/pkg/griddiag"
	"github.com/plotkit/plotkit/pkg/griddiag/sink"
)

// gridCommand creates the grid command for rendering diagram files.
func (c *CLI) gridCommand() *cobra.Command {
	var (
		dist       string
		configPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "grid <files...>",
		Short: "Render grid diagram files to SVG or PNG",
		Long: `Render grid diagram files to SVG or PNG.

Each input file holds one diagram: rows of cells separated by '|', each
cell a list of shape declarations like '3C{red,24px}' (three red
circles of 24 pixels). Outputs land next to the inputs, or under the
--dist directory when given, named after the input file.

Missing input files are skipped with a warning so one bad path does not
abort a batch. Draw options (cell size, colors, output format) come
from a TOML config file via --config; --format overrides the format.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGrid(args, dist, configPath, format)
		},
	}

	cmd.Flags().StringVarP(&dist, "dist", "d", "", "output directory (default: next to each input)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML draw config file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: svg (default) or png")

	return cmd
}

func (c *CLI) runGrid(files []string, dist, configPath, format string) error {
	cfg := griddiag.DefaultDrawConfig()
	if configPath != "" {
		loaded, err := griddiag.LoadDrawConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if format != "" {
		cfg.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if dist != "" {
		if err := os.MkdirAll(dist, 0o755); err != nil {
			return err
		}
	}

	parser := griddiag.NewParser(c.Logger)
	prog := newProgress(c.Logger)

	rendered := 0
	for _, file := range files {
		grid, err := parser.ParseFile(file)
		if err != nil {
			if errors.GetCode(err) == errors.ErrCodeFileNotFound {
				c.Logger.Warnf("Skipping %s: file not found.", file)
				continue
			}
			return err
		}

		target := outputPath(file, dist, cfg.Format)
		if err := sink.ExportFile(grid, cfg, target); err != nil {
			return err
		}
		printFile(target)
		rendered++
	}

	prog.done(fmt.Sprintf("Rendered %d diagram(s)", rendered))
	if rendered == 0 {
		return errors.New(errors.ErrCodeFileNotFound, "no input file could be rendered")
	}
	return nil
}

// outputPath maps an input diagram file to its rendered output path.
func outputPath(input, dist, format string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + "." + format
	if dist != "" {
		return filepath.Join(dist, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}
