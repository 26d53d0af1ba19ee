package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plotkit/plotkit/pkg/datagen"
)

// dataCommand creates the data command for synthetic dataset generation.
func (c *CLI) dataCommand() *cobra.Command {
	var samples int

	cmd := &cobra.Command{
		Use:   "data <config.toml> <targets...>",
		Short: "Generate synthetic datasets and statistics",
		Long: `Generate synthetic datasets and statistics.

The config file declares an ordered list of outputs: data outputs
generate series (normal distributions, random strings, acronyms) into a
CSV file, statistics outputs reduce the most recent data output to a
single row of aggregates. Target files are assigned to outputs in
order.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runData(args[0], args[1:], samples)
		},
	}

	cmd.Flags().IntVarP(&samples, "samples", "n", 0, "samples per data output (default: from config, then 1000)")

	return cmd
}

func (c *CLI) runData(configPath string, targets []string, samples int) error {
	cfg, err := datagen.LoadConfig(configPath)
	if err != nil {
		return err
	}
	generators, err := cfg.Build()
	if err != nil {
		return err
	}

	if samples == 0 {
		samples = cfg.Samples
	}

	runner := &datagen.Runner{
		Generators: generators,
		Samples:    samples,
		Logger:     c.Logger,
	}

	prog := newProgress(c.Logger)
	if err := runner.Run(targets); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d file(s)", min(len(targets), len(generators))))
	return nil
}
