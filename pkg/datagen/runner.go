package datagen

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/plotkit/plotkit/pkg/errors"
)

// Generator is one entry in a run: either a *DataGenerator or a
// *StatisticsGenerator. The Runner dispatches on the concrete type.
type Generator interface{}

// Runner drives an ordered list of generators, assigning each its
// target file in order. Statistics generators are fed the frame of the
// most recent data generator before them.
type Runner struct {
	Generators []Generator
	Samples    int // zero means DefaultSamples
	Logger     *log.Logger
}

// Run generates and exports every generator's output. Each run is
// tagged with a fresh ID in the logs.
func (r *Runner) Run(targets []string) error {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("run", uuid.NewString())

	samples := r.Samples
	if samples <= 0 {
		samples = DefaultSamples
	}

	if len(targets) != len(r.Generators) {
		logger.Warnf("Amount of provided files (%d) does not match the amount of generators (%d).",
			len(targets), len(r.Generators))
	}

	var lastFrame Frame
	haveFrame := false
	for i, gen := range r.Generators {
		if i >= len(targets) {
			break
		}
		target := targets[i]

		switch g := gen.(type) {
		case *DataGenerator:
			frame, err := g.GenerateAndExport(samples, target)
			if err != nil {
				return err
			}
			lastFrame = frame
			haveFrame = true
		case *StatisticsGenerator:
			if !haveFrame {
				return errors.New(errors.ErrCodeInvalidConfig,
					"statistics generator for %q has no preceding data generator", target)
			}
			if err := g.ExportFile(lastFrame, target); err != nil {
				return err
			}
		default:
			return errors.New(errors.ErrCodeInvalidConfig, "unsupported generator type %T", gen)
		}

		logger.Infof("File created: %s", target)
	}
	return nil
}
