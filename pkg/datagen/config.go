package datagen

import (
	"github.com/BurntSushi/toml"

	"github.com/plotkit/plotkit/pkg/errors"
)

// Config is the TOML surface describing a generation run: the sample
// count and an ordered list of outputs, each backed by a data or
// statistics generator.
type Config struct {
	Samples int            `toml:"samples"`
	Outputs []OutputConfig `toml:"output"`
}

// OutputConfig describes one output file.
type OutputConfig struct {
	Kind string `toml:"kind"` // "data" or "stats"

	// Data generator fields
	Series    []SeriesConfig `toml:"series"`
	Transform string         `toml:"transform"` // "counter" or "histogram", optional
	Source    string         `toml:"source"`    // column the transform tallies
	KeyName   string         `toml:"key_name"`
	ValueName string         `toml:"value_name"`

	// Statistics generator fields
	Stats []StatConfig `toml:"stat"`
}

// SeriesConfig describes one generated column.
type SeriesConfig struct {
	Name         string   `toml:"name"`
	Generator    string   `toml:"generator"` // "normal", "string" or "tla"
	Precision    *int     `toml:"precision"`
	Mu           *float64 `toml:"mu"`
	Sigma        *float64 `toml:"sigma"`
	MaxMuFactor  float64  `toml:"max_mu_factor"`
	Length       int      `toml:"length"`
	Population   string   `toml:"population"`
	RandomLength bool     `toml:"random_length"`
	Seed         uint64   `toml:"seed"`
}

// StatConfig describes one aggregate of a statistics output.
type StatConfig struct {
	Name      string  `toml:"name"`
	Aggregate string  `toml:"aggregate"` // count|mean|stddev|min|max|quantile|tla
	Column    string  `toml:"column"`
	Q         float64 `toml:"q"` // quantile level for aggregate = "quantile"
	Precision *int    `toml:"precision"`
	Seed      uint64  `toml:"seed"`
}

// LoadConfig reads a generation config from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %q", path)
	}
	return &cfg, nil
}

// Build turns the config into the runner's generator list.
func (c *Config) Build() ([]Generator, error) {
	generators := make([]Generator, 0, len(c.Outputs))
	for i, out := range c.Outputs {
		switch out.Kind {
		case "data", "":
			g, err := out.buildData()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "output %d", i+1)
			}
			generators = append(generators, g)
		case "stats":
			g, err := out.buildStats()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "output %d", i+1)
			}
			generators = append(generators, g)
		default:
			return nil, errors.New(errors.ErrCodeInvalidConfig,
				"output %d: unknown kind %q (must be 'data' or 'stats')", i+1, out.Kind)
		}
	}
	return generators, nil
}

func (o OutputConfig) buildData() (*DataGenerator, error) {
	if len(o.Series) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "data output declares no series")
	}

	g := &DataGenerator{}
	for _, sc := range o.Series {
		s, err := sc.build()
		if err != nil {
			return nil, err
		}
		g.Series = append(g.Series, s)
	}

	switch o.Transform {
	case "":
	case "counter":
		g.Transform = ToCounter(o.Source, o.KeyName, o.ValueName)
	case "histogram":
		g.Transform = ToHistogram(o.Source, o.KeyName, o.ValueName)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"unknown transform %q (must be 'counter' or 'histogram')", o.Transform)
	}
	return g, nil
}

func (o OutputConfig) buildStats() (*StatisticsGenerator, error) {
	if len(o.Stats) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "stats output declares no stats")
	}

	g := &StatisticsGenerator{}
	for _, sc := range o.Stats {
		precision := -1
		if sc.Precision != nil {
			precision = *sc.Precision
		}

		var s Stat
		switch sc.Aggregate {
		case "count":
			s = Count(sc.Name, sc.Column)
		case "mean":
			s = Mean(sc.Name, sc.Column, precision)
		case "stddev":
			s = StdDev(sc.Name, sc.Column, precision)
		case "min":
			s = Min(sc.Name, sc.Column, precision)
		case "max":
			s = Max(sc.Name, sc.Column, precision)
		case "quantile":
			if sc.Q <= 0 || sc.Q >= 1 {
				return nil, errors.New(errors.ErrCodeInvalidConfig,
					"stat %q: quantile level %v outside (0, 1)", sc.Name, sc.Q)
			}
			s = Quantile(sc.Name, sc.Column, sc.Q, precision)
		case "tla":
			s = TLA(sc.Name, sc.Seed)
		default:
			return nil, errors.New(errors.ErrCodeInvalidConfig,
				"stat %q: unknown aggregate %q", sc.Name, sc.Aggregate)
		}
		g.Stats = append(g.Stats, s)
	}
	return g, nil
}

func (s SeriesConfig) build() (Series, error) {
	precision := -1
	if s.Precision != nil {
		precision = *s.Precision
	}

	switch s.Generator {
	case "normal", "":
		return &NormalSeries{
			ColumnName:  s.Name,
			Mu:          s.Mu,
			Sigma:       s.Sigma,
			MaxMuFactor: s.MaxMuFactor,
			Precision:   precision,
			Seed:        s.Seed,
		}, nil
	case "string":
		if s.Length < 1 {
			return nil, errors.New(errors.ErrCodeInvalidConfig,
				"series %q: string generator needs a positive length", s.Name)
		}
		population := s.Population
		if population == "" {
			population = Uppercase
		}
		return &StringSeries{
			ColumnName:   s.Name,
			Length:       s.Length,
			Population:   population,
			RandomLength: s.RandomLength,
			Seed:         s.Seed,
		}, nil
	case "tla":
		return &TLASeries{ColumnName: s.Name, Seed: s.Seed}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig,
		"series %q: unknown generator %q", s.Name, s.Generator)
}
