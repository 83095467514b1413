package meshcut

import (
	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"
)

var ErrInvalidConfig = errors.New("invalid split config")

const ExampleConfigFile = `[Split]

# Tolerance for all distance comparisons against the plane, and the
# distance below which two hits on one face are merged.
Epsilon = 0.01

# Scale the plane normal to unit length so that Epsilon is measured in
# world units. If false, distances are scaled by twice the area of the
# plane's spanning triangle.
Normalize = true

# Sine of the angle between the plane's spanning edges at or below which
# the plane is rejected as degenerate.
# PlaneTolerance = 1e-9

# Number of Goroutines for batch splits. 0 means GOMAXPROCS.
# Concurrency = 0
`

type SplitConfig struct {
	Epsilon        float64
	Normalize      bool
	PlaneTolerance float64
	Concurrency    int
}

// Config is the layout of a split configuration file.
type Config struct {
	Split SplitConfig
}

func DefaultConfig() *Config {
	return &Config{
		Split: SplitConfig{
			Epsilon:        DefaultEpsilon,
			Normalize:      true,
			PlaneTolerance: DefaultPlaneTolerance,
		},
	}
}

// ReadConfig reads a configuration file. Missing variables keep the values
// from DefaultConfig.
func ReadConfig(path string) (*Config, error) {
	res := DefaultConfig()
	if err := gcfg.ReadFileInto(res, path); err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := res.Validate(); err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return res, nil
}

// ParseConfig is like ReadConfig, but reads the configuration from a string.
func ParseConfig(text string) (*Config, error) {
	res := DefaultConfig()
	if err := gcfg.ReadStringInto(res, text); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := res.Validate(); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	return res, nil
}

func (c *Config) Validate() error {
	if c.Split.Epsilon < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative Epsilon %f", c.Split.Epsilon)
	}
	if c.Split.PlaneTolerance < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative PlaneTolerance %f", c.Split.PlaneTolerance)
	}
	if c.Split.Concurrency < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative Concurrency %d", c.Split.Concurrency)
	}
	return nil
}

// Splitter creates a Splitter with the configured tolerances.
func (c *Config) Splitter() *Splitter {
	return &Splitter{
		Epsilon:        c.Split.Epsilon,
		Normalize:      c.Split.Normalize,
		PlaneTolerance: c.Split.PlaneTolerance,
	}
}
