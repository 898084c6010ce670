// Package config loads YAML parameter files for trend analysis runs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sartorproj/gotrend"
	"github.com/sartorproj/gotrend/bootstrap"
)

// Config holds the parameters of one analysis run. The engine packages take
// explicit arguments; this struct only exists so the command-line front end
// can read them from a file.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
}

// DataConfig describes where the observation series comes from.
type DataConfig struct {
	InputFile   string `yaml:"input_file"`
	YearColumn  string `yaml:"year_column"`
	ValueColumn string `yaml:"value_column"`
}

// AnalysisConfig holds the statistical parameters.
type AnalysisConfig struct {
	ConfidenceLevel   float64         `yaml:"confidence_level"`
	SignificanceLevel float64         `yaml:"significance_level"`
	PolynomialDegree  int             `yaml:"polynomial_degree"`
	PredictionYear    int             `yaml:"prediction_year"`
	Bootstrap         BootstrapConfig `yaml:"bootstrap"`
}

// BootstrapConfig holds the resampling parameters. RandomSeed is a pointer
// so an absent key stays distinguishable from an explicit zero; absence
// means a clock seed and a non-reproducible run.
type BootstrapConfig struct {
	Iterations      int     `yaml:"iterations"`
	RandomSeed      *int64  `yaml:"random_seed"`
	Workers         int     `yaml:"workers"`
	MaxSkipFraction float64 `yaml:"max_skip_fraction"`
}

// OutputConfig describes where results go.
type OutputConfig struct {
	ReportFile string `yaml:"report_file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			YearColumn:  "year",
			ValueColumn: "value",
		},
		Analysis: AnalysisConfig{
			ConfidenceLevel:   0.95,
			SignificanceLevel: 0.05,
			PolynomialDegree:  2,
			Bootstrap: BootstrapConfig{
				Iterations:      10000,
				Workers:         1,
				MaxSkipFraction: 0.5,
			},
		},
	}
}

// Load reads and validates a YAML configuration file. Missing keys fall
// back to the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every parameter against its documented range.
func (c *Config) Validate() error {
	a := c.Analysis
	if a.ConfidenceLevel <= 0 || a.ConfidenceLevel >= 1 {
		return &gotrend.InvalidParameterError{
			Param: "analysis.confidence_level", Value: a.ConfidenceLevel,
			Reason: "must be in (0, 1)",
		}
	}
	if a.SignificanceLevel <= 0 || a.SignificanceLevel >= 1 {
		return &gotrend.InvalidParameterError{
			Param: "analysis.significance_level", Value: a.SignificanceLevel,
			Reason: "must be in (0, 1)",
		}
	}
	if a.PolynomialDegree < 1 {
		return &gotrend.InvalidParameterError{
			Param: "analysis.polynomial_degree", Value: a.PolynomialDegree,
			Reason: "must be a positive integer",
		}
	}
	if a.Bootstrap.Iterations < 1 {
		return &gotrend.InvalidParameterError{
			Param: "analysis.bootstrap.iterations", Value: a.Bootstrap.Iterations,
			Reason: "must be a positive integer",
		}
	}
	if a.Bootstrap.MaxSkipFraction <= 0 || a.Bootstrap.MaxSkipFraction > 1 {
		return &gotrend.InvalidParameterError{
			Param: "analysis.bootstrap.max_skip_fraction", Value: a.Bootstrap.MaxSkipFraction,
			Reason: "must be in (0, 1]",
		}
	}
	return nil
}

// BootstrapConfig flattens the analysis parameters into the bootstrap
// engine's explicit configuration.
func (c *Config) BootstrapConfig() *bootstrap.Config {
	cfg := bootstrap.DefaultConfig()
	cfg.Iterations = c.Analysis.Bootstrap.Iterations
	cfg.ConfidenceLevel = c.Analysis.ConfidenceLevel
	cfg.Workers = c.Analysis.Bootstrap.Workers
	cfg.MaxSkipFraction = c.Analysis.Bootstrap.MaxSkipFraction
	if c.Analysis.Bootstrap.RandomSeed != nil {
		cfg.Seed = *c.Analysis.Bootstrap.RandomSeed
	}
	return cfg
}
