package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gotrend"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
data:
  input_file: data/weather.csv
  year_column: year
  value_column: temp_celsius
analysis:
  confidence_level: 0.99
  significance_level: 0.01
  polynomial_degree: 3
  prediction_year: 2030
  bootstrap:
    iterations: 5000
    random_seed: 42
    workers: 4
    max_skip_fraction: 0.4
output:
  report_file: outputs/report.txt
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/weather.csv", cfg.Data.InputFile)
	assert.Equal(t, "temp_celsius", cfg.Data.ValueColumn)
	assert.Equal(t, 0.99, cfg.Analysis.ConfidenceLevel)
	assert.Equal(t, 3, cfg.Analysis.PolynomialDegree)
	assert.Equal(t, 2030, cfg.Analysis.PredictionYear)
	assert.Equal(t, 5000, cfg.Analysis.Bootstrap.Iterations)
	require.NotNil(t, cfg.Analysis.Bootstrap.RandomSeed)
	assert.Equal(t, int64(42), *cfg.Analysis.Bootstrap.RandomSeed)
	assert.Equal(t, "outputs/report.txt", cfg.Output.ReportFile)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
data:
  input_file: rainfall.csv
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.95, cfg.Analysis.ConfidenceLevel)
	assert.Equal(t, 10000, cfg.Analysis.Bootstrap.Iterations)
	assert.Equal(t, 0.5, cfg.Analysis.Bootstrap.MaxSkipFraction)
	assert.Nil(t, cfg.Analysis.Bootstrap.RandomSeed)
	assert.Equal(t, "year", cfg.Data.YearColumn)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tt := []struct {
		name string
		body string
	}{
		{"confidence level", "analysis:\n  confidence_level: 1.5\n"},
		{"significance level", "analysis:\n  significance_level: 0\n"},
		{"degree", "analysis:\n  polynomial_degree: 0\n"},
		{"iterations", "analysis:\n  bootstrap:\n    iterations: -1\n"},
		{"skip fraction", "analysis:\n  bootstrap:\n    max_skip_fraction: 2\n"},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			var invalid *gotrend.InvalidParameterError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "analysis: [not: a: mapping\n"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestBootstrapConfig(t *testing.T) {
	cfg := Default()
	cfg.Analysis.ConfidenceLevel = 0.9
	cfg.Analysis.Bootstrap.Iterations = 1234
	cfg.Analysis.Bootstrap.Workers = 8
	seed := int64(7)
	cfg.Analysis.Bootstrap.RandomSeed = &seed

	bc := cfg.BootstrapConfig()
	assert.Equal(t, 1234, bc.Iterations)
	assert.Equal(t, 0.9, bc.ConfidenceLevel)
	assert.Equal(t, 8, bc.Workers)
	assert.Equal(t, int64(7), bc.Seed)

	// Absent seed maps to zero, meaning a clock seed.
	cfg.Analysis.Bootstrap.RandomSeed = nil
	assert.Zero(t, cfg.BootstrapConfig().Seed)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}
