// Command gotrend runs a trend analysis over a year/value series: a
// parametric least-squares fit, a polynomial fit, bootstrap uncertainty
// estimates, and a comparison of the two methods.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/sartorproj/gotrend/bootstrap"
	"github.com/sartorproj/gotrend/compare"
	"github.com/sartorproj/gotrend/config"
	"github.com/sartorproj/gotrend/regression"
	"github.com/sartorproj/gotrend/timeseries"
)

func main() {
	var (
		configPath = pflag.String("config", "", "YAML configuration file")
		input      = pflag.String("input", "", "CSV file with year,value observations")
		confidence = pflag.Float64("confidence", 0, "confidence level in (0,1), overrides config")
		iterations = pflag.Int("iterations", 0, "bootstrap iterations, overrides config")
		seed       = pflag.Int64("seed", 0, "bootstrap random seed (0 = clock)")
		degree     = pflag.Int("degree", 0, "polynomial degree, overrides config")
		predict    = pflag.Int("predict", 0, "year to extrapolate to, overrides config")
		workers    = pflag.Int("workers", 0, "bootstrap worker goroutines, overrides config")
	)
	pflag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}

	// Flags override file values.
	if *input != "" {
		cfg.Data.InputFile = *input
	}
	if *confidence != 0 {
		cfg.Analysis.ConfidenceLevel = *confidence
	}
	if *iterations != 0 {
		cfg.Analysis.Bootstrap.Iterations = *iterations
	}
	if *seed != 0 {
		cfg.Analysis.Bootstrap.RandomSeed = seed
	}
	if *degree != 0 {
		cfg.Analysis.PolynomialDegree = *degree
	}
	if *predict != 0 {
		cfg.Analysis.PredictionYear = *predict
	}
	if *workers != 0 {
		cfg.Analysis.Bootstrap.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	series, err := loadSeries(cfg)
	if err != nil {
		fatal(err)
	}

	report, err := analyze(series, cfg)
	if err != nil {
		fatal(err)
	}

	fmt.Print(report)
	if cfg.Output.ReportFile != "" {
		if err := os.WriteFile(cfg.Output.ReportFile, []byte(report), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("\nReport written to %s\n", cfg.Output.ReportFile)
	}
}

func loadSeries(cfg *config.Config) (*timeseries.Series, error) {
	if cfg.Data.InputFile == "" {
		// Built-in example: yearly average temperatures with a warming
		// trend, so the binary demonstrates itself without a data file.
		fmt.Println("No input file given, using built-in example data.")
		return timeseries.New(
			[]float64{2019, 2020, 2021, 2022, 2023},
			[]float64{30.1, 30.5, 31.0, 31.2, 31.7},
		)
	}

	opts := timeseries.DefaultCSVOptions()
	opts.XColumn = cfg.Data.YearColumn
	opts.YColumn = cfg.Data.ValueColumn
	return timeseries.LoadCSV(cfg.Data.InputFile, opts)
}

func analyze(series *timeseries.Series, cfg *config.Config) (string, error) {
	var b strings.Builder
	rule := strings.Repeat("=", 72)
	level := cfg.Analysis.ConfidenceLevel
	alpha := cfg.Analysis.SignificanceLevel

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Trend analysis: %d observations, x = %.0f..%.0f\n",
		series.Len(), series.MinX(), series.MaxX())
	fmt.Fprintln(&b, rule)

	fit, err := regression.FitLinear(series, level)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(&b, "\n--- Linear regression (parametric) ---\n")
	fmt.Fprintf(&b, "y = %.4f*x + %.4f\n", fit.Slope, fit.Intercept)
	fmt.Fprintf(&b, "slope:     %+.4f per year (%.0f%% CI %.4f .. %.4f)\n",
		fit.Slope, level*100, fit.SlopeCI.Lower, fit.SlopeCI.Upper)
	fmt.Fprintf(&b, "intercept: %.4f (%.0f%% CI %.4f .. %.4f)\n",
		fit.Intercept, level*100, fit.InterceptCI.Lower, fit.InterceptCI.Upper)
	fmt.Fprintf(&b, "r = %.4f, r² = %.4f, p-value = %.5f\n", fit.R, fit.R2, fit.PValue)
	if fit.Significant(alpha) {
		fmt.Fprintf(&b, "trend is significant at alpha = %.2f\n", alpha)
	} else {
		fmt.Fprintf(&b, "trend is NOT significant at alpha = %.2f\n", alpha)
	}

	poly, err := regression.FitPolynomial(series, cfg.Analysis.PolynomialDegree)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "\n--- Polynomial fit (degree %d) ---\n", poly.Degree)
	fmt.Fprintf(&b, "coefficients (highest first): %v\n", poly.Coefficients)
	fmt.Fprintf(&b, "r² = %.4f\n", poly.R2)

	bootCfg := cfg.BootstrapConfig()
	slopeBoot, err := bootstrap.Run(series, bootstrap.Slope(), bootCfg)
	if err != nil {
		return "", err
	}
	interceptBoot, err := bootstrap.Run(series, bootstrap.Intercept(), bootCfg)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(&b, "\n--- Bootstrap (%d iterations, seed %d) ---\n",
		slopeBoot.Iterations, slopeBoot.Seed)
	fmt.Fprintf(&b, "slope:     %+.4f ± %.4f (%.0f%% CI %.4f .. %.4f, %d skipped)\n",
		slopeBoot.Mean, slopeBoot.StdDev, level*100,
		slopeBoot.CI.Lower, slopeBoot.CI.Upper, slopeBoot.Skipped)
	fmt.Fprintf(&b, "intercept: %.4f ± %.4f (%.0f%% CI %.4f .. %.4f)\n",
		interceptBoot.Mean, interceptBoot.StdDev, level*100,
		interceptBoot.CI.Lower, interceptBoot.CI.Upper)

	if year := cfg.Analysis.PredictionYear; year != 0 {
		predBoot, err := bootstrap.Run(series, bootstrap.Prediction(float64(year)), bootCfg)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "\n--- Prediction for %d ---\n", year)
		fmt.Fprintf(&b, "parametric: %.4f\n", fit.Predict(float64(year)))
		fmt.Fprintf(&b, "bootstrap:  %.4f (%.0f%% CI %.4f .. %.4f)\n",
			predBoot.Mean, level*100, predBoot.CI.Lower, predBoot.CI.Upper)
	}

	verdict := compare.Compare(fit, slopeBoot)
	fmt.Fprintf(&b, "\n--- Method comparison ---\n")
	fmt.Fprintf(&b, "parametric CI: %.4f .. %.4f (significant: %v)\n",
		verdict.ParametricCI.Lower, verdict.ParametricCI.Upper, verdict.ParametricSignificant)
	fmt.Fprintf(&b, "bootstrap CI:  %.4f .. %.4f (significant: %v)\n",
		verdict.BootstrapCI.Lower, verdict.BootstrapCI.Upper, verdict.BootstrapSignificant)
	fmt.Fprintf(&b, "CI width ratio (bootstrap/parametric): %.3f\n", verdict.WidthRatio)
	if verdict.Agree {
		fmt.Fprintln(&b, "methods AGREE on the significance conclusion")
	} else {
		fmt.Fprintln(&b, "methods DISAGREE on the significance conclusion")
	}

	return b.String(), nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "gotrend:", err)
	os.Exit(1)
}
