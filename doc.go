// Package gotrend provides trend estimation for time-ordered numeric series
// with both parametric and bootstrap uncertainty quantification.
//
// GoTrend estimates linear trends (for example, the change per year in an
// annual temperature or rainfall series) and quantifies how certain that
// estimate is, using two complementary techniques: closed-form least-squares
// regression with t-distribution significance statistics, and non-parametric
// bootstrap resampling with percentile confidence intervals.
//
// # Features
//
//   - Ordinary least-squares linear fits with correlation, standard errors,
//     p-values, and confidence intervals
//   - Polynomial fits of bounded degree via the normal equations
//   - Seeded, reproducible bootstrap resampling of any statistic
//   - Reconciliation of parametric and bootstrap significance conclusions
//   - CSV loading for year/value observation series
//
// # Quick Start
//
// Fit a linear trend and test its significance:
//
//	series, _ := timeseries.New(years, values)
//	fit, err := regression.FitLinear(series, regression.DefaultConfidenceLevel)
//	if err != nil {
//		// handle
//	}
//	fmt.Printf("slope %.3f/yr, p = %.4f\n", fit.Slope, fit.PValue)
//
// Bootstrap the slope with a fixed seed for reproducibility:
//
//	cfg := bootstrap.DefaultConfig()
//	cfg.Seed = 42
//	boot, err := bootstrap.Run(series, bootstrap.Slope(), cfg)
//
// Check that both methods agree:
//
//	verdict := compare.Compare(fit, boot)
//	fmt.Println("methods agree:", verdict.Agree)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: paired observation series and CSV utilities
//   - linalg: least-squares solver (normal equations)
//   - regression: linear and polynomial trend estimation
//   - bootstrap: resampling engine and built-in statistics
//   - compare: parametric vs bootstrap method comparison
//   - config: YAML parameter files for the command-line front end
//
// # References
//
//   - Efron, B., & Tibshirani, R.J. (1993). An Introduction to the Bootstrap
//   - Draper, N.R., & Smith, H. (1998). Applied Regression Analysis
package gotrend
