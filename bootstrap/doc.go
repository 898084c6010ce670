// Package bootstrap estimates the sampling distribution of a trend
// statistic by resampling observation pairs with replacement.
//
// Each of Config.Iterations resamples draws Len(series) row indices from a
// seeded random source, evaluates a Statistic on the resampled series, and
// the surviving values are aggregated into a mean, a standard error
// estimate, and a percentile confidence interval. The percentile method
// makes no normality assumption, which is the point of bootstrapping over
// the parametric t-based intervals in the regression package.
//
// # Reproducibility
//
// A non-zero Config.Seed makes a run fully deterministic: the same series,
// statistic, and configuration produce a bit-identical Result. Iteration i
// always draws from its own sub-stream seeded Seed+i, so the Workers count
// is a pure performance knob that never changes the outcome:
//
//	cfg := bootstrap.DefaultConfig()
//	cfg.Iterations = 10000
//	cfg.Seed = 42
//	cfg.Workers = runtime.NumCPU()
//	result, err := bootstrap.Run(series, bootstrap.Slope(), cfg)
//
// # Statistics
//
// Any func(*timeseries.Series) (float64, error) can be bootstrapped. The
// package ships the ones the trend estimator reports:
//
//	bootstrap.Slope()          // trend per x unit (the default)
//	bootstrap.Intercept()      // fitted intercept
//	bootstrap.RSquared()       // goodness of fit
//	bootstrap.Prediction(2030) // extrapolated value at a target year
//
// # Skip policy
//
// A resample on which the statistic fails (for example, all drawn rows
// share one x value, so the slope is undefined) is recorded as skipped and
// excluded from the distribution. When skips exceed
// Config.MaxSkipFraction of the iterations, Run fails with a
// DegenerateBootstrapError instead of reporting a misleadingly small
// sample.
package bootstrap
