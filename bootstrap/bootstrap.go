// Package bootstrap implements seeded bootstrap resampling for trend
// statistics.
package bootstrap

import (
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/sartorproj/gotrend"
	"github.com/sartorproj/gotrend/timeseries"
)

// Statistic is any function reducing a series to a single real number, such
// as a regression slope. The bootstrap engine resamples the series and
// evaluates the statistic on each resample. Returning an error marks the
// resample as skipped (for example, a degenerate resample with zero
// predictor variance); it never aborts the run unless the skip policy in
// Config is exceeded.
type Statistic func(*timeseries.Series) (float64, error)

// Config holds configuration for a bootstrap run.
type Config struct {
	// Iterations is the number of resamples to draw. Larger counts give
	// more stable percentile estimates at proportionally higher cost.
	Iterations int

	// ConfidenceLevel in (0, 1) for the percentile interval (default 0.95).
	ConfidenceLevel float64

	// Seed for the random source. Any non-zero seed makes the run fully
	// reproducible: identical inputs produce a bit-identical Result,
	// regardless of Workers. Zero draws a seed from the clock.
	Seed int64

	// Workers is the number of goroutines evaluating iterations. Values
	// below 1 mean a single worker. The worker count never changes the
	// result: iteration i always uses its own sub-stream seeded Seed+i.
	Workers int

	// MaxSkipFraction in (0, 1] is the largest tolerated fraction of
	// skipped resamples before the whole run fails (default 0.5).
	MaxSkipFraction float64
}

// DefaultConfig returns the default bootstrap configuration: 10000
// iterations at the 95% level, single worker, clock seed, and a 50% skip
// limit.
func DefaultConfig() *Config {
	return &Config{
		Iterations:      10000,
		ConfidenceLevel: 0.95,
		Workers:         1,
		MaxSkipFraction: 0.5,
	}
}

// Result represents the aggregated distribution of one bootstrap run. It is
// created once per run and never mutated afterwards.
type Result struct {
	// Values holds the surviving statistic values in iteration order.
	Values []float64

	Mean   float64
	StdDev float64

	// CI is the percentile confidence interval: the (1-level)/2 and
	// 1-(1-level)/2 empirical percentiles of the sorted distribution.
	CI gotrend.Interval

	ConfidenceLevel float64
	Iterations      int
	Skipped         int

	// Seed actually used, so clock-seeded runs can still be reported.
	Seed int64
}

// Run draws cfg.Iterations resamples of the series (row indices sampled
// with replacement, each resample the size of the series), evaluates stat on
// each, and aggregates the surviving values into a Result. A nil stat
// defaults to the linear regression slope; a nil cfg uses DefaultConfig.
func Run(series *timeseries.Series, stat Statistic, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if stat == nil {
		stat = Slope()
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := series.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	n := series.Len()
	iterations := cfg.Iterations
	values := make([]float64, iterations)
	ok := make([]bool, iterations)

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > iterations {
		workers = iterations
	}

	chunk := (iterations + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > iterations {
			end = iterations
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			indices := make([]int, n)
			for i := start; i < end; i++ {
				// Independent sub-stream per iteration keeps results
				// identical for any worker count.
				rng := rand.New(rand.NewSource(seed + int64(i)))
				for j := range indices {
					indices[j] = rng.Intn(n)
				}
				v, err := stat(series.Resample(indices))
				if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
					continue
				}
				values[i] = v
				ok[i] = true
			}
		}(start, end)
	}
	wg.Wait()

	surviving := values[:0:0]
	for i, v := range values {
		if ok[i] {
			surviving = append(surviving, v)
		}
	}
	skipped := iterations - len(surviving)

	if len(surviving) == 0 || float64(skipped) > cfg.MaxSkipFraction*float64(iterations) {
		return nil, &gotrend.DegenerateBootstrapError{
			Skipped:     skipped,
			Iterations:  iterations,
			MaxFraction: cfg.MaxSkipFraction,
		}
	}

	result := &Result{
		Values:          surviving,
		Mean:            mean(surviving),
		StdDev:          stdDev(surviving),
		ConfidenceLevel: cfg.ConfidenceLevel,
		Iterations:      iterations,
		Skipped:         skipped,
		Seed:            seed,
	}

	sorted := make([]float64, len(surviving))
	copy(sorted, surviving)
	sort.Float64s(sorted)

	alpha := 1 - cfg.ConfidenceLevel
	result.CI = gotrend.Interval{
		Lower: percentile(sorted, alpha/2),
		Upper: percentile(sorted, 1-alpha/2),
	}

	return result, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Iterations < 1 {
		return &gotrend.InvalidParameterError{
			Param: "Iterations", Value: cfg.Iterations, Reason: "must be a positive integer",
		}
	}
	if cfg.ConfidenceLevel <= 0 || cfg.ConfidenceLevel >= 1 {
		return &gotrend.InvalidParameterError{
			Param: "ConfidenceLevel", Value: cfg.ConfidenceLevel, Reason: "must be in (0, 1)",
		}
	}
	if cfg.MaxSkipFraction <= 0 || cfg.MaxSkipFraction > 1 {
		return &gotrend.InvalidParameterError{
			Param: "MaxSkipFraction", Value: cfg.MaxSkipFraction, Reason: "must be in (0, 1]",
		}
	}
	return nil
}

// percentile returns the q-th empirical percentile (q in [0, 1]) of sorted
// values using linear interpolation between order statistics.
func percentile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := q * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if hi >= n {
		hi = n - 1
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev is the population standard deviation of the bootstrap
// distribution, which directly estimates the statistic's standard error.
func stdDev(values []float64) float64 {
	m := mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}
