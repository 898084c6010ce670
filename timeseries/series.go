// Package timeseries provides paired observation series for trend analysis.
package timeseries

import (
	"math"

	"github.com/sartorproj/gotrend"
)

// Series represents an ordered sequence of paired observations (x, y) where
// x is typically a time index such as a year and y a measured quantity.
// Callers are responsible for supplying x in increasing order; the series is
// never resorted.
type Series struct {
	X    []float64
	Y    []float64
	Name string
}

// New creates a series from paired x and y values. Both slices are copied so
// the series does not alias caller-owned data. The slices must have equal
// length of at least 2, and every value must be finite; missing-value
// filtering is expected to happen before a series is constructed.
func New(x, y []float64) (*Series, error) {
	if len(x) != len(y) {
		return nil, &gotrend.InvalidParameterError{
			Param: "x,y", Value: [2]int{len(x), len(y)},
			Reason: "x and y must have the same length",
		}
	}
	if len(x) < 2 {
		return nil, &gotrend.InsufficientDataError{Op: "timeseries.New", Got: len(x), Need: 2}
	}
	for i := range x {
		if !isFinite(x[i]) {
			return nil, &gotrend.InvalidParameterError{
				Param: "x", Value: x[i], Reason: "values must be finite",
			}
		}
		if !isFinite(y[i]) {
			return nil, &gotrend.InvalidParameterError{
				Param: "y", Value: y[i], Reason: "values must be finite",
			}
		}
	}

	xs := make([]float64, len(x))
	ys := make([]float64, len(y))
	copy(xs, x)
	copy(ys, y)
	return &Series{X: xs, Y: ys}, nil
}

// FromYears creates a series whose x values are consecutive years starting
// at startYear, one per y value.
func FromYears(startYear int, y []float64) (*Series, error) {
	x := make([]float64, len(y))
	for i := range y {
		x[i] = float64(startYear + i)
	}
	return New(x, y)
}

// Len returns the number of observations in the series.
func (s *Series) Len() int {
	return len(s.Y)
}

// Validate checks the series invariants: equal lengths, at least two
// observations, and finite values throughout.
func (s *Series) Validate() error {
	if len(s.X) != len(s.Y) {
		return &gotrend.InvalidParameterError{
			Param: "series", Value: [2]int{len(s.X), len(s.Y)},
			Reason: "x and y must have the same length",
		}
	}
	if len(s.X) < 2 {
		return &gotrend.InsufficientDataError{Op: "timeseries.Validate", Got: len(s.X), Need: 2}
	}
	for i := range s.X {
		if !isFinite(s.X[i]) || !isFinite(s.Y[i]) {
			return &gotrend.InvalidParameterError{
				Param: "series", Value: i, Reason: "values must be finite",
			}
		}
	}
	return nil
}

// MeanX calculates the arithmetic mean of the x values.
func (s *Series) MeanX() float64 {
	return mean(s.X)
}

// MeanY calculates the arithmetic mean of the y values.
func (s *Series) MeanY() float64 {
	return mean(s.Y)
}

// VarianceY calculates the sample variance of the y values.
func (s *Series) VarianceY() float64 {
	if len(s.Y) < 2 {
		return 0
	}
	m := mean(s.Y)
	sumSq := 0.0
	for _, v := range s.Y {
		diff := v - m
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Y)-1)
}

// StdY calculates the sample standard deviation of the y values.
func (s *Series) StdY() float64 {
	return math.Sqrt(s.VarianceY())
}

// MinX returns the smallest x value, or NaN for an empty series.
func (s *Series) MinX() float64 {
	if len(s.X) == 0 {
		return math.NaN()
	}
	min := s.X[0]
	for _, v := range s.X[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// MaxX returns the largest x value, or NaN for an empty series.
func (s *Series) MaxX() float64 {
	if len(s.X) == 0 {
		return math.NaN()
	}
	max := s.X[0]
	for _, v := range s.X[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	x := make([]float64, len(s.X))
	y := make([]float64, len(s.Y))
	copy(x, s.X)
	copy(y, s.Y)
	return &Series{X: x, Y: y, Name: s.Name}
}

// Resample builds a new series by selecting observation pairs at the given
// row indices, which may repeat. It is the sampling primitive behind
// bootstrap resampling. Indices must be in [0, Len).
func (s *Series) Resample(indices []int) *Series {
	x := make([]float64, len(indices))
	y := make([]float64, len(indices))
	for i, idx := range indices {
		x[i] = s.X[idx]
		y[i] = s.Y[idx]
	}
	return &Series{X: x, Y: y, Name: s.Name}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
