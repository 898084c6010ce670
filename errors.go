package gotrend

import "fmt"

// InsufficientDataError reports that an operation received fewer observations
// than it requires.
type InsufficientDataError struct {
	Op   string // operation that failed
	Got  int    // observations provided
	Need int    // minimum observations required
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: insufficient data: got %d observations, need at least %d", e.Op, e.Got, e.Need)
}

// SingularMatrixError reports that a least-squares system could not be
// solved because the design matrix is non-invertible, typically because the
// predictor has zero variance or columns are collinear.
type SingularMatrixError struct {
	Op     string
	Reason string
}

func (e *SingularMatrixError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: singular design matrix", e.Op)
	}
	return fmt.Sprintf("%s: singular design matrix: %s", e.Op, e.Reason)
}

// InvalidParameterError reports a parameter outside its documented range,
// such as a confidence level outside (0, 1) or a non-positive iteration
// count.
type InvalidParameterError struct {
	Param  string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Param, e.Value, e.Reason)
}

// DegenerateBootstrapError reports that too large a fraction of bootstrap
// resamples failed to produce a usable statistic, so the surviving
// distribution would be misleadingly small.
type DegenerateBootstrapError struct {
	Skipped     int
	Iterations  int
	MaxFraction float64
}

func (e *DegenerateBootstrapError) Error() string {
	return fmt.Sprintf("degenerate bootstrap: %d of %d resamples skipped (limit %.0f%%)",
		e.Skipped, e.Iterations, e.MaxFraction*100)
}
