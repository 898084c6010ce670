// Package regression implements linear and polynomial trend estimation.
package regression

import (
	"math"

	"github.com/sartorproj/gotrend"
	"github.com/sartorproj/gotrend/timeseries"
)

// DefaultConfidenceLevel is the confidence level used by callers that do not
// configure their own.
const DefaultConfidenceLevel = 0.95

// LinearFit represents the result of a linear least-squares trend fit. It is
// created once per call to FitLinear and never mutated afterwards.
type LinearFit struct {
	Slope     float64
	Intercept float64

	// R is the Pearson correlation coefficient, R2 its square.
	R  float64
	R2 float64

	// PValue is the two-sided p-value against the null hypothesis of zero
	// slope, from the t-distribution with N-2 degrees of freedom. It is NaN
	// when N == 2, where the fit is exact and the test is undefined.
	PValue float64

	SlopeStdErr     float64
	InterceptStdErr float64
	ResidualStd     float64

	SlopeCI     gotrend.Interval
	InterceptCI gotrend.Interval

	ConfidenceLevel float64
	N               int
}

// FitLinear fits the line y = Slope*x + Intercept to the series by ordinary
// least squares and derives the significance statistics at the given
// confidence level (in (0, 1), typically DefaultConfidenceLevel).
//
// The series needs at least 3 observations for the standard error and
// p-value to be defined. With exactly 2 the fit itself is still well-defined
// and is returned with a NaN p-value and intervals degenerate to the point
// estimates. Identical x values fail with a SingularMatrixError.
func FitLinear(series *timeseries.Series, confidenceLevel float64) (*LinearFit, error) {
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return nil, &gotrend.InvalidParameterError{
			Param: "confidenceLevel", Value: confidenceLevel,
			Reason: "must be in (0, 1)",
		}
	}
	if err := series.Validate(); err != nil {
		return nil, err
	}

	n := series.Len()
	xMean := series.MeanX()
	yMean := series.MeanY()

	var sxx, sxy, syy float64
	for i := 0; i < n; i++ {
		dx := series.X[i] - xMean
		dy := series.Y[i] - yMean
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}

	if sxx == 0 {
		return nil, &gotrend.SingularMatrixError{
			Op: "regression.FitLinear", Reason: "predictor has zero variance",
		}
	}

	slope := sxy / sxx
	intercept := yMean - slope*xMean

	r := 0.0
	if syy > 0 {
		r = sxy / math.Sqrt(sxx*syy)
	}

	fit := &LinearFit{
		Slope:           slope,
		Intercept:       intercept,
		R:               r,
		R2:              r * r,
		ConfidenceLevel: confidenceLevel,
		N:               n,
	}

	if n == 2 {
		// Exact fit through two points: no residual degrees of freedom.
		fit.PValue = math.NaN()
		fit.SlopeCI = gotrend.Interval{Lower: slope, Upper: slope}
		fit.InterceptCI = gotrend.Interval{Lower: intercept, Upper: intercept}
		return fit, nil
	}

	sse := 0.0
	for i := 0; i < n; i++ {
		residual := series.Y[i] - (slope*series.X[i] + intercept)
		sse += residual * residual
	}

	fit.ResidualStd = math.Sqrt(sse / float64(n-2))
	fit.SlopeStdErr = fit.ResidualStd / math.Sqrt(sxx)
	fit.InterceptStdErr = fit.ResidualStd * math.Sqrt(1/float64(n)+xMean*xMean/sxx)

	switch {
	case fit.SlopeStdErr > 0:
		tStat := slope / fit.SlopeStdErr
		fit.PValue = tTwoSidedPValue(tStat, n-2)
	case slope != 0:
		// Zero residual variance around a non-zero trend.
		fit.PValue = 0
	default:
		fit.PValue = 1
	}

	tCrit := tCriticalValue(confidenceLevel, n-2)
	fit.SlopeCI = gotrend.Interval{
		Lower: slope - tCrit*fit.SlopeStdErr,
		Upper: slope + tCrit*fit.SlopeStdErr,
	}
	fit.InterceptCI = gotrend.Interval{
		Lower: intercept - tCrit*fit.InterceptStdErr,
		Upper: intercept + tCrit*fit.InterceptStdErr,
	}

	return fit, nil
}

// Predict returns the fitted value Slope*x + Intercept at x.
func (f *LinearFit) Predict(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// Significant reports whether the slope is statistically significant at the
// given significance level (for example 0.05). It is false when the p-value
// is undefined.
func (f *LinearFit) Significant(alpha float64) bool {
	return !math.IsNaN(f.PValue) && f.PValue < alpha
}
