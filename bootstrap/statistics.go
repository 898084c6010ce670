package bootstrap

import (
	"math"

	"github.com/sartorproj/gotrend"
	"github.com/sartorproj/gotrend/timeseries"
)

// Built-in statistics for the quantities the trend estimator reports. Each
// uses the closed-form least-squares solution, so resampled values agree
// numerically with the regression package on the same resample.

// Slope returns the statistic extracting the linear regression slope.
func Slope() Statistic {
	return func(s *timeseries.Series) (float64, error) {
		slope, _, err := slopeIntercept(s)
		return slope, err
	}
}

// Intercept returns the statistic extracting the linear regression
// intercept.
func Intercept() Statistic {
	return func(s *timeseries.Series) (float64, error) {
		_, intercept, err := slopeIntercept(s)
		return intercept, err
	}
}

// RSquared returns the statistic extracting the squared Pearson correlation
// of the linear fit.
func RSquared() Statistic {
	return func(s *timeseries.Series) (float64, error) {
		n := s.Len()
		xMean := s.MeanX()
		yMean := s.MeanY()

		var sxx, sxy, syy float64
		for i := 0; i < n; i++ {
			dx := s.X[i] - xMean
			dy := s.Y[i] - yMean
			sxx += dx * dx
			sxy += dx * dy
			syy += dy * dy
		}
		if sxx == 0 {
			return 0, &gotrend.SingularMatrixError{
				Op: "bootstrap.RSquared", Reason: "predictor has zero variance",
			}
		}
		if syy == 0 {
			return 0, nil
		}
		r := sxy / math.Sqrt(sxx*syy)
		return r * r, nil
	}
}

// Prediction returns the statistic extrapolating the linear fit to x,
// typically a future year. The distribution of resampled predictions
// quantifies forecast uncertainty.
func Prediction(x float64) Statistic {
	return func(s *timeseries.Series) (float64, error) {
		slope, intercept, err := slopeIntercept(s)
		if err != nil {
			return 0, err
		}
		return slope*x + intercept, nil
	}
}

func slopeIntercept(s *timeseries.Series) (float64, float64, error) {
	n := s.Len()
	xMean := s.MeanX()
	yMean := s.MeanY()

	var sxx, sxy float64
	for i := 0; i < n; i++ {
		dx := s.X[i] - xMean
		sxx += dx * dx
		sxy += dx * (s.Y[i] - yMean)
	}
	if sxx == 0 {
		return 0, 0, &gotrend.SingularMatrixError{
			Op: "bootstrap.slopeIntercept", Reason: "predictor has zero variance",
		}
	}

	slope := sxy / sxx
	return slope, yMean - slope*xMean, nil
}
