// Package regression estimates linear and polynomial trends with
// significance statistics.
//
// # Linear trend
//
// FitLinear computes the ordinary least-squares line through a series using
// the closed-form centered-sum formulas, along with the Pearson correlation,
// standard errors, a two-sided p-value for the null hypothesis of zero
// slope, and t-based confidence intervals for slope and intercept:
//
//	fit, err := regression.FitLinear(series, regression.DefaultConfidenceLevel)
//	if fit.Significant(0.05) {
//	    fmt.Printf("trend: %+.3f per year (CI %.3f..%.3f)\n",
//	        fit.Slope, fit.SlopeCI.Lower, fit.SlopeCI.Upper)
//	}
//
// Significance statistics need at least 3 observations (n-2 residual degrees
// of freedom). A 2-point series still fits exactly and returns a NaN p-value
// with intervals degenerate to the point estimates.
//
// # Polynomial trend
//
// FitPolynomial fits a curve of bounded degree through the least-squares
// kernel and returns coefficients ordered highest degree first, matching
// the usual polynomial convention:
//
//	poly, err := regression.FitPolynomial(series, 2)
//	yHat := poly.Eval(2030)
//
// # Errors
//
// Both estimators fail with typed errors from the root package: an
// InvalidParameterError for an out-of-range confidence level or degree, an
// InsufficientDataError when the series is too short, and a
// SingularMatrixError when the predictor has zero variance.
//
// The t-distribution machinery (tail probabilities and critical values) is
// implemented locally via the regularized incomplete beta function, keeping
// the package free of numerical dependencies.
package regression
