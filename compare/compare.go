// Package compare reconciles parametric and bootstrap trend estimates.
package compare

import (
	"github.com/sartorproj/gotrend"
	"github.com/sartorproj/gotrend/bootstrap"
	"github.com/sartorproj/gotrend/regression"
)

// Result pairs the significance conclusions of a parametric linear fit and
// a bootstrap run over the same series. It is derived and read-only.
type Result struct {
	ParametricEstimate float64
	BootstrapEstimate  float64

	ParametricCI gotrend.Interval
	BootstrapCI  gotrend.Interval

	// A method is "significant" when its interval excludes zero.
	ParametricSignificant bool
	BootstrapSignificant  bool

	// SameSign is true when both intervals exclude zero on the same side.
	SameSign bool

	// Agree is true when both methods reach the same conclusion: both
	// intervals exclude zero with the same sign, or both contain it.
	Agree bool

	// IntervalsOverlap reports whether the two intervals share any point.
	IntervalsOverlap bool

	// WidthRatio is bootstrap interval width over parametric interval
	// width; values near 1 mean the parametric assumptions hold up.
	WidthRatio float64
}

// Compare reconciles a regression fit and a bootstrap result computed for
// the same series and statistic. It is a pure function of its inputs.
func Compare(fit *regression.LinearFit, boot *bootstrap.Result) *Result {
	pExcludes, pSign := fit.SlopeCI.ExcludesZero()
	bExcludes, bSign := boot.CI.ExcludesZero()

	result := &Result{
		ParametricEstimate:    fit.Slope,
		BootstrapEstimate:     boot.Mean,
		ParametricCI:          fit.SlopeCI,
		BootstrapCI:           boot.CI,
		ParametricSignificant: pExcludes,
		BootstrapSignificant:  bExcludes,
		SameSign:              pExcludes && bExcludes && pSign == bSign,
		IntervalsOverlap:      fit.SlopeCI.Overlaps(boot.CI),
	}
	result.Agree = result.SameSign || (!pExcludes && !bExcludes)

	if w := fit.SlopeCI.Width(); w > 0 {
		result.WidthRatio = boot.CI.Width() / w
	}

	return result
}
