// Package compare reports whether parametric and bootstrap uncertainty
// estimates reach the same conclusion about a trend.
//
// The two methods answer the same question differently: the regression
// package assumes t-distributed errors, the bootstrap package resamples the
// observed data. Compare overlays their confidence intervals:
//
//	result := compare.Compare(fit, boot)
//	// result.Agree: both intervals exclude zero with the same sign,
//	//               or both contain zero
//	// result.WidthRatio: bootstrap CI width / parametric CI width
//
// A WidthRatio near 1 with Agree set means the parametric assumptions hold
// up; a wide divergence suggests small-sample or non-normal effects worth a
// closer look. Compare has no state and never modifies its inputs.
package compare
