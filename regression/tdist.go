package regression

import "math"

// Student-t tail probabilities and critical values, computed through the
// regularized incomplete beta function. For T ~ t(df):
//
//	P(|T| >= t) = I_x(df/2, 1/2),  x = df / (df + t²)

// tTwoSidedPValue returns P(|T| >= |t|) for T ~ t(df).
func tTwoSidedPValue(t float64, df int) float64 {
	if df < 1 || math.IsNaN(t) {
		return math.NaN()
	}
	if math.IsInf(t, 0) {
		return 0
	}
	x := float64(df) / (float64(df) + t*t)
	return incompleteBeta(float64(df)/2, 0.5, x)
}

// tCriticalValue returns the two-sided critical value t* such that
// P(|T| <= t*) = confidenceLevel for T ~ t(df). It inverts the two-sided
// tail probability by bisection.
func tCriticalValue(confidenceLevel float64, df int) float64 {
	if df < 1 || confidenceLevel <= 0 || confidenceLevel >= 1 {
		return math.NaN()
	}
	alpha := 1 - confidenceLevel

	// Bracket the root: tail probability is 1 at t=0 and decreases to 0.
	lo, hi := 0.0, 2.0
	for tTwoSidedPValue(hi, df) > alpha {
		hi *= 2
		if hi > 1e10 {
			break
		}
	}

	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if tTwoSidedPValue(mid, df) > alpha {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < 1e-12*(1+hi) {
			break
		}
	}
	return (lo + hi) / 2
}

// incompleteBeta calculates the regularized incomplete beta function
// I_x(a, b) using the continued fraction expansion.
func incompleteBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	lbeta := lgamma(a) + lgamma(b) - lgamma(a+b)
	front := math.Exp(a*math.Log(x) + b*math.Log(1-x) - lbeta)

	// The continued fraction converges rapidly for x < (a+1)/(a+b+2);
	// otherwise use the symmetry relation I_x(a,b) = 1 - I_{1-x}(b,a).
	if x < (a+1)/(a+b+2) {
		return front * betaCF(a, b, x) / a
	}
	return 1 - front*betaCF(b, a, 1-x)/b
}

// betaCF evaluates the continued fraction for the incomplete beta function
// using the modified Lentz method.
func betaCF(a, b, x float64) float64 {
	maxIter := 200
	eps := 1e-12
	fpmin := 1e-30

	qab := a + b
	qap := a + 1
	qam := a - 1

	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < fpmin {
		d = fpmin
	}
	d = 1 / d
	h := d

	for m := 1; m <= maxIter; m++ {
		m2 := 2 * m

		aa := float64(m) * (b - float64(m)) * x / ((qam + float64(m2)) * (a + float64(m2)))
		d = 1 + aa*d
		if math.Abs(d) < fpmin {
			d = fpmin
		}
		c = 1 + aa/c
		if math.Abs(c) < fpmin {
			c = fpmin
		}
		d = 1 / d
		h *= d * c

		aa = -(a + float64(m)) * (qab + float64(m)) * x / ((a + float64(m2)) * (qap + float64(m2)))
		d = 1 + aa*d
		if math.Abs(d) < fpmin {
			d = fpmin
		}
		c = 1 + aa/c
		if math.Abs(c) < fpmin {
			c = fpmin
		}
		d = 1 / d
		del := d * c
		h *= del

		if math.Abs(del-1) < eps {
			break
		}
	}
	return h
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
