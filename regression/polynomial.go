package regression

import (
	"github.com/sartorproj/gotrend"
	"github.com/sartorproj/gotrend/linalg"
	"github.com/sartorproj/gotrend/timeseries"
)

// PolynomialFit represents the result of a polynomial least-squares fit. It
// is created once per call to FitPolynomial and never mutated afterwards.
type PolynomialFit struct {
	// Coefficients are ordered highest degree first, so the fitted curve is
	// Coefficients[0]*x^Degree + ... + Coefficients[Degree].
	Coefficients []float64
	Degree       int
	R2           float64
	N            int
}

// FitPolynomial fits a polynomial of the given degree to the series by
// delegating a Vandermonde design matrix to the least-squares kernel.
// The predictor is centered before solving to keep the normal equations
// well-conditioned for large x values such as calendar years; the returned
// coefficients are in terms of the original x.
//
// degree must be a positive integer and the series must contain more than
// degree observations.
func FitPolynomial(series *timeseries.Series, degree int) (*PolynomialFit, error) {
	if degree < 1 {
		return nil, &gotrend.InvalidParameterError{
			Param: "degree", Value: degree, Reason: "must be a positive integer",
		}
	}
	if err := series.Validate(); err != nil {
		return nil, err
	}

	n := series.Len()
	if n < degree+1 {
		return nil, &gotrend.InsufficientDataError{
			Op: "regression.FitPolynomial", Got: n, Need: degree + 1,
		}
	}

	xMean := series.MeanX()

	// Vandermonde design on t = x - xMean, lowest power first.
	design := make([][]float64, n)
	for i := 0; i < n; i++ {
		t := series.X[i] - xMean
		row := make([]float64, degree+1)
		row[0] = 1
		for j := 1; j <= degree; j++ {
			row[j] = row[j-1] * t
		}
		design[i] = row
	}

	centered, err := linalg.LeastSquares(design, series.Y)
	if err != nil {
		return nil, err
	}

	fit := &PolynomialFit{
		Coefficients: shiftCoefficients(centered, xMean),
		Degree:       degree,
		N:            n,
	}

	// R² from the centered form, evaluated before the shift.
	yMean := series.MeanY()
	ssRes, ssTot := 0.0, 0.0
	for i := 0; i < n; i++ {
		t := series.X[i] - xMean
		pred := centered[degree]
		for j := degree - 1; j >= 0; j-- {
			pred = pred*t + centered[j]
		}
		dRes := series.Y[i] - pred
		dTot := series.Y[i] - yMean
		ssRes += dRes * dRes
		ssTot += dTot * dTot
	}
	if ssTot > 0 {
		fit.R2 = 1 - ssRes/ssTot
	}

	return fit, nil
}

// Eval evaluates the fitted polynomial at x using Horner's method.
func (p *PolynomialFit) Eval(x float64) float64 {
	result := 0.0
	for _, c := range p.Coefficients {
		result = result*x + c
	}
	return result
}

// shiftCoefficients converts coefficients of q(t), t = x - m, lowest power
// first, into coefficients of q(x - m) in x, highest power first. The
// expansion is the repeated synthetic multiply p(x)*(x - m) + q_k.
func shiftCoefficients(q []float64, m float64) []float64 {
	degree := len(q) - 1
	p := []float64{q[degree]}
	for k := degree - 1; k >= 0; k-- {
		next := make([]float64, len(p)+1)
		for i, c := range p {
			next[i] += c
			next[i+1] -= c * m
		}
		next[len(p)] += q[k]
		p = next
	}
	return p
}
