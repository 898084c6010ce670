package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gotrend"
)

func TestFitPolynomialDegreeOneMatchesLinear(t *testing.T) {
	series := mustSeries(t,
		[]float64{2019, 2020, 2021, 2022, 2023},
		[]float64{30.1, 30.5, 31.0, 31.2, 31.7},
	)

	linear, err := FitLinear(series, DefaultConfidenceLevel)
	require.NoError(t, err)

	poly, err := FitPolynomial(series, 1)
	require.NoError(t, err)
	require.Len(t, poly.Coefficients, 2)

	assert.InDelta(t, linear.Slope, poly.Coefficients[0], 1e-8)
	assert.InDelta(t, linear.Intercept, poly.Coefficients[1], 1e-6)
	assert.InDelta(t, linear.R2, poly.R2, 1e-8)
}

func TestFitPolynomialExactQuadratic(t *testing.T) {
	// y = 2x² + 3x + 1 on symmetric small x
	x := []float64{-3, -2, -1, 0, 1, 2, 3}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 2*xi*xi + 3*xi + 1
	}
	series := mustSeries(t, x, y)

	poly, err := FitPolynomial(series, 2)
	require.NoError(t, err)
	require.Len(t, poly.Coefficients, 3)

	assert.InDelta(t, 2.0, poly.Coefficients[0], 1e-9)
	assert.InDelta(t, 3.0, poly.Coefficients[1], 1e-9)
	assert.InDelta(t, 1.0, poly.Coefficients[2], 1e-9)
	assert.InDelta(t, 1.0, poly.R2, 1e-12)
}

func TestFitPolynomialYearScaleQuadratic(t *testing.T) {
	// Quadratic trend expressed around 2019 so the raw coefficients are
	// known exactly: y = 0.05(x-2019)² + 0.4(x-2019) + 30.
	x := make([]float64, 9)
	y := make([]float64, 9)
	for i := range x {
		xi := float64(2015 + i)
		d := xi - 2019
		x[i] = xi
		y[i] = 0.05*d*d + 0.4*d + 30
	}
	series := mustSeries(t, x, y)

	poly, err := FitPolynomial(series, 2)
	require.NoError(t, err)

	// Raw-x coefficients of the same curve.
	assert.InDelta(t, 0.05, poly.Coefficients[0], 1e-6)
	assert.InDelta(t, 0.4-2*0.05*2019, poly.Coefficients[1], 1e-4)
	assert.InDelta(t, 0.05*2019*2019-0.4*2019+30, poly.Coefficients[2], 1e-2)

	// Evaluation must reproduce the curve despite the large x scale.
	assert.InDelta(t, 33.25, poly.Eval(2024), 1e-6)
	assert.InDelta(t, 30.0, poly.Eval(2019), 1e-6)
	assert.InDelta(t, 1.0, poly.R2, 1e-9)
}

func TestFitPolynomialEvalHorner(t *testing.T) {
	poly := &PolynomialFit{Coefficients: []float64{1, -2, 3}, Degree: 2}
	// 1*x² - 2*x + 3 at x = 4 -> 16 - 8 + 3
	assert.Equal(t, 11.0, poly.Eval(4))
	assert.Equal(t, 3.0, poly.Eval(0))
}

func TestFitPolynomialInvalidDegree(t *testing.T) {
	series := mustSeries(t, []float64{1, 2, 3}, []float64{1, 2, 3})

	for _, degree := range []int{0, -1} {
		_, err := FitPolynomial(series, degree)
		var invalid *gotrend.InvalidParameterError
		require.ErrorAs(t, err, &invalid, "degree %d", degree)
	}
}

func TestFitPolynomialInsufficientData(t *testing.T) {
	series := mustSeries(t, []float64{1, 2, 3}, []float64{1, 4, 9})

	_, err := FitPolynomial(series, 3)
	var insufficient *gotrend.InsufficientDataError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 3, insufficient.Got)
	assert.Equal(t, 4, insufficient.Need)
}

func TestFitPolynomialIdenticalX(t *testing.T) {
	series := mustSeries(t, []float64{7, 7, 7}, []float64{1, 2, 3})

	_, err := FitPolynomial(series, 1)
	var singular *gotrend.SingularMatrixError
	require.ErrorAs(t, err, &singular)
}
