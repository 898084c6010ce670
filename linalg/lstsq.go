// Package linalg provides the least-squares solver used by the regression
// estimators.
package linalg

import (
	"math"

	"github.com/sartorproj/gotrend"
)

// pivotTolerance is the smallest absolute pivot Gauss-Jordan elimination
// accepts before declaring the matrix singular.
const pivotTolerance = 1e-10

// LeastSquares solves the least-squares problem for a design matrix x
// (n rows of d regressors, intercept column included by the caller when an
// intercept is wanted) and target vector y of length n, minimizing mean
// squared error via the normal equations:
//
//	w = (XᵀX)⁻¹ Xᵀy
//
// It requires n >= d and a non-singular XᵀX; collinear columns, such as a
// predictor with zero variance next to an intercept column, fail with a
// SingularMatrixError. The inputs are not modified.
func LeastSquares(x [][]float64, y []float64) ([]float64, error) {
	n := len(y)
	if n == 0 || len(x) != n {
		return nil, &gotrend.InvalidParameterError{
			Param: "x,y", Value: [2]int{len(x), n},
			Reason: "design matrix rows and target length must match and be non-zero",
		}
	}

	d := len(x[0])
	if d == 0 {
		return nil, &gotrend.InvalidParameterError{
			Param: "x", Value: 0, Reason: "design matrix must have at least one column",
		}
	}
	for i := range x {
		if len(x[i]) != d {
			return nil, &gotrend.InvalidParameterError{
				Param: "x", Value: i, Reason: "design matrix rows must have equal length",
			}
		}
	}
	if n < d {
		return nil, &gotrend.InsufficientDataError{Op: "linalg.LeastSquares", Got: n, Need: d}
	}

	// Build XᵀX and Xᵀy
	xtx := make([][]float64, d)
	for i := range xtx {
		xtx[i] = make([]float64, d)
	}
	xty := make([]float64, d)

	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			xty[j] += x[i][j] * y[i]
			for l := 0; l < d; l++ {
				xtx[j][l] += x[i][j] * x[i][l]
			}
		}
	}

	xtxInv, ok := invert(xtx)
	if !ok {
		return nil, &gotrend.SingularMatrixError{
			Op: "linalg.LeastSquares", Reason: "XᵀX is not invertible",
		}
	}

	// w = (XᵀX)⁻¹ Xᵀy
	w := make([]float64, d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			w[i] += xtxInv[i][j] * xty[j]
		}
	}
	return w, nil
}

// invert inverts a square matrix using Gauss-Jordan elimination with partial
// pivoting. The second return value is false when the matrix is singular.
// The input is not modified.
func invert(m [][]float64) ([][]float64, bool) {
	n := len(m)
	if n == 0 {
		return nil, false
	}

	// Augmented matrix [A|I]
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, 2*n)
		copy(aug[i][:n], m[i])
		aug[i][n+i] = 1
	}

	for i := 0; i < n; i++ {
		// Find pivot
		maxRow := i
		for k := i + 1; k < n; k++ {
			if math.Abs(aug[k][i]) > math.Abs(aug[maxRow][i]) {
				maxRow = k
			}
		}
		aug[i], aug[maxRow] = aug[maxRow], aug[i]

		if math.Abs(aug[i][i]) < pivotTolerance {
			return nil, false
		}

		// Scale pivot row
		pivot := aug[i][i]
		for j := 0; j < 2*n; j++ {
			aug[i][j] /= pivot
		}

		// Eliminate column
		for k := 0; k < n; k++ {
			if k != i {
				factor := aug[k][i]
				for j := 0; j < 2*n; j++ {
					aug[k][j] -= factor * aug[i][j]
				}
			}
		}
	}

	result := make([][]float64, n)
	for i := 0; i < n; i++ {
		result[i] = make([]float64, n)
		copy(result[i], aug[i][n:])
	}
	return result, true
}
