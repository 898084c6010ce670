// Package linalg solves least-squares systems via the normal equations.
//
// The solver is the leaf dependency of the regression package. Given a
// design matrix X (one row per observation, intercept column of ones
// included by the caller) and a target vector y, it produces the weight
// vector minimizing mean squared error:
//
//	w, err := linalg.LeastSquares(x, y)
//
// XᵀX is inverted by Gauss-Jordan elimination with partial pivoting. A
// singular system (collinear columns, for example a predictor with zero
// variance) fails with a SingularMatrixError rather than returning an
// unstable solution.
//
// The solver is a pure function of its inputs: nothing is cached, and the
// caller's slices are never modified.
package linalg
