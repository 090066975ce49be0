// SPDX-License-Identifier: MIT
// Package matrix provides the direct-solve kernels and the vector helpers
// shared by the iterative kernels.
//
// Purpose:
//   - MatVec / Residual / NormInfDiff: the measurements every solver reports.
//   - GaussSolve: Gaussian elimination with partial (row) pivoting.
//
// Notes:
//   - Kernels operate on a private *Dense copy so inputs are never mutated.
//   - All failures are sentinels wrapped via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for dot products and substitutions.
const ZeroSum = 0.0

// SingularTolerance is the relative pivot threshold: a column whose best
// pivot magnitude is <= SingularTolerance * max|a_ij| is treated as singular.
const SingularTolerance = 1e-12

// Operation name constants for unified error wrapping.
const (
	opMatVec      = "MatVec"
	opResidual    = "Residual"
	opGaussSolve  = "GaussSolve"
	opJacobi      = "Jacobi"
	opGaussSeidel = "GaussSeidel"
	opSOR         = "SOR"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Only call with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns a private *Dense copy of m. The *Dense fast path is a flat
// copy; other implementations are read through At.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	var sum, v float64
	var err error
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			sum = ZeroSum
			base := i * cols
			for j = 0; j < cols; j++ {
				sum += d.data[base+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}
	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Residual returns max_i |(m*x - b)_i|, the infinity norm of the residual.
func Residual(m Matrix, x, b []float64) (float64, error) {
	y, err := MatVec(m, x)
	if err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, len(y)); err != nil {
		return 0, matrixErrorf(opResidual, err)
	}

	return NormInfDiff(y, b), nil
}

// NormInfDiff returns max_i |a_i - b_i| over the common prefix of a and b.
func NormInfDiff(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var out float64
	for i := 0; i < n; i++ {
		if d := math.Abs(a[i] - b[i]); d > out {
			out = d
		}
	}

	return out
}

// GaussSolve solves m*x = b by Gaussian elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: validate (square, len(b)==n, finite) and copy m, b.
//   - Stage 2: forward elimination; for each column k choose the row with the
//     largest |a_ik| (i>=k), swap it up, eliminate below.
//   - Stage 3: back substitution.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNaNInf.
//   - ErrSingular when a column has no pivot above SingularTolerance*max|a|.
//
// Determinism:
//   - Ties in pivot magnitude keep the lowest row index.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func GaussSolve(m Matrix, b []float64) ([]float64, error) {
	if err := validateSystem(m, b); err != nil {
		return nil, matrixErrorf(opGaussSolve, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opGaussSolve, err)
	}
	n := a.r
	rhs := make([]float64, n)
	copy(rhs, b)

	var scale float64
	for _, v := range a.data {
		if av := math.Abs(v); av > scale {
			scale = av
		}
	}
	if scale == 0 {
		return nil, matrixErrorf(opGaussSolve, ErrSingular)
	}
	threshold := SingularTolerance * scale

	var i, j, k, p int
	var best, f float64
	for k = 0; k < n; k++ {
		// Partial pivot: largest magnitude in column k at or below the diagonal.
		p, best = k, math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= threshold {
			return nil, matrixErrorf(opGaussSolve, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			_ = a.SwapRows(p, k) // indices validated by construction
			rhs[p], rhs[k] = rhs[k], rhs[p]
		}
		// Eliminate below the pivot.
		for i = k + 1; i < n; i++ {
			f = a.data[i*n+k] / a.data[k*n+k]
			if f == 0 {
				continue
			}
			a.data[i*n+k] = 0
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= f * a.data[k*n+j]
			}
			rhs[i] -= f * rhs[k]
		}
	}

	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = rhs[i]
		for j = i + 1; j < n; j++ {
			sum -= a.data[i*n+j] * x[j]
		}
		x[i] = sum / a.data[i*n+i]
	}
	if err = ValidateFinite(x); err != nil {
		return nil, matrixErrorf(opGaussSolve, err)
	}

	return x, nil
}
