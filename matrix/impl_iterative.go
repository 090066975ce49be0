// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Defaults for the stationary iterative kernels.
const (
	DefaultTolerance     = 1e-10
	DefaultMaxIterations = 1000
	DefaultOmega         = 1.0
)

// IterOptions configures Jacobi, GaussSeidel and SOR.
// Zero values fall back to the package defaults; Omega is only read by SOR.
type IterOptions struct {
	Tolerance     float64   // stop when step estimate AND residual are below this
	MaxIterations int       // hard iteration cap
	Omega         float64   // SOR relaxation factor, 0 < omega < 2
	Initial       []float64 // initial guess; nil means the zero vector
}

// IterResult reports the state of an iterative kernel on return.
// On ErrNotConverged it carries the last iterate so callers can inspect it.
type IterResult struct {
	X          []float64
	Iterations int
	Estimate   float64 // max |x_k - x_{k-1}| of the final sweep
	Residual   float64 // max |A x_k - b|
}

// normalize fills defaults and rejects nonsensical values.
func (o IterOptions) normalize(n int, withOmega bool) (IterOptions, error) {
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Omega == 0 {
		o.Omega = DefaultOmega
	}
	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) {
		return o, fmt.Errorf("tolerance %v: %w", o.Tolerance, ErrBadIterOptions)
	}
	if o.MaxIterations < 0 {
		return o, fmt.Errorf("max iterations %d: %w", o.MaxIterations, ErrBadIterOptions)
	}
	if withOmega && (o.Omega <= 0 || o.Omega >= 2) {
		return o, fmt.Errorf("omega %v: %w", o.Omega, ErrBadIterOptions)
	}
	if o.Initial != nil {
		if err := ValidateVecLen(o.Initial, n); err != nil {
			return o, err
		}
		if err := ValidateFinite(o.Initial); err != nil {
			return o, err
		}
	}

	return o, nil
}

// sweepFunc performs one in-place update of x (prev holds the previous
// iterate) and is the only thing that differs between the three kernels.
type sweepFunc func(a *Dense, b, x, prev []float64, omega float64)

// jacobiSweep: every component is computed from the previous iterate.
func jacobiSweep(a *Dense, b, x, prev []float64, _ float64) {
	n := a.r
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for j = 0; j < n; j++ {
			if j != i {
				sum += a.data[i*n+j] * prev[j]
			}
		}
		x[i] = (b[i] - sum) / a.data[i*n+i]
	}
}

// relaxedSweep is Gauss–Seidel for omega == 1 and SOR otherwise: components
// are updated in place, so later rows already see the new values.
func relaxedSweep(a *Dense, b, x, _ []float64, omega float64) {
	n := a.r
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for j = 0; j < n; j++ {
			if j != i {
				sum += a.data[i*n+j] * x[j]
			}
		}
		x[i] = (1-omega)*x[i] + omega*(b[i]-sum)/a.data[i*n+i]
	}
}

// iterate is the shared driver loop for the stationary kernels.
func iterate(tag string, m Matrix, b []float64, opts IterOptions, withOmega bool, sweep sweepFunc) (*IterResult, error) {
	if err := validateSystem(m, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	n := a.r
	if opts, err = opts.normalize(n, withOmega); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	var i int
	for i = 0; i < n; i++ {
		if a.data[i*n+i] == 0 {
			return nil, matrixErrorf(tag, fmt.Errorf("row %d: %w", i, ErrZeroDiagonal))
		}
	}

	x := make([]float64, n)
	if opts.Initial != nil {
		copy(x, opts.Initial)
	}
	prev := make([]float64, n)
	res := &IterResult{X: x}

	for res.Iterations = 1; res.Iterations <= opts.MaxIterations; res.Iterations++ {
		copy(prev, x)
		sweep(a, b, x, prev, opts.Omega)
		if err = ValidateFinite(x); err != nil {
			// Diverged past float64 range; report as non-convergence.
			return res, matrixErrorf(tag, fmt.Errorf("iteration %d: %w", res.Iterations, ErrNotConverged))
		}
		res.Estimate = NormInfDiff(x, prev)
		if res.Residual, err = Residual(a, x, b); err != nil {
			return nil, matrixErrorf(tag, err)
		}
		if res.Estimate < opts.Tolerance && res.Residual < opts.Tolerance {
			return res, nil
		}
	}
	res.Iterations = opts.MaxIterations

	return res, matrixErrorf(tag, fmt.Errorf("after %d iterations: %w", opts.MaxIterations, ErrNotConverged))
}

// Jacobi solves m*x = b with the Jacobi method.
// Converges for strictly diagonally dominant systems.
func Jacobi(m Matrix, b []float64, opts IterOptions) (*IterResult, error) {
	return iterate(opJacobi, m, b, opts, false, jacobiSweep)
}

// GaussSeidel solves m*x = b with the Gauss–Seidel method (Omega ignored).
func GaussSeidel(m Matrix, b []float64, opts IterOptions) (*IterResult, error) {
	opts.Omega = 1
	return iterate(opGaussSeidel, m, b, opts, false, relaxedSweep)
}

// SOR solves m*x = b with successive over-relaxation; opts.Omega must lie in (0, 2).
func SOR(m Matrix, b []float64, opts IterOptions) (*IterResult, error) {
	return iterate(opSOR, m, b, opts, true, relaxedSweep)
}
