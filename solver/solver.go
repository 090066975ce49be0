// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/lineq/matrix"
	"github.com/katalvlaran/lineq/sparse"
)

// Solve returns x with A·x = b for the n×n system held in a and b.
func Solve(n int, a *sparse.Matrix, b *sparse.Vector, opts ...Option) ([]float64, error) {
	res, err := SolveDetailed(n, a, b, opts...)
	if err != nil {
		return nil, err
	}

	return res.X, nil
}

// SolveDetailed is Solve plus diagnostics. When an iterative method runs
// out of iterations the partial Result is returned together with the error.
func SolveDetailed(n int, a *sparse.Matrix, b *sparse.Vector, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	fail := func(err error) error { return &SolveError{Method: o.Method, Err: err} }
	if o.err != nil {
		return nil, fail(o.err)
	}
	if n <= 0 {
		return nil, fail(fmt.Errorf("n=%d: %w", n, ErrEmptySystem))
	}
	if a == nil || b == nil {
		return nil, fail(fmt.Errorf("nil operand: %w", matrix.ErrNilMatrix))
	}

	dense, err := a.Dense(n, n)
	if err != nil {
		return nil, fail(err)
	}
	rhs, err := b.Slice(n)
	if err != nil {
		return nil, fail(err)
	}

	if o.Method == MethodGauss {
		x, err := matrix.GaussSolve(dense, rhs)
		if err != nil {
			return nil, fail(err)
		}
		r, err := matrix.Residual(dense, x, rhs)
		if err != nil {
			return nil, fail(err)
		}
		return &Result{X: x, Method: o.Method, Residual: r}, nil
	}

	iter := matrix.IterOptions{
		Tolerance:     o.Tolerance,
		MaxIterations: o.MaxIterations,
		Omega:         o.Omega,
		Initial:       o.Initial,
	}
	var ir *matrix.IterResult
	switch o.Method {
	case MethodJacobi:
		ir, err = matrix.Jacobi(dense, rhs, iter)
	case MethodGaussSeidel:
		ir, err = matrix.GaussSeidel(dense, rhs, iter)
	default:
		ir, err = matrix.SOR(dense, rhs, iter)
	}
	if ir == nil {
		return nil, fail(err)
	}
	res := &Result{X: ir.X, Method: o.Method, Iterations: ir.Iterations, Residual: ir.Residual}
	if err != nil {
		return res, fail(err)
	}

	return res, nil
}
