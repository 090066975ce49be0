// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lineq/matrix"
)

// Sentinel errors. The numeric ones alias the matrix kernels' sentinels so
// errors.Is works against either package.
var (
	// ErrEmptySystem is returned for n <= 0.
	ErrEmptySystem = errors.New("solver: empty system")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrUnknownMethod is returned by ParseMethod.
	ErrUnknownMethod = errors.New("solver: unknown method")

	ErrSingular     = matrix.ErrSingular
	ErrZeroDiagonal = matrix.ErrZeroDiagonal
	ErrNotConverged = matrix.ErrNotConverged
)

// Method selects the numeric algorithm.
type Method int

const (
	MethodGauss Method = iota
	MethodJacobi
	MethodGaussSeidel
	MethodSOR
)

var methodNames = [...]string{
	MethodGauss:       "gauss",
	MethodJacobi:      "jacobi",
	MethodGaussSeidel: "gauss-seidel",
	MethodSOR:         "sor",
}

// String returns the lower-case method name accepted by ParseMethod.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod maps a case-insensitive name to a Method.
// "gaussseidel" and "gs" are accepted for MethodGaussSeidel.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "gauss", "direct":
		return MethodGauss, nil
	case "jacobi":
		return MethodJacobi, nil
	case "gauss-seidel", "gaussseidel", "gs":
		return MethodGaussSeidel, nil
	case "sor":
		return MethodSOR, nil
	}

	return MethodGauss, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// SolveError reports which method failed and why.
type SolveError struct {
	Method Method
	Err    error
}

// Error returns "solver: <method>: <cause>".
func (e *SolveError) Error() string {
	return fmt.Sprintf("solver: %s: %v", e.Method, e.Err)
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *SolveError) Unwrap() error { return e.Err }

// Result is the outcome of SolveDetailed.
type Result struct {
	X          []float64
	Method     Method
	Iterations int     // 0 for MethodGauss
	Residual   float64 // ‖A·x − b‖∞
}

// Options holds solver parameters. Zero numeric values mean "use the
// matrix package default".
type Options struct {
	Method        Method
	Tolerance     float64
	MaxIterations int
	Omega         float64
	Initial       []float64

	// internal error recorded during option parsing
	err error
}

// Option configures Solve via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// DefaultOptions returns direct elimination with the matrix defaults.
func DefaultOptions() Options {
	return Options{
		Method:        MethodGauss,
		Tolerance:     matrix.DefaultTolerance,
		MaxIterations: matrix.DefaultMaxIterations,
		Omega:         matrix.DefaultOmega,
	}
}

// WithMethod selects the algorithm.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if m < MethodGauss || m > MethodSOR {
			o.err = fmt.Errorf("%w: method %d", ErrOptionViolation, int(m))
			return
		}
		o.Method = m
	}
}

// WithTolerance sets the convergence threshold of the iterative methods.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: tolerance must be > 0 (%v)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations caps the iterative methods.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations must be > 0 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithOmega sets the SOR relaxation factor, 0 < ω < 2.
func WithOmega(w float64) Option {
	return func(o *Options) {
		if !(w > 0 && w < 2) {
			o.err = fmt.Errorf("%w: omega must lie in (0, 2) (%v)", ErrOptionViolation, w)
			return
		}
		o.Omega = w
	}
}

// WithInitialGuess seeds the iterative methods; its length must equal n.
func WithInitialGuess(x []float64) Option {
	return func(o *Options) {
		o.Initial = append([]float64(nil), x...)
	}
}
