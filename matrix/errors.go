// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation
// tag via fmt.Errorf("%s: %w")); callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. a right-hand side whose length differs from the row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when elimination finds no usable pivot in a column.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrZeroDiagonal is returned by iterative kernels when a diagonal entry is
	// zero, which makes the Jacobi-style update undefined.
	ErrZeroDiagonal = errors.New("matrix: zero on diagonal")

	// ErrNotConverged is returned when an iterative kernel exhausts its
	// iteration budget without meeting the tolerance.
	ErrNotConverged = errors.New("matrix: iteration did not converge")

	// ErrBadIterOptions reports a nonsensical tolerance, iteration cap or
	// relaxation factor.
	ErrBadIterOptions = errors.New("matrix: invalid iteration options")
)
