// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write view the solve kernels accept. Kernels copy their
// input into a private *Dense before working, so any implementation with
// bounds-checked accessors will do; *Dense itself takes a fast path.
type Matrix interface {
	// Rows and Cols report the shape.
	Rows() int
	Cols() int

	// At reads (row, col); out-of-range indices yield ErrOutOfRange.
	At(row, col int) (float64, error)

	// Set writes (row, col); non-finite values yield ErrNaNInf.
	Set(row, col int, v float64) error

	// Clone returns an independent copy.
	Clone() Matrix
}
