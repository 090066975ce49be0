// SPDX-License-Identifier: MIT

package sparse

import "errors"

// Key addresses one cell of a sparse Matrix.
type Key struct {
	Row int // equation row
	Col int // variable column
}

// ErrNegativeIndex is returned by Dense/Slice when asked for a negative shape.
var ErrNegativeIndex = errors.New("sparse: negative index")

// ErrShapeTooSmall is returned when a materialization shape cannot hold every
// stored entry.
var ErrShapeTooSmall = errors.New("sparse: shape smaller than stored entries")
