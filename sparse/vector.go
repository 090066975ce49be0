// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"sort"
)

// Vector is a sparse float64 vector keyed by row.
// The zero value is ready to use.
type Vector struct {
	cells  map[int]float64
	maxRow int
}

// NewVector returns an empty sparse vector.
func NewVector() *Vector {
	return &Vector{cells: make(map[int]float64)}
}

// Get returns the value at row; absent rows read as 0.
func (v *Vector) Get(row int) float64 { return v.cells[row] }

// Set stores x at row. Storing 0 erases the entry.
func (v *Vector) Set(row int, x float64) {
	if x == 0 {
		delete(v.cells, row)
		return
	}
	if v.cells == nil {
		v.cells = make(map[int]float64)
	}
	v.cells[row] = x
	if row+1 > v.maxRow {
		v.maxRow = row + 1
	}
}

// Add accumulates x into row. A sum of exactly 0 erases the entry.
func (v *Vector) Add(row int, x float64) {
	v.Set(row, v.Get(row)+x)
}

// Len returns the number of stored (non-zero) entries.
func (v *Vector) Len() int { return len(v.cells) }

// Rows returns one past the largest row ever written with a non-zero value.
func (v *Vector) Rows() int { return v.maxRow }

// Keys returns the stored rows in ascending order.
func (v *Vector) Keys() []int {
	keys := make([]int, 0, len(v.cells))
	for k := range v.cells {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

// Clear removes every entry.
func (v *Vector) Clear() {
	v.cells = make(map[int]float64)
	v.maxRow = 0
}

// Slice materializes the vector as a dense []float64 of length n.
func (v *Vector) Slice(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("Slice(%d): %w", n, ErrNegativeIndex)
	}
	out := make([]float64, n)
	for row, x := range v.cells {
		if row < 0 || row >= n {
			return nil, fmt.Errorf("Slice(%d): entry %d: %w", n, row, ErrShapeTooSmall)
		}
		out[row] = x
	}

	return out, nil
}
