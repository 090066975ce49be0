// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lineq/matrix"
)

// Matrix is a sparse float64 matrix keyed by (row, col).
// The zero value is ready to use.
type Matrix struct {
	cells  map[Key]float64
	maxRow int // 1 + largest row index ever stored, for Rows()
	maxCol int // 1 + largest column index ever stored, for Cols()
}

// NewMatrix returns an empty sparse matrix.
func NewMatrix() *Matrix {
	return &Matrix{cells: make(map[Key]float64)}
}

// Get returns the value at (row, col); absent keys read as 0.
func (m *Matrix) Get(row, col int) float64 {
	return m.cells[Key{Row: row, Col: col}]
}

// Set stores v at (row, col). Storing 0 erases the entry.
func (m *Matrix) Set(row, col int, v float64) {
	k := Key{Row: row, Col: col}
	if v == 0 {
		delete(m.cells, k)
		return
	}
	if m.cells == nil {
		m.cells = make(map[Key]float64)
	}
	m.cells[k] = v
	if row+1 > m.maxRow {
		m.maxRow = row + 1
	}
	if col+1 > m.maxCol {
		m.maxCol = col + 1
	}
}

// Add accumulates v into (row, col). A sum of exactly 0 erases the entry.
func (m *Matrix) Add(row, col int, v float64) {
	m.Set(row, col, m.Get(row, col)+v)
}

// Len returns the number of stored (non-zero) entries.
func (m *Matrix) Len() int { return len(m.cells) }

// Rows returns one past the largest row index ever written with a non-zero
// value, or 0 for a matrix that was never written.
func (m *Matrix) Rows() int { return m.maxRow }

// Cols returns one past the largest column index ever written.
func (m *Matrix) Cols() int { return m.maxCol }

// Keys returns the stored keys in row-major order.
func (m *Matrix) Keys() []Key {
	keys := make([]Key, 0, len(m.cells))
	for k := range m.cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Row != keys[j].Row {
			return keys[i].Row < keys[j].Row
		}
		return keys[i].Col < keys[j].Col
	})

	return keys
}

// Row returns a copy of the non-zero entries of one row, keyed by column.
func (m *Matrix) Row(row int) map[int]float64 {
	out := make(map[int]float64)
	for k, v := range m.cells {
		if k.Row == row {
			out[k.Col] = v
		}
	}

	return out
}

// Clear removes every entry and forgets the observed shape.
func (m *Matrix) Clear() {
	m.cells = make(map[Key]float64)
	m.maxRow, m.maxCol = 0, 0
}

// Dense materializes the matrix as a rows×cols matrix.Dense.
// Entries outside the requested shape are an error, never silently dropped.
func (m *Matrix) Dense(rows, cols int) (*matrix.Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Dense(%d,%d): %w", rows, cols, ErrNegativeIndex)
	}
	d, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Dense(%d,%d): %w", rows, cols, err)
	}
	for k, v := range m.cells {
		if k.Row < 0 || k.Row >= rows || k.Col < 0 || k.Col >= cols {
			return nil, fmt.Errorf("Dense(%d,%d): entry (%d,%d): %w", rows, cols, k.Row, k.Col, ErrShapeTooSmall)
		}
		if err = d.Set(k.Row, k.Col, v); err != nil {
			return nil, err
		}
	}

	return d, nil
}
