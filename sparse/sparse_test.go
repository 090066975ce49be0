package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineq/matrix"
	"github.com/katalvlaran/lineq/sparse"
)

func TestMatrix_ZeroValueReadsZero(t *testing.T) {
	var m sparse.Matrix
	require.Zero(t, m.Get(3, 7))
	require.Zero(t, m.Len())
	require.Zero(t, m.Rows())

	m.Set(1, 2, 5) // zero value must accept writes
	require.Equal(t, 5.0, m.Get(1, 2))
}

func TestMatrix_SetZeroErases(t *testing.T) {
	m := sparse.NewMatrix()
	m.Set(0, 0, 3)
	require.Equal(t, 1, m.Len())

	m.Set(0, 0, 0)
	require.Zero(t, m.Len())
	require.Zero(t, m.Get(0, 0))
}

func TestMatrix_AddAccumulatesAndErasesOnCancel(t *testing.T) {
	m := sparse.NewMatrix()
	m.Add(2, 1, 4)
	m.Add(2, 1, 1.5)
	require.Equal(t, 5.5, m.Get(2, 1))

	m.Add(2, 1, -5.5)
	require.Zero(t, m.Len(), "an exact cancellation keeps the matrix sparse")
}

func TestMatrix_ShapeGrowsIndependently(t *testing.T) {
	m := sparse.NewMatrix()
	m.Set(0, 4, 1)
	m.Set(6, 0, 1)
	require.Equal(t, 7, m.Rows())
	require.Equal(t, 5, m.Cols())
}

func TestMatrix_KeysRowMajor(t *testing.T) {
	m := sparse.NewMatrix()
	m.Set(1, 0, 1)
	m.Set(0, 2, 1)
	m.Set(0, 1, 1)

	require.Equal(t, []sparse.Key{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 0}}, m.Keys())
	require.Equal(t, map[int]float64{1: 1, 2: 1}, m.Row(0))
}

func TestMatrix_Dense(t *testing.T) {
	m := sparse.NewMatrix()
	m.Set(0, 1, 2)
	m.Set(1, 0, -3)

	d, err := m.Dense(2, 2)
	require.NoError(t, err)
	v, _ := d.At(1, 0)
	require.Equal(t, -3.0, v)
	v, _ = d.At(0, 0)
	require.Zero(t, v)

	_, err = m.Dense(1, 2)
	require.ErrorIs(t, err, sparse.ErrShapeTooSmall)

	_, err = m.Dense(-1, 2)
	require.ErrorIs(t, err, sparse.ErrNegativeIndex)

	_, err = sparse.NewMatrix().Dense(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestMatrix_Clear(t *testing.T) {
	m := sparse.NewMatrix()
	m.Set(3, 3, 1)
	m.Clear()
	require.Zero(t, m.Len())
	require.Zero(t, m.Rows())
	require.Zero(t, m.Cols())
}

func TestVector_Basics(t *testing.T) {
	var v sparse.Vector
	require.Zero(t, v.Get(9))

	v.Add(2, 11)
	v.Add(0, -1)
	v.Add(2, -11)
	require.Equal(t, 1, v.Len())
	require.Equal(t, []int{0}, v.Keys())
	require.Equal(t, 3, v.Rows())

	s, err := v.Slice(3)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 0, 0}, s)

	v.Set(5, 1)
	_, err = v.Slice(3)
	require.ErrorIs(t, err, sparse.ErrShapeTooSmall)

	v.Clear()
	require.Zero(t, v.Len())
}
