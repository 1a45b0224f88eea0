package matrix_test

import (
	"testing"

	"github.com/katalvlaran/graphstatics/matrix"
	"github.com/stretchr/testify/require"
)

// TestTripletSumsDuplicates verifies compression semantics.
func TestTripletSumsDuplicates(t *testing.T) {
	tr, err := matrix.NewTriplet(2, 3, 4)
	require.NoError(t, err)
	require.NoError(t, tr.Put(0, 2, 1))
	require.NoError(t, tr.Put(0, 0, 5))
	require.NoError(t, tr.Put(0, 2, 2))
	require.NoError(t, tr.Put(1, 1, 3))
	require.NoError(t, tr.Put(1, 1, -3)) // cancels out
	require.ErrorIs(t, tr.Put(2, 0, 1), matrix.ErrOutOfRange)

	s := tr.ToCSR()
	require.Equal(t, 2, s.NNZ())
	require.Equal(t, "[5, 0, 3]\n[0, 0, 0]\n", s.ToDense().String())
	require.ErrorIs(t, s.Set(0, 0, 1), matrix.ErrMatrixNotImplemented)
}

// TestConnectivityProducts checks C·x, Cᵀ·y and the Gram matrix of a path.
func TestConnectivityProducts(t *testing.T) {
	// path 0 → 1 → 2
	c, err := matrix.NewConnectivity(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)

	dx, err := c.MulVec([]float64{0, 2, 5})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, dx)

	y, err := c.TMulVec([]float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 0, 1}, y)

	require.Equal(t, "[1, -1, 0]\n[-1, 2, -1]\n[0, -1, 1]\n", c.Gram().ToDense().String())
	require.Equal(t, "[-1, 0]\n[1, -1]\n[0, 1]\n", c.Transpose().ToDense().String())

	sub, err := c.Gram().Induced([]int{1, 2}, []int{1, 2})
	require.NoError(t, err)
	require.Equal(t, "[2, -1]\n[-1, 1]\n", sub.ToDense().String())

	_, err = matrix.NewConnectivity(2, [][2]int{{1, 1}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
