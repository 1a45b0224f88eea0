package matrix_test

import (
	"testing"

	"github.com/katalvlaran/graphstatics/matrix"
	"github.com/stretchr/testify/require"
)

// TestRREFPivotColumns checks pivots, rank and the free columns of a
// rank-deficient wide matrix.
func TestRREFPivotColumns(t *testing.T) {
	// column 1 = 2·column 0, column 3 = column 0 + column 2
	a := mustDense(t, [][]float64{
		{1, 2, 0, 1},
		{0, 0, 1, 1},
		{1, 2, 1, 2},
	})
	r, piv, err := matrix.RREF(a)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, piv)
	require.Equal(t, "[1, 2, 0, 1]\n[0, 0, 1, 1]\n[0, 0, 0, 0]\n", r.String())

	rank, err := matrix.Rank(a)
	require.NoError(t, err)
	require.Equal(t, 2, rank)

	free, err := matrix.NonPivots(a)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, free)

	k, err := matrix.Nullity(a)
	require.NoError(t, err)
	require.Equal(t, 2, k)
}

// TestRREFTolerance shows that a tiny column is treated as zero only under
// an explicit tolerance.
func TestRREFTolerance(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 0}, {0, 1e-9}})
	rank, err := matrix.Rank(a)
	require.NoError(t, err)
	require.Equal(t, 2, rank)

	rank, err = matrix.Rank(a, matrix.WithRankTol(1e-6))
	require.NoError(t, err)
	require.Equal(t, 1, rank)

	require.Panics(t, func() { matrix.WithRankTol(-1) })
}

// TestRREFEmpty handles matrices without rows.
func TestRREFEmpty(t *testing.T) {
	z, err := matrix.NewZeros(0, 3)
	require.NoError(t, err)
	free, err := matrix.NonPivots(z)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, free)
}
