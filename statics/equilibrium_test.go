package statics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstatics/statics"
)

func TestConnectivityErrors(t *testing.T) {
	cases := []struct {
		name  string
		edges [][2]int
		n     int
	}{
		{"no vertices", [][2]int{{0, 1}}, 0},
		{"out of range", [][2]int{{0, 3}}, 3},
		{"negative", [][2]int{{-1, 0}}, 2},
		{"loop", [][2]int{{1, 1}}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := statics.Connectivity(tc.edges, tc.n)
			require.ErrorIs(t, err, statics.ErrDimension)
		})
	}
}

func TestEquilibriumMatrixTriangle(t *testing.T) {
	// A(0,0) B(1,0) C(0,1); edges A→B, B→C, C→A; B and C free.
	c, err := statics.Connectivity([][2]int{{0, 1}, {1, 2}, {2, 0}}, 3)
	require.NoError(t, err)
	xy := [][2]float64{{0, 0}, {1, 0}, {0, 1}}

	e, err := statics.EquilibriumMatrix(c, xy, []int{1, 2})
	require.NoError(t, err)
	require.Equal(t, 4, e.Rows())
	require.Equal(t, 3, e.Cols())

	want := [][]float64{
		{1, 1, 0},  // x_B
		{0, -1, 0}, // x_C
		{0, -1, 0}, // y_B
		{0, 1, 1},  // y_C
	}
	for i, row := range want {
		got, err := e.Row(i)
		require.NoError(t, err)
		require.Equal(t, row, got, "row %d", i)
	}

	l, err := statics.EdgeLengths(c, xy)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1.4142135623730951, 1}, l, 1e-15)
}

func TestEquilibriumMatrixValidation(t *testing.T) {
	c, err := statics.Connectivity([][2]int{{0, 1}}, 2)
	require.NoError(t, err)

	_, err = statics.EquilibriumMatrix(c, [][2]float64{{0, 0}}, []int{0})
	require.ErrorIs(t, err, statics.ErrDimension)

	xy := [][2]float64{{0, 0}, {1, 0}}
	_, err = statics.EquilibriumMatrix(c, xy, []int{2})
	require.ErrorIs(t, err, statics.ErrDimension)
	_, err = statics.EquilibriumMatrix(c, xy, []int{1, 1})
	require.ErrorIs(t, err, statics.ErrDimension)

	e, err := statics.EquilibriumMatrix(c, xy, nil)
	require.NoError(t, err)
	require.Equal(t, 0, e.Rows())
	require.Equal(t, 1, e.Cols())
}
