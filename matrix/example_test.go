package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/graphstatics/matrix"
)

// ExampleNonPivots finds the free columns of an equilibrium-like matrix.
func ExampleNonPivots() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{1, -1, 0},
		{0, 1, -1},
	})
	free, _ := matrix.NonPivots(a)
	fmt.Println("free columns:", free)
	// Output:
	// free columns: [2]
}

// ExampleNewConnectivity prints the signed connectivity of a triangle.
func ExampleNewConnectivity() {
	c, _ := matrix.NewConnectivity(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	fmt.Print(c.ToDense())
	// Output:
	// [-1, 1, 0]
	// [0, -1, 1]
	// [1, 0, -1]
}
