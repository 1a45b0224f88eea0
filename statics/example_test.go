package statics_test

import (
	"fmt"

	"github.com/katalvlaran/graphstatics/diagram"
	"github.com/katalvlaran/graphstatics/statics"
)

// ExampleIdentifyDOF classifies a triangle held by a single pin.
func ExampleIdentifyDOF() {
	form := diagram.NewForm()
	_ = form.AddVertex("A", 0, 0)
	_ = form.AddVertex("B", 1, 0)
	_ = form.AddVertex("C", 0, 1)
	_ = form.SetFixed("A", true)
	_, _ = form.AddEdge("A", "B")
	_, _ = form.AddEdge("B", "C")
	_, _ = form.AddEdge("C", "A")

	dof, err := statics.IdentifyDOF(form)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("k=%d m=%d: %s\n", dof.K, dof.M, dof.Status())
	// Output:
	// k=0 m=1: unstable
}

// ExampleSigned shows the sign rule on both sides of 90°.
func ExampleSigned() {
	for _, v := range [][2]float64{{1, 0}, {0, 1}, {-1, 0}} {
		a := statics.AngleDeg([2]float64{1, 0}, v)
		fmt.Printf("%.0f° → %+.0f\n", a, statics.Signed(a, 1))
	}
	// Output:
	// 0° → +1
	// 90° → -1
	// 180° → -1
}
