package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphstatics/builder"
	"github.com/katalvlaran/graphstatics/statics"
)

// ExampleTruss builds a four-panel Pratt truss and counts its degrees of
// freedom.
func ExampleTruss() {
	f, err := builder.BuildForm(nil, []builder.BuilderOption{builder.WithSpan(8)}, builder.Truss(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	k, m, err := statics.CountDOF(f)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("vertices=%d edges=%d k=%d m=%d\n", len(f.Keys()), len(f.Edges()), k, m)
	// Output: vertices=13 edges=18 k=3 m=1
}
