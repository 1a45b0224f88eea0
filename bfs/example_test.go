package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphstatics/bfs"
	"github.com/katalvlaran/graphstatics/core"
)

// ExampleReachable reports the vertices cut off from an anchor.
func ExampleReachable() {
	g := core.NewGraph()
	_ = g.AddVertex("a", 0, 0)
	_ = g.AddVertex("b", 1, 0)
	_ = g.AddVertex("c", 2, 0)
	_, _ = g.AddEdge("a", "b")

	unreached, _ := bfs.Reachable(g, "a")
	fmt.Println("unreached:", unreached)
	// Output:
	// unreached: [c]
}
