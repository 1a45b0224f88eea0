// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/graphstatics/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls produce unique
// IDs and a consistent adjacency.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	require.NoError(t, g.AddVertex("X", 0, 0))
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i), float64(i), 1))
	}

	var wg sync.WaitGroup
	wg.Add(num)
	errs := make(chan error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	d, err := g.Degree("X")
	require.NoError(t, err)
	require.Equal(t, num, d)
	require.Len(t, g.Leaves(), num)
}

// TestConcurrentReadersAndMovers mixes position writes with readers.
func TestConcurrentReadersAndMovers(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", 0, 0))
	require.NoError(t, g.AddVertex("B", 1, 0))
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(k int) {
			defer wg.Done()
			_ = g.SetPosition("A", float64(k), float64(k))
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_, _, _ = g.Position("A")
			_ = g.Clone()
		}()
	}
	wg.Wait()
	require.Equal(t, 1, g.EdgeCount())
}
