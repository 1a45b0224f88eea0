package diagram_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstatics/diagram"
)

func TestForceLinks(t *testing.T) {
	form := triangle(t)
	force := diagram.NewForce()
	require.NoError(t, force.AddVertex("p", 0, 0))
	require.NoError(t, force.AddVertex("r", 1, 0))
	eid, err := force.AddEdge("p", "r")
	require.NoError(t, err)

	require.ErrorIs(t, force.SetAnchor("zz"), diagram.ErrUnknownVertex)
	require.NoError(t, force.SetAnchor("p"))
	require.Equal(t, "p", force.Anchor())

	require.ErrorIs(t, force.Link("ab", "p", "zz"), diagram.ErrBadLink)
	require.ErrorIs(t, force.Link("", "p", "r"), diagram.ErrBadLink)
	require.NoError(t, force.Link("bc", "r", "p"))

	corr, err := force.OrderedEdges(form)
	require.NoError(t, err)
	require.Len(t, corr, 3)
	require.False(t, corr[0].Linked())
	require.True(t, corr[1].Linked())
	require.Equal(t, diagram.Correspondence{
		Form: form.Edges()[1], FormIndex: 1, U: "r", V: "p", ForceEdge: eid,
	}, corr[1])

	require.NoError(t, force.Link("zz", "p", "r"))
	_, err = force.OrderedEdges(form)
	require.ErrorIs(t, err, diagram.ErrBadLink)
	force.Unlink("zz")
	require.Equal(t, 1, force.LinkCount())

	c := force.Clone()
	c.Unlink("bc")
	_, ok := force.LinkOf("bc")
	require.True(t, ok)
}

func TestForceEdgeClaimedOnce(t *testing.T) {
	form := triangle(t)
	force := diagram.NewForce()
	require.NoError(t, force.AddVertex("p", 0, 0))
	require.NoError(t, force.AddVertex("r", 1, 0))
	require.NoError(t, force.AddVertex("s", 0, 1))
	_, err := force.AddEdge("p", "r")
	require.NoError(t, err)
	_, err = force.AddEdge("r", "s")
	require.NoError(t, err)

	require.NoError(t, force.Link("ab", "p", "r"))
	require.ErrorIs(t, force.Link("bc", "r", "p"), diagram.ErrBadLink)
	require.ErrorIs(t, force.Link("bc", "p", "r"), diagram.ErrBadLink)
	_, ok := force.LinkOf("bc")
	require.False(t, ok)

	// relinking the same form edge is a move, not a second claim
	require.NoError(t, force.Link("ab", "r", "p"))
	require.NoError(t, force.Link("ab", "r", "s"))
	require.NoError(t, force.Link("bc", "p", "r"))

	// a document naming one force edge twice is refused
	doc := force.Data()
	doc.Links = append(doc.Links, diagram.LinkData{FormEdge: "ca", U: "s", V: "r"})
	_, err = diagram.ForceFromData(doc)
	require.ErrorIs(t, err, diagram.ErrBadData)
	_, err = force.OrderedEdges(form)
	require.NoError(t, err)
}

func TestForceLinksConcurrent(t *testing.T) {
	force := diagram.NewForce()
	const n = 32
	for i := 0; i <= n; i++ {
		require.NoError(t, force.AddVertex(fmt.Sprintf("v%d", i), float64(i), 0))
	}
	for i := 0; i < n; i++ {
		_, err := force.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			u, v := fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1)
			if err := force.Link(fmt.Sprintf("e%d", i), u, v); err != nil {
				t.Error(err)
			}
		}(i)
		go func(i int) {
			defer wg.Done()
			_, _ = force.LinkOf(fmt.Sprintf("e%d", i))
			_ = force.LinkCount()
			_ = force.Data()
			_ = force.Clone()
		}(i)
	}
	wg.Wait()
	require.Equal(t, n, force.LinkCount())
}
