package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/graphstatics/core"
	"github.com/stretchr/testify/require"
)

// triangle builds A(0,0) B(1,0) C(0,1) with edges A→B, B→C, C→A.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", 0, 0))
	require.NoError(t, g.AddVertex("B", 1, 0))
	require.NoError(t, g.AddVertex("C", 0, 1))
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

func TestAddVertexValidation(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex("", 0, 0), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddVertex("A", math.NaN(), 0), core.ErrBadPosition)
	require.NoError(t, g.AddVertex("A", 1, 2))
	require.ErrorIs(t, g.AddVertex("A", 3, 4), core.ErrDuplicateVertex)

	x, y, err := g.Position("A")
	require.NoError(t, err)
	require.Equal(t, [2]float64{1, 2}, [2]float64{x, y})

	require.NoError(t, g.SetPosition("A", 5, 6))
	v, err := g.Vertex("A")
	require.NoError(t, err)
	require.Equal(t, core.Vertex{ID: "A", X: 5, Y: 6}, v)
	require.ErrorIs(t, g.SetPosition("Z", 0, 0), core.ErrVertexNotFound)
}

func TestAddEdgeRules(t *testing.T) {
	g := triangle(t)
	_, err := g.AddEdge("A", "A")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("A", "Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AddEdge("B", "A") // reverse orientation of an existing pair
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	require.NoError(t, g.AddVertex("D", 2, 2))
	require.NoError(t, g.AddEdgeWithID("e1x", "D", "A"))
	require.ErrorIs(t, g.AddEdgeWithID("e1x", "D", "B"), core.ErrDuplicateEdge)

	e, err := g.EdgeBetween("A", "D")
	require.NoError(t, err)
	require.Equal(t, core.Edge{ID: "e1x", From: "D", To: "A"}, e)
	require.Equal(t, "D", e.Other("A"))
}

func TestGeneratedIDsSkipExplicitOnes(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(id, 0, 0))
	}
	require.NoError(t, g.AddEdgeWithID("e1", "a", "b"))
	eid, err := g.AddEdge("b", "c")
	require.NoError(t, err)
	require.Equal(t, "e2", eid)
}

func TestInsertionOrderAndNeighbors(t *testing.T) {
	g := triangle(t)
	require.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	edges := g.Edges()
	require.Equal(t, []string{"e1", "e2", "e3"}, []string{edges[0].ID, edges[1].ID, edges[2].ID})

	nbrs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C"}, nbrs)

	d, err := g.Degree("B")
	require.NoError(t, err)
	require.Equal(t, 2, d)
	require.Empty(t, g.Leaves())
}

func TestRemoveVertexDropsIncidentEdges(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.RemoveVertex("A"))
	require.Equal(t, 1, g.EdgeCount())
	require.False(t, g.HasEdge("A", "B"))
	require.Equal(t, []string{"B", "C"}, g.Leaves())
	require.ErrorIs(t, g.RemoveVertex("A"), core.ErrVertexNotFound)

	require.NoError(t, g.RemoveEdge("e2"))
	require.ErrorIs(t, g.RemoveEdge("e2"), core.ErrEdgeNotFound)
}

func TestCloneIsDeep(t *testing.T) {
	g := triangle(t)
	c := g.Clone()
	require.NoError(t, c.SetPosition("A", 9, 9))
	x, _, _ := g.Position("A")
	require.Equal(t, 0.0, x)

	require.NoError(t, c.AddVertex("D", 0, 0))
	eid, err := c.AddEdge("D", "A")
	require.NoError(t, err)
	require.Equal(t, "e4", eid) // sequence carried over
	require.Equal(t, 3, g.EdgeCount())

	c.Clear()
	require.Equal(t, 0, c.VertexCount())
}
