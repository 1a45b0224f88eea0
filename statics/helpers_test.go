package statics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstatics/diagram"
)

type vtx struct {
	key   string
	x, y  float64
	fixed bool
}

type edg struct{ id, u, v string }

func buildForm(t *testing.T, vs []vtx, es []edg) *diagram.FormDiagram {
	t.Helper()
	f := diagram.NewForm(diagram.WithName(t.Name()))
	for _, v := range vs {
		require.NoError(t, f.AddVertex(v.key, v.x, v.y))
		if v.fixed {
			require.NoError(t, f.SetFixed(v.key, true))
		}
	}
	for _, e := range es {
		require.NoError(t, f.AddEdgeWithID(e.id, e.u, e.v))
	}

	return f
}

// loadedTriangle is a three-bar truss with vertical reactions at A and B and
// a vertical load at C, all as leaf edges.
func loadedTriangle(t *testing.T) *diagram.FormDiagram {
	return buildForm(t,
		[]vtx{
			{key: "A", x: 0, y: 0}, {key: "B", x: 2, y: 0}, {key: "C", x: 1, y: 1},
			{key: "LA", x: 0, y: -1}, {key: "LB", x: 2, y: -1}, {key: "LC", x: 1, y: 2},
		},
		[]edg{
			{"ab", "A", "B"}, {"bc", "B", "C"}, {"ca", "C", "A"},
			{"ra", "A", "LA"}, {"rb", "B", "LB"}, {"load", "C", "LC"},
		})
}

// starForce returns a force diagram whose edges all start at o and point to
// the given vectors, linked to the given form edges.
func starForce(t *testing.T, links map[string][2]float64, order []string) *diagram.ForceDiagram {
	t.Helper()
	f := diagram.NewForce()
	require.NoError(t, f.AddVertex("o", 0, 0))
	for _, id := range order {
		p := links[id]
		key := "p_" + id
		require.NoError(t, f.AddVertex(key, p[0], p[1]))
		_, err := f.AddEdge("o", key)
		require.NoError(t, err)
		require.NoError(t, f.Link(id, "o", key))
	}
	require.NoError(t, f.SetAnchor("o"))

	return f
}

func position(t *testing.T, d interface {
	Position(string) (float64, float64, error)
}, key string) []float64 {
	t.Helper()
	x, y, err := d.Position(key)
	require.NoError(t, err)

	return []float64{x, y}
}
