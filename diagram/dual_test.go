package diagram_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstatics/diagram"
)

func TestDualOfLoadedTriangle(t *testing.T) {
	form := loaded(t)
	force, err := diagram.DualOf(form)
	require.NoError(t, err)

	// one inner face plus the outer face cut at three leaves
	require.Len(t, force.Keys(), 4)
	require.Equal(t, 6, force.Graph().EdgeCount())
	require.Equal(t, 6, force.LinkCount())
	require.Equal(t, "f0", force.Anchor())

	corr, err := force.OrderedEdges(form)
	require.NoError(t, err)
	for _, c := range corr {
		require.True(t, c.Linked(), c.Form.ID)
	}
	for _, k := range force.Keys() {
		require.Equal(t, 3, force.Degree(k), k)
	}
}

func TestDualOfOrientation(t *testing.T) {
	// every side of the counter-clockwise triangle has the inner face on its
	// left, and the inner face is traced first
	form := loaded(t)
	force, err := diagram.DualOf(form)
	require.NoError(t, err)

	outer := map[string]bool{}
	for _, id := range []string{"ab", "bc", "ca"} {
		p, ok := force.LinkOf(id)
		require.True(t, ok, id)
		require.Equal(t, "f0", p[0], id)
		require.NotEqual(t, "f0", p[1], id)
		outer[p[1]] = true
	}
	require.Len(t, outer, 3)

	// centroid (1, 1/3) turned by +90°
	x, y, err := force.Position("f0")
	require.NoError(t, err)
	require.InDelta(t, -1.0/3, x, 1e-15)
	require.InDelta(t, 1, y, 1e-15)
}

func TestDualOfRejects(t *testing.T) {
	t.Run("disconnected", func(t *testing.T) {
		f := triangle(t)
		require.NoError(t, f.AddVertex("Z", 9, 9))
		_, err := diagram.DualOf(f)
		require.ErrorIs(t, err, diagram.ErrNotPlanar)
	})
	t.Run("crossing", func(t *testing.T) {
		f := diagram.NewForm()
		for _, v := range []struct {
			k    string
			x, y float64
		}{{"a", 0, 0}, {"b", 1, 0}, {"c", 1, 1}, {"d", 0, 1}} {
			require.NoError(t, f.AddVertex(v.k, v.x, v.y))
		}
		for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}, {"a", "c"}, {"b", "d"}} {
			_, err := f.AddEdge(e[0], e[1])
			require.NoError(t, err)
		}
		_, err := diagram.DualOf(f)
		require.ErrorIs(t, err, diagram.ErrNotPlanar)
	})
	t.Run("bridge", func(t *testing.T) {
		f := triangle(t)
		for _, v := range []struct {
			k    string
			x, y float64
		}{{"D", 5, 0}, {"E", 6, 0}, {"F", 5, 1}} {
			require.NoError(t, f.AddVertex(v.k, v.x, v.y))
		}
		for _, e := range [][2]string{{"D", "E"}, {"E", "F"}, {"F", "D"}, {"C", "D"}} {
			_, err := f.AddEdge(e[0], e[1])
			require.NoError(t, err)
		}
		_, err := diagram.DualOf(f)
		require.ErrorIs(t, err, diagram.ErrNotPlanar)
	})
	t.Run("unloaded triangle", func(t *testing.T) {
		// all three sides separate the inner face from the outer one
		_, err := diagram.DualOf(triangle(t))
		require.ErrorIs(t, err, diagram.ErrNotPlanar)
	})
	t.Run("unloaded midpoint", func(t *testing.T) {
		// M splits ab into two bars between the same pair of faces
		f := diagram.NewForm()
		for _, v := range []struct {
			k    string
			x, y float64
		}{{"A", 0, 0}, {"M", 1, 0}, {"B", 2, 0}, {"C", 1, 1}, {"LA", 0, -1}, {"LB", 2, -1}, {"LC", 1, 2}} {
			require.NoError(t, f.AddVertex(v.k, v.x, v.y))
		}
		for _, e := range [][2]string{{"A", "M"}, {"M", "B"}, {"B", "C"}, {"C", "A"}, {"A", "LA"}, {"B", "LB"}, {"C", "LC"}} {
			_, err := f.AddEdge(e[0], e[1])
			require.NoError(t, err)
		}
		_, err := diagram.DualOf(f)
		require.ErrorIs(t, err, diagram.ErrNotPlanar)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := diagram.DualOf(diagram.NewForm())
		require.ErrorIs(t, err, diagram.ErrNotPlanar)
	})
}
