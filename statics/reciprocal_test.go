package statics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstatics/diagram"
	"github.com/katalvlaran/graphstatics/statics"
)

func pinnedTriangle(t *testing.T) *diagram.FormDiagram {
	return buildForm(t,
		[]vtx{{key: "A", fixed: true}, {key: "B", x: 1}, {key: "C", y: 1}},
		[]edg{{"ab", "A", "B"}, {"ac", "A", "C"}, {"bc", "B", "C"}})
}

func TestUpdateFormFromForceConverges(t *testing.T) {
	form := pinnedTriangle(t)
	force := starForce(t, map[string][2]float64{
		"ab": {1, 0}, "ac": {0, 1}, "bc": {-2, 1},
	}, []string{"ab", "ac", "bc"})

	res, err := statics.UpdateFormFromForce(form, force)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.LessOrEqual(t, res.Iterations, statics.DefaultKmax)
	require.Less(t, res.Movement, res.Tolerance)
	require.Empty(t, res.Warnings)

	require.InDeltaSlice(t, []float64{0, 0}, position(t, form, "A"), 0)
	require.InDeltaSlice(t, []float64{2, 0}, position(t, form, "B"), 1e-12)
	require.InDeltaSlice(t, []float64{0, 1}, position(t, form, "C"), 1e-12)

	ab, err := form.EdgeAttr("ab")
	require.NoError(t, err)
	require.InDelta(t, 2, ab.L, 1e-12)
	require.InDelta(t, 0, ab.A, 1e-9)
	require.InDelta(t, 0.5, ab.Q, 1e-12)
	require.InDelta(t, 1, ab.F, 1e-12)

	bc, err := form.EdgeAttr("bc")
	require.NoError(t, err)
	require.InDelta(t, 1, bc.Q, 1e-12)
	require.InDelta(t, math.Sqrt(5), bc.F, 1e-12)

	fe, err := force.Graph().EdgeBetween("o", "p_bc")
	require.NoError(t, err)
	fa, err := force.EdgeAttr(fe.ID)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(5), fa.L, 1e-12)
	require.InDelta(t, bc.A, fa.A, 0)
}

func TestUpdateFormFromForceTwoSupports(t *testing.T) {
	form := buildForm(t,
		[]vtx{{key: "A", fixed: true}, {key: "B", x: 4, fixed: true}, {key: "C", x: 1, y: 1}, {key: "L", x: 1, y: 2}},
		[]edg{{"ab", "A", "B"}, {"ac", "A", "C"}, {"bc", "B", "C"}, {"cl", "C", "L"}})
	force := starForce(t, map[string][2]float64{
		"ab": {1, 0}, "ac": {1, 1}, "bc": {-1, 1},
	}, []string{"ab", "ac", "bc"})

	res, err := statics.UpdateFormFromForce(form, force)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDeltaSlice(t, []float64{2, 2}, position(t, form, "C"), 1e-12)
	// the leaf keeps its offset from C
	require.InDeltaSlice(t, []float64{2, 3}, position(t, form, "L"), 1e-12)
	require.InDeltaSlice(t, []float64{4, 0}, position(t, form, "B"), 0)

	cl, err := form.EdgeAttr("cl")
	require.NoError(t, err)
	require.InDelta(t, 1, cl.L, 1e-12)
	require.Equal(t, diagram.DefaultQ, cl.Q, "unlinked leaf edge keeps its density")
}

func TestUpdateFormFromForceSignRule(t *testing.T) {
	form := pinnedTriangle(t)
	force := starForce(t, map[string][2]float64{
		"ab": {1, 0}, "ac": {0, 1}, "bc": {-2, 1},
	}, []string{"ab", "ac", "bc"})
	// reversing the correspondence flips the force vector, not the line
	require.NoError(t, force.Link("ab", "p_ab", "o"))

	_, err := statics.UpdateFormFromForce(form, force)
	require.NoError(t, err)
	ab, err := form.EdgeAttr("ab")
	require.NoError(t, err)
	require.InDelta(t, 180, ab.A, 1e-9)
	require.InDelta(t, -0.5, ab.Q, 1e-12)
	require.InDelta(t, -1, ab.F, 1e-12)
	require.InDeltaSlice(t, []float64{2, 0}, position(t, form, "B"), 1e-12)
}

func TestUpdateFormFromForceKmax(t *testing.T) {
	form := pinnedTriangle(t)
	force := starForce(t, map[string][2]float64{
		"ab": {1, 0}, "ac": {0, 1}, "bc": {-2, 1},
	}, []string{"ab", "ac", "bc"})

	res, err := statics.UpdateFormFromForce(form, force, statics.WithKmax(1))
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.Equal(t, 1, res.Iterations)
	require.InDelta(t, 1, res.Movement, 1e-12)
	require.Len(t, res.Warnings, 1)
	require.Equal(t, statics.WarnNotConverged, res.Warnings[0].Kind)
}

func TestUpdateFormFromForceErrors(t *testing.T) {
	t.Run("no support", func(t *testing.T) {
		form := pinnedTriangle(t)
		require.NoError(t, form.SetFixed("A", false))
		force := starForce(t, map[string][2]float64{"ab": {1, 0}, "ac": {0, 1}, "bc": {-2, 1}},
			[]string{"ab", "ac", "bc"})
		_, err := statics.UpdateFormFromForce(form, force)
		require.ErrorIs(t, err, statics.ErrUnderdeterminedSystem)
	})
	t.Run("disconnected", func(t *testing.T) {
		form := pinnedTriangle(t)
		require.NoError(t, form.AddVertex("Z", 5, 5))
		force := starForce(t, map[string][2]float64{"ab": {1, 0}, "ac": {0, 1}, "bc": {-2, 1}},
			[]string{"ab", "ac", "bc"})
		_, err := statics.UpdateFormFromForce(form, force)
		require.ErrorIs(t, err, statics.ErrUnderdeterminedSystem)
	})
	t.Run("missing reciprocal", func(t *testing.T) {
		form := pinnedTriangle(t)
		force := starForce(t, map[string][2]float64{"ab": {1, 0}, "ac": {0, 1}},
			[]string{"ab", "ac"})
		_, err := statics.UpdateFormFromForce(form, force)
		require.ErrorIs(t, err, statics.ErrDimension)
		require.InDeltaSlice(t, []float64{1, 0}, position(t, form, "B"), 0, "untouched")
	})
	t.Run("stale link", func(t *testing.T) {
		form := pinnedTriangle(t)
		force := starForce(t, map[string][2]float64{"ab": {1, 0}, "ac": {0, 1}, "bc": {-2, 1}, "gone": {1, 1}},
			[]string{"ab", "ac", "bc", "gone"})
		_, err := statics.UpdateFormFromForce(form, force)
		require.ErrorIs(t, err, statics.ErrDimension)
		require.ErrorIs(t, err, diagram.ErrBadLink)
	})
}

func TestSignRuleBoundary(t *testing.T) {
	cases := []struct {
		name string
		u, v [2]float64
		deg  float64
		sign float64
	}{
		{"parallel", [2]float64{1, 0}, [2]float64{3, 0}, 0, 1},
		{"antiparallel", [2]float64{1, 0}, [2]float64{-2, 0}, 180, -1},
		{"perpendicular", [2]float64{1, 0}, [2]float64{0, 1}, 90, -1},
		{"perpendicular below", [2]float64{2, 0}, [2]float64{0, -1}, 90, -1},
		{"acute", [2]float64{1, 0}, [2]float64{1, 1}, 45, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := statics.AngleDeg(tc.u, tc.v)
			require.InDelta(t, tc.deg, a, 1e-12)
			require.Equal(t, tc.sign*2, statics.Signed(a, 2))
		})
	}
	require.Equal(t, 90.0, statics.AngleDeg([2]float64{1, 0}, [2]float64{0, 1}), "exact boundary")
	require.Equal(t, -1.0, statics.Signed(90, 1))
}
