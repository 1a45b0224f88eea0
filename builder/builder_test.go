package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstatics/builder"
	"github.com/katalvlaran/graphstatics/diagram"
	"github.com/katalvlaran/graphstatics/statics"
)

// TestFixtures checks sizes, static determinacy and planarity of every
// fixture.
func TestFixtures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantE int
		wantFree     int
		wantK, wantM int
	}{
		{"Triangle", builder.Triangle(), 6, 6, 3, 1, 1},
		{"Funicular(1)", builder.Funicular(1), 4, 3, 1, 1, 0},
		{"Funicular(4)", builder.Funicular(4), 10, 9, 4, 1, 0},
		{"Truss(2)", builder.Truss(2), 7, 8, 4, 1, 1},
		{"Truss(4)", builder.Truss(4), 13, 18, 8, 3, 1},
		{"Truss(6)", builder.Truss(6), 19, 28, 12, 5, 1},
		{"Ring(3)", builder.Ring(3), 6, 6, 3, 1, 1},
		{"Ring(6)", builder.Ring(6), 12, 12, 6, 1, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f, err := builder.BuildForm(nil, nil, tc.ctor)
			require.NoError(t, err)
			require.Len(t, f.Keys(), tc.wantV)
			require.Len(t, f.Edges(), tc.wantE)
			require.Len(t, f.Free(), tc.wantFree)

			// every leaf end is a support
			for _, key := range f.Leaves() {
				require.True(t, f.IsFixed(key), "leaf %s", key)
			}

			dof, err := statics.IdentifyDOF(f)
			require.NoError(t, err)
			require.Equal(t, tc.wantK, dof.K, "k")
			require.Equal(t, tc.wantM, dof.M, "m")

			force, err := diagram.DualOf(f)
			require.NoError(t, err)
			require.Equal(t, tc.wantE, force.LinkCount())
		})
	}
}

func TestTriangleGeometry(t *testing.T) {
	f, err := builder.BuildForm(nil,
		[]builder.BuilderOption{
			builder.WithIDScheme(builder.LetterIDFn),
			builder.WithSpan(4), builder.WithRise(3), builder.WithLoadLength(0.5),
		},
		builder.Triangle())
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, f.Keys())
	require.Equal(t, []string{"A", "B", "C"}, f.Free())

	want := map[string][2]float64{
		"A": {0, 0}, "B": {4, 0}, "C": {2, 3},
		"D": {0, -0.5}, "E": {4, -0.5}, "F": {2, 3.5},
	}
	for key, p := range want {
		x, y, err := f.Position(key)
		require.NoError(t, err)
		require.InDelta(t, p[0], x, 1e-12, key)
		require.InDelta(t, p[1], y, 1e-12, key)
	}
}

func TestFunicularIsParabola(t *testing.T) {
	f, err := builder.BuildForm(nil, []builder.BuilderOption{builder.WithSpan(4), builder.WithRise(2)},
		builder.Funicular(3))
	require.NoError(t, err)
	// node 2 is mid-span, at the full sag
	x, y, err := f.Position("2")
	require.NoError(t, err)
	require.InDelta(t, 2.0, x, 1e-12)
	require.InDelta(t, -2.0, y, 1e-12)
	require.True(t, f.IsFixed("0"))
	require.True(t, f.IsFixed("4"))
}

// TestComposition checks that consecutive constructors continue the key
// sequence instead of colliding.
func TestComposition(t *testing.T) {
	f, err := builder.BuildForm(nil, nil, builder.Triangle(), builder.Ring(3))
	require.NoError(t, err)
	require.Len(t, f.Keys(), 12)
	require.Equal(t, "11", f.Keys()[11])
}

func TestJitter(t *testing.T) {
	build := func(seed int64) *diagram.FormDiagram {
		f, err := builder.BuildForm(nil, []builder.BuilderOption{builder.WithSeed(seed)},
			builder.Truss(4), builder.Jitter(0.05))
		require.NoError(t, err)
		return f
	}
	plain, err := builder.BuildForm(nil, nil, builder.Truss(4))
	require.NoError(t, err)

	a, b, c := build(7), build(7), build(8)
	require.Equal(t, a.XY(), b.XY())
	require.NotEqual(t, a.XY(), c.XY())

	free := map[string]bool{}
	for _, key := range plain.Free() {
		free[key] = true
	}
	for i, key := range plain.Keys() {
		if free[key] {
			require.NotEqual(t, plain.XY()[i], a.XY()[i], key)
		} else {
			require.Equal(t, plain.XY()[i], a.XY()[i], key)
		}
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		bopts []builder.BuilderOption
		ctor  builder.Constructor
		want  error
	}{
		{"Funicular(0)", nil, builder.Funicular(0), builder.ErrTooFewVertices},
		{"Truss(1)", nil, builder.Truss(1), builder.ErrTooFewVertices},
		{"Ring(2)", nil, builder.Ring(2), builder.ErrTooFewVertices},
		{"Jitter without rng", nil, builder.Jitter(0.1), builder.ErrNeedRandSource},
		{"Jitter negative", []builder.BuilderOption{builder.WithSeed(1)}, builder.Jitter(-1), builder.ErrOptionViolation},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{"duplicate keys", []builder.BuilderOption{builder.WithIDScheme(func(int) string { return "x" })},
			builder.Triangle(), builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildForm(nil, tc.bopts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNamed(t *testing.T) {
	require.Equal(t, []string{"funicular", "ring", "triangle", "truss"}, builder.FixtureNames())

	ctor, err := builder.Named(builder.FixtureRing, 4)
	require.NoError(t, err)
	f, err := builder.BuildForm([]diagram.Option{diagram.WithName("ring")}, nil, ctor)
	require.NoError(t, err)
	require.Equal(t, "ring", f.Name())
	require.Len(t, f.Edges(), 8)

	_, err = builder.Named("dome", 3)
	require.ErrorIs(t, err, builder.ErrOptionViolation)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithSpan(0) })
	require.Panics(t, func() { builder.WithRise(-1) })
	require.Panics(t, func() { builder.WithLoadLength(0) })
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
}
