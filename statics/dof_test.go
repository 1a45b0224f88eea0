package statics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstatics/statics"
)

func TestIdentifyDOFPinnedTriangle(t *testing.T) {
	form := buildForm(t,
		[]vtx{{key: "A", fixed: true}, {key: "B", x: 1}, {key: "C", y: 1}},
		[]edg{{"ab", "A", "B"}, {"bc", "B", "C"}, {"ca", "C", "A"}})

	dof, err := statics.IdentifyDOF(form)
	require.NoError(t, err)
	require.Equal(t, 0, dof.K)
	require.Equal(t, 1, dof.M) // rotation about the single pin
	require.Equal(t, 3, dof.Rank)
	require.Empty(t, dof.Independent)
	require.Equal(t, statics.Unstable, dof.Status())

	k, m, err := statics.CountDOF(form)
	require.NoError(t, err)
	require.Equal(t, dof.K, k)
	require.Equal(t, dof.M, m)
}

func TestIdentifyDOFLoadedTriangle(t *testing.T) {
	form := loadedTriangle(t)
	for _, k := range []string{"LA", "LB", "LC"} {
		require.NoError(t, form.SetFixed(k, true))
	}

	dof, err := statics.IdentifyDOF(form, statics.WithMarkIndependent())
	require.NoError(t, err)
	require.Equal(t, 1, dof.K)
	require.Equal(t, 1, dof.M)
	require.Equal(t, statics.IndeterminateUnstable, dof.Status())
	require.Equal(t, []statics.IndependentEdge{{ID: "load", U: "C", V: "LC"}}, dof.Independent)
	require.Equal(t, []string{"load"}, form.Ind())

	k, m, err := statics.CountDOF(form)
	require.NoError(t, err)
	require.Equal(t, 1, k)
	require.Equal(t, 1, m)
}

func TestIdentifyDOFNoFreeVertices(t *testing.T) {
	form := buildForm(t,
		[]vtx{{key: "A", fixed: true}, {key: "B", x: 1, fixed: true}, {key: "C", y: 1, fixed: true}},
		[]edg{{"ab", "A", "B"}, {"bc", "B", "C"}})

	dof, err := statics.IdentifyDOF(form)
	require.NoError(t, err)
	require.Equal(t, 2, dof.K)
	require.Equal(t, 0, dof.M)
	require.Equal(t, []string{"ab", "bc"}, dof.IndependentIDs())
	require.Equal(t, statics.Indeterminate, dof.Status())
}

func TestIdentifyDOFEmptyForm(t *testing.T) {
	_, err := statics.IdentifyDOF(buildForm(t, nil, nil))
	require.ErrorIs(t, err, statics.ErrDimension)
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "statically determinate", statics.Determinate.String())
	require.Equal(t, "Status(9)", statics.Status(9).String())
}
