package diagram_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstatics/diagram"
)

func TestFormDataRoundTrip(t *testing.T) {
	f := loaded(t)
	require.NoError(t, f.SetFixed("LA", true))
	require.NoError(t, f.SetQ("ab", -0.25))
	require.NoError(t, f.SetInd([]string{"bc"}))
	require.NoError(t, f.SetIsEdge("ca", false))

	var buf bytes.Buffer
	require.NoError(t, diagram.Encode(&buf, f.Data()))
	d, err := diagram.Decode(&buf)
	require.NoError(t, err)
	g, err := diagram.FormFromData(d)
	require.NoError(t, err)

	require.Equal(t, f.GUID(), g.GUID())
	require.Equal(t, f.Name(), g.Name())
	require.Equal(t, f.Keys(), g.Keys())
	require.Equal(t, f.XY(), g.XY())
	require.Equal(t, f.Edges(), g.Edges())
	require.Equal(t, f.Q(), g.Q())
	require.Equal(t, f.Fixed(), g.Fixed())
	require.Equal(t, []string{"bc"}, g.Ind())
	ca, err := g.EdgeAttr("ca")
	require.NoError(t, err)
	require.False(t, ca.IsEdge)
}

func TestForceDataRoundTrip(t *testing.T) {
	form := loaded(t)
	force, err := diagram.DualOf(form)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, diagram.Encode(&buf, &diagram.Pair{Form: form.Data(), Force: force.Data()}))
	p, err := diagram.DecodePair(&buf)
	require.NoError(t, err)
	g, err := diagram.ForceFromData(p.Force)
	require.NoError(t, err)

	require.Equal(t, force.Anchor(), g.Anchor())
	require.Equal(t, force.XY(), g.XY())
	want, err := force.OrderedEdges(form)
	require.NoError(t, err)
	got, err := g.OrderedEdges(form)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDataDefaults(t *testing.T) {
	src := `{"kind":"form","vertices":[{"key":"a","x":0,"y":0},{"key":"b","x":1,"y":0}],
		"edges":[{"id":"e","u":"a","v":"b"}]}`
	d, err := diagram.Decode(strings.NewReader(src))
	require.NoError(t, err)
	f, err := diagram.FormFromData(d)
	require.NoError(t, err)
	a, err := f.EdgeAttr("e")
	require.NoError(t, err)
	require.Equal(t, diagram.DefaultEdgeAttr(), a)
}

func TestDataErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"wrong kind", `{"kind":"force","vertices":[],"edges":[]}`},
		{"bad guid", `{"guid":"nope","kind":"form","vertices":[],"edges":[]}`},
		{"dangling edge", `{"kind":"form","vertices":[{"key":"a"}],"edges":[{"id":"e","u":"a","v":"b"}]}`},
		{"duplicate vertex", `{"kind":"form","vertices":[{"key":"a"},{"key":"a"}],"edges":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := diagram.Decode(strings.NewReader(tc.src))
			require.NoError(t, err)
			_, err = diagram.FormFromData(d)
			require.ErrorIs(t, err, diagram.ErrBadData)
		})
	}

	_, err := diagram.Decode(strings.NewReader("{"))
	require.ErrorIs(t, err, diagram.ErrBadData)
	_, err = diagram.DecodePair(strings.NewReader(`{}`))
	require.ErrorIs(t, err, diagram.ErrBadData)
}

func TestSchema(t *testing.T) {
	raw, err := json.Marshal(diagram.Schema())
	require.NoError(t, err)
	s := string(raw)
	require.Contains(t, s, `"form"`)
	require.Contains(t, s, `"is_ind"`)
	require.Contains(t, s, `"additionalProperties":false`)
}
