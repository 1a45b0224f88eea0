package render_test

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstatics/builder"
	"github.com/katalvlaran/graphstatics/diagram"
	"github.com/katalvlaran/graphstatics/render"
)

// signedTriangle returns the loaded triangle with the bottom bar in tension
// and the two rafters in compression.
func signedTriangle(t *testing.T) *diagram.FormDiagram {
	t.Helper()
	f, err := builder.BuildForm(nil, nil, builder.Triangle())
	require.NoError(t, err)
	attrs := map[string]diagram.EdgeAttr{}
	for i, e := range f.Edges() {
		a, err := f.EdgeAttr(e.ID)
		require.NoError(t, err)
		switch i {
		case 0:
			a.F = 1
		case 1, 2:
			a.F = -1
		}
		attrs[e.ID] = a
	}
	require.NoError(t, f.SetEdgeAttrs(attrs))
	return f
}

// countPixels decodes a PNG and counts pixels accepted by match (8-bit
// channels).
func countPixels(t *testing.T, buf *bytes.Buffer, match func(r, g, b uint32) bool) (image.Rectangle, int) {
	t.Helper()
	img, err := png.Decode(buf)
	require.NoError(t, err)
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if match(r>>8, g>>8, bl>>8) {
				n++
			}
		}
	}
	return b, n
}

func red(r, g, b uint32) bool  { return r > 150 && g < 100 && b < 100 }
func blue(r, g, b uint32) bool { return b > 130 && r < 90 }

func TestColorOf(t *testing.T) {
	require.Equal(t, render.Tension, render.ColorOf(2))
	require.Equal(t, render.Compression, render.ColorOf(-0.5))
	require.Equal(t, render.Neutral, render.ColorOf(0))
}

func TestForm(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Form(&buf, signedTriangle(t), render.WithSize(200, 150)))

	bounds, reds := countPixels(t, bytes.NewBuffer(buf.Bytes()), red)
	require.Equal(t, 200, bounds.Dx())
	require.Equal(t, 150, bounds.Dy())
	require.Positive(t, reds)

	_, blues := countPixels(t, bytes.NewBuffer(buf.Bytes()), blue)
	require.Positive(t, blues)
}

func TestPair(t *testing.T) {
	form := signedTriangle(t)
	force, err := diagram.DualOf(form)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Pair(&buf, form, force, render.WithSize(400, 200), render.WithMargin(10)))
	bounds, reds := countPixels(t, &buf, red)
	require.Equal(t, image.Rect(0, 0, 400, 200), bounds)
	require.Positive(t, reds)
}

func TestRenderErrors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, render.Form(&buf, diagram.NewForm()), render.ErrEmpty)
	require.ErrorIs(t, render.Pair(&buf, signedTriangle(t), diagram.NewForce()), render.ErrEmpty)

	require.Panics(t, func() { render.WithSize(0, 10) })
	require.Panics(t, func() { render.WithMargin(-1) })
	require.Panics(t, func() { render.WithLineWidth(0) })
}
