package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/graphstatics/diagram"
)

// ErrEmpty is returned when there is nothing to draw.
var ErrEmpty = errors.New("render: diagram has no vertices")

// ColorOf maps a force to its edge colour.
func ColorOf(force float64) gg.RGBA {
	switch {
	case force > 0:
		return Tension
	case force < 0:
		return Compression
	default:
		return Neutral
	}
}

// stroke is one edge to draw in diagram coordinates.
type stroke struct {
	a, b   [2]float64
	color  gg.RGBA
	dashed bool
}

// viewport maps diagram coordinates into a pixel box with y pointing up.
type viewport struct {
	scale        float64
	minX, minY   float64
	left, bottom float64 // pixel position of (minX, minY)
}

func fit(d *diagram.Diagram, left, top, width, height float64) viewport {
	minX, minY, maxX, maxY := d.Bounds()
	w, h := maxX-minX, maxY-minY
	scale := math.Inf(1)
	if w > 0 {
		scale = width / w
	}
	if h > 0 {
		scale = math.Min(scale, height/h)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}
	// centre the drawing inside the box
	padX := (width - w*scale) / 2
	padY := (height - h*scale) / 2

	return viewport{
		scale: scale, minX: minX, minY: minY,
		left: left + padX, bottom: top + height - padY,
	}
}

func (v viewport) px(p [2]float64) (float64, float64) {
	return v.left + (p[0]-v.minX)*v.scale, v.bottom - (p[1]-v.minY)*v.scale
}

// formStrokes colours form edges by their stored force.
func formStrokes(form *diagram.FormDiagram) ([]stroke, error) {
	xy := form.XY()
	edges := form.Edges()
	out := make([]stroke, 0, len(edges))
	for i, p := range form.IndexPairs() {
		e := edges[i]
		a, err := form.EdgeAttr(e.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, stroke{
			a: xy[p[0]], b: xy[p[1]],
			color:  ColorOf(a.F),
			dashed: form.IsLeafEdge(e.From, e.To),
		})
	}

	return out, nil
}

// forceStrokes colours force edges with the force of the linked form edge.
// Force edges without a link are drawn grey.
func forceStrokes(force *diagram.ForceDiagram, form *diagram.FormDiagram) ([]stroke, error) {
	corr, err := force.OrderedEdges(form)
	if err != nil {
		return nil, err
	}
	type look struct {
		color  gg.RGBA
		dashed bool
	}
	byEdge := make(map[string]look, len(corr))
	for _, c := range corr {
		if !c.Linked() {
			continue
		}
		a, err := form.EdgeAttr(c.Form.ID)
		if err != nil {
			return nil, err
		}
		byEdge[c.ForceEdge] = look{ColorOf(a.F), form.IsLeafEdge(c.Form.From, c.Form.To)}
	}

	xy := force.XY()
	edges := force.Edges()
	out := make([]stroke, 0, len(edges))
	for i, p := range force.IndexPairs() {
		l, ok := byEdge[edges[i].ID]
		if !ok {
			l = look{color: Neutral}
		}
		out = append(out, stroke{a: xy[p[0]], b: xy[p[1]], color: l.color, dashed: l.dashed})
	}

	return out, nil
}

// draw paints one diagram into the box (left, top, width, height).
func draw(dc *gg.Context, d *diagram.Diagram, strokes []stroke, cfg config, left, top, width, height float64) error {
	vp := fit(d, left+cfg.margin, top+cfg.margin, width-2*cfg.margin, height-2*cfg.margin)

	dc.SetLineWidth(cfg.lineWidth)
	for _, s := range strokes {
		if s.dashed {
			dc.SetDash(3*cfg.lineWidth, 2*cfg.lineWidth)
		} else {
			dc.ClearDash()
		}
		dc.SetColor(s.color.Color())
		x1, y1 := vp.px(s.a)
		x2, y2 := vp.px(s.b)
		dc.DrawLine(x1, y1, x2, y2)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("render: stroke: %w", err)
		}
	}
	dc.ClearDash()

	xy := d.XY()
	for i, key := range d.Keys() {
		c := VertexFree
		if d.IsFixed(key) {
			c = VertexFixed
		}
		dc.SetColor(c.Color())
		x, y := vp.px(xy[i])
		dc.DrawCircle(x, y, cfg.pointSize)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("render: vertex %s: %w", key, err)
		}
	}

	return nil
}

func newCanvas(cfg config) *gg.Context {
	dc := gg.NewContext(cfg.width, cfg.height)
	dc.ClearWithColor(Background)

	return dc
}

// FormImage draws the form diagram onto a new context. The caller closes it.
func FormImage(form *diagram.FormDiagram, opts ...Option) (*gg.Context, error) {
	if len(form.Keys()) == 0 {
		return nil, ErrEmpty
	}
	cfg := gather(opts)
	strokes, err := formStrokes(form)
	if err != nil {
		return nil, fmt.Errorf("render: form: %w", err)
	}
	dc := newCanvas(cfg)
	if err = draw(dc, form.Diagram, strokes, cfg, 0, 0, float64(cfg.width), float64(cfg.height)); err != nil {
		_ = dc.Close()
		return nil, err
	}

	return dc, nil
}

// PairImage draws the form diagram on the left half and the force diagram
// on the right half.
func PairImage(form *diagram.FormDiagram, force *diagram.ForceDiagram, opts ...Option) (*gg.Context, error) {
	if len(form.Keys()) == 0 || len(force.Keys()) == 0 {
		return nil, ErrEmpty
	}
	cfg := gather(opts)
	fs, err := formStrokes(form)
	if err != nil {
		return nil, fmt.Errorf("render: form: %w", err)
	}
	rs, err := forceStrokes(force, form)
	if err != nil {
		return nil, fmt.Errorf("render: force: %w", err)
	}
	half := float64(cfg.width) / 2
	dc := newCanvas(cfg)
	if err = draw(dc, form.Diagram, fs, cfg, 0, 0, half, float64(cfg.height)); err != nil {
		_ = dc.Close()
		return nil, err
	}
	if err = draw(dc, force.Diagram, rs, cfg, half, 0, half, float64(cfg.height)); err != nil {
		_ = dc.Close()
		return nil, err
	}

	return dc, nil
}

// Form writes a PNG of the form diagram to w.
func Form(w io.Writer, form *diagram.FormDiagram, opts ...Option) error {
	dc, err := FormImage(form, opts...)
	if err != nil {
		return err
	}
	defer dc.Close()

	return dc.EncodePNG(w)
}

// Pair writes a PNG of the form and force diagrams side by side to w.
func Pair(w io.Writer, form *diagram.FormDiagram, force *diagram.ForceDiagram, opts ...Option) error {
	dc, err := PairImage(form, force, opts...)
	if err != nil {
		return err
	}
	defer dc.Close()

	return dc.EncodePNG(w)
}
