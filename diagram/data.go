package diagram

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
)

// VertexData is one vertex of an exchange document.
type VertexData struct {
	Key   string  `json:"key" jsonschema:"minLength=1"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Fixed bool    `json:"fixed,omitempty"`
}

// EdgeData is one edge of an exchange document. Missing q defaults to 1 and
// missing is_edge to true.
type EdgeData struct {
	ID     string   `json:"id" jsonschema:"minLength=1"`
	U      string   `json:"u" jsonschema:"minLength=1"`
	V      string   `json:"v" jsonschema:"minLength=1"`
	Q      *float64 `json:"q,omitempty"`
	F      float64  `json:"f,omitempty"`
	L      float64  `json:"l,omitempty"`
	A      float64  `json:"a,omitempty"`
	IsEdge *bool    `json:"is_edge,omitempty"`
	IsInd  bool     `json:"is_ind,omitempty"`
}

// LinkData ties a form edge to its oriented reciprocal force edge.
type LinkData struct {
	FormEdge string `json:"form_edge" jsonschema:"minLength=1"`
	U        string `json:"u" jsonschema:"minLength=1"`
	V        string `json:"v" jsonschema:"minLength=1"`
}

// Data is the exchange document of a single diagram.
type Data struct {
	GUID     string       `json:"guid" jsonschema:"format=uuid"`
	Name     string       `json:"name,omitempty"`
	Kind     Kind         `json:"kind" jsonschema:"enum=form,enum=force"`
	Vertices []VertexData `json:"vertices"`
	Edges    []EdgeData   `json:"edges"`
	Anchor   string       `json:"anchor,omitempty"`
	Links    []LinkData   `json:"links,omitempty"`
}

// Pair bundles a form diagram with its force diagram in one document.
type Pair struct {
	Form  *Data `json:"form"`
	Force *Data `json:"force,omitempty"`
}

func (d *Diagram) data(kind Kind) *Data {
	out := &Data{GUID: d.guid.String(), Name: d.name, Kind: kind}
	for _, k := range d.Keys() {
		x, y, _ := d.graph.Position(k)
		out.Vertices = append(out.Vertices, VertexData{Key: k, X: x, Y: y, Fixed: d.IsFixed(k)})
	}
	for _, e := range d.Edges() {
		a, _ := d.EdgeAttr(e.ID)
		q, isEdge := a.Q, a.IsEdge
		out.Edges = append(out.Edges, EdgeData{
			ID: e.ID, U: e.From, V: e.To,
			Q: &q, F: a.F, L: a.L, A: a.A,
			IsEdge: &isEdge, IsInd: a.IsInd,
		})
	}

	return out
}

func (d *Diagram) load(src *Data) error {
	for _, v := range src.Vertices {
		if err := d.AddVertex(v.Key, v.X, v.Y); err != nil {
			return fmt.Errorf("%w: %v", ErrBadData, err)
		}
		if v.Fixed {
			_ = d.SetFixed(v.Key, true)
		}
	}
	for _, e := range src.Edges {
		if err := d.AddEdgeWithID(e.ID, e.U, e.V); err != nil {
			return fmt.Errorf("%w: %v", ErrBadData, err)
		}
		a := DefaultEdgeAttr()
		if e.Q != nil {
			a.Q = *e.Q
		}
		if e.IsEdge != nil {
			a.IsEdge = *e.IsEdge
		}
		a.F, a.L, a.A, a.IsInd = e.F, e.L, e.A, e.IsInd
		if err := d.SetEdgeAttrs(map[string]EdgeAttr{e.ID: a}); err != nil {
			return fmt.Errorf("%w: %v", ErrBadData, err)
		}
	}

	return nil
}

func parseGUID(s string) ([]Option, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: guid %q: %v", ErrBadData, s, err)
	}

	return []Option{WithGUID(id)}, nil
}

// Data exports the form diagram.
func (f *FormDiagram) Data() *Data { return f.data(KindForm) }

// Data exports the force diagram with anchor and links (sorted by form
// edge ID).
func (f *ForceDiagram) Data() *Data {
	out := f.data(KindForce)
	f.lmu.RLock()
	defer f.lmu.RUnlock()
	out.Anchor = f.anchor
	for _, id := range sortedKeys(f.links) {
		p := f.links[id]
		out.Links = append(out.Links, LinkData{FormEdge: id, U: p[0], V: p[1]})
	}

	return out
}

// FormFromData builds a form diagram from an exchange document.
func FormFromData(src *Data) (*FormDiagram, error) {
	if src == nil || (src.Kind != "" && src.Kind != KindForm) {
		return nil, fmt.Errorf("%w: expected kind %q", ErrBadData, KindForm)
	}
	opts, err := parseGUID(src.GUID)
	if err != nil {
		return nil, err
	}
	f := NewForm(append(opts, WithName(src.Name))...)
	if err = f.load(src); err != nil {
		return nil, err
	}

	return f, nil
}

// ForceFromData builds a force diagram from an exchange document.
func ForceFromData(src *Data) (*ForceDiagram, error) {
	if src == nil || (src.Kind != "" && src.Kind != KindForce) {
		return nil, fmt.Errorf("%w: expected kind %q", ErrBadData, KindForce)
	}
	opts, err := parseGUID(src.GUID)
	if err != nil {
		return nil, err
	}
	f := NewForce(append(opts, WithName(src.Name))...)
	if err = f.load(src); err != nil {
		return nil, err
	}
	if src.Anchor != "" {
		if err = f.SetAnchor(src.Anchor); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadData, err)
		}
	}
	for _, l := range src.Links {
		if err = f.Link(l.FormEdge, l.U, l.V); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadData, err)
		}
	}

	return f, nil
}

// Encode writes v (a *Data or *Pair) as indented JSON.
func Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("diagram: encode: %w", err)
	}

	return nil
}

// Decode reads a single-diagram document.
func Decode(r io.Reader) (*Data, error) {
	var d Data
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadData, err)
	}

	return &d, nil
}

// DecodePair reads a form/force pair document.
func DecodePair(r io.Reader) (*Pair, error) {
	var p Pair
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadData, err)
	}
	if p.Form == nil {
		return nil, fmt.Errorf("%w: missing form", ErrBadData)
	}

	return &p, nil
}

// Schema returns the JSON schema of the pair document (which embeds the
// single-diagram schema).
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	return reflector.Reflect(&Pair{})
}
