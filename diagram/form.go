package diagram

// FormDiagram is the geometry of a structure and its internal force flow.
type FormDiagram struct {
	*Diagram
}

// NewForm returns an empty form diagram.
func NewForm(opts ...Option) *FormDiagram {
	return &FormDiagram{Diagram: newDiagram(opts...)}
}

// Clone returns a deep copy sharing the GUID.
func (f *FormDiagram) Clone() *FormDiagram {
	return &FormDiagram{Diagram: f.clone()}
}

// Free returns the keys that are neither fixed nor leaves, in insertion order.
func (f *FormDiagram) Free() []string {
	var out []string
	for _, k := range f.Keys() {
		if !f.IsFixed(k) && f.Degree(k) != 1 {
			out = append(out, k)
		}
	}

	return out
}

// IsLeafEdge reports whether one endpoint of the edge has degree 1.
func (f *FormDiagram) IsLeafEdge(u, v string) bool {
	return f.Degree(u) == 1 || f.Degree(v) == 1
}
