package diagram

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/graphstatics/core"
)

// ForceDiagram is the reciprocal of a form diagram.
//
// links maps a form edge ID to the oriented pair of force vertices (u, v)
// whose edge is its reciprocal; orientation fixes the sign convention.
// Every force edge is the reciprocal of at most one form edge.
type ForceDiagram struct {
	*Diagram
	lmu    sync.RWMutex // guards anchor and links
	anchor string
	links  map[string][2]string
}

// NewForce returns an empty force diagram.
func NewForce(opts ...Option) *ForceDiagram {
	return &ForceDiagram{Diagram: newDiagram(opts...), links: make(map[string][2]string)}
}

// Clone returns a deep copy sharing the GUID.
func (f *ForceDiagram) Clone() *ForceDiagram {
	f.lmu.RLock()
	defer f.lmu.RUnlock()
	c := &ForceDiagram{Diagram: f.clone(), anchor: f.anchor, links: make(map[string][2]string, len(f.links))}
	for k, v := range f.links {
		c.links[k] = v
	}

	return c
}

// Anchor returns the vertex held fixed during updates ("" if unset).
func (f *ForceDiagram) Anchor() string {
	f.lmu.RLock()
	defer f.lmu.RUnlock()

	return f.anchor
}

// SetAnchor designates the anchor vertex.
func (f *ForceDiagram) SetAnchor(key string) error {
	if !f.graph.HasVertex(key) {
		return fmt.Errorf("diagram: anchor %q: %w", key, ErrUnknownVertex)
	}
	f.lmu.Lock()
	f.anchor = key
	f.lmu.Unlock()

	return nil
}

// Link declares that the force edge joining u and v is the reciprocal of the
// form edge formEdge, oriented u → v. Relinking formEdge replaces its pair;
// claiming a force edge already linked to another form edge is ErrBadLink.
func (f *ForceDiagram) Link(formEdge, u, v string) error {
	if formEdge == "" {
		return fmt.Errorf("diagram: empty form edge: %w", ErrBadLink)
	}
	if !f.graph.HasEdge(u, v) {
		return fmt.Errorf("diagram: link %s → (%s,%s): %w", formEdge, u, v, ErrBadLink)
	}
	f.lmu.Lock()
	defer f.lmu.Unlock()
	for id, p := range f.links {
		if id != formEdge && samePair(p, u, v) {
			return fmt.Errorf("diagram: link %s → (%s,%s): force edge already linked to %s: %w",
				formEdge, u, v, id, ErrBadLink)
		}
	}
	f.links[formEdge] = [2]string{u, v}

	return nil
}

func samePair(p [2]string, u, v string) bool {
	return (p[0] == u && p[1] == v) || (p[0] == v && p[1] == u)
}

// Unlink removes the correspondence of formEdge.
func (f *ForceDiagram) Unlink(formEdge string) {
	f.lmu.Lock()
	delete(f.links, formEdge)
	f.lmu.Unlock()
}

// LinkOf returns the oriented force pair of formEdge.
func (f *ForceDiagram) LinkOf(formEdge string) ([2]string, bool) {
	f.lmu.RLock()
	defer f.lmu.RUnlock()
	p, ok := f.links[formEdge]

	return p, ok
}

// LinkCount returns the number of correspondences.
func (f *ForceDiagram) LinkCount() int {
	f.lmu.RLock()
	defer f.lmu.RUnlock()

	return len(f.links)
}

// Correspondence aligns one form edge with its reciprocal force edge.
type Correspondence struct {
	Form      core.Edge // form edge, stored orientation
	FormIndex int       // index under form.EdgeIndex()
	U, V      string    // oriented force endpoints; empty when unlinked
	ForceEdge string    // force edge ID; empty when unlinked
}

// Linked reports whether the form edge has a reciprocal.
func (c Correspondence) Linked() bool { return c.ForceEdge != "" }

// OrderedEdges returns one Correspondence per form edge, in form edge order.
// Links naming edges that no longer exist in either diagram, and force edges
// claimed by two form edges, are reported as ErrBadLink.
func (f *ForceDiagram) OrderedEdges(form *FormDiagram) ([]Correspondence, error) {
	f.lmu.RLock()
	defer f.lmu.RUnlock()
	formEdges := form.Edges()
	present := make(map[string]bool, len(formEdges))
	owner := make(map[string]string, len(f.links))
	out := make([]Correspondence, len(formEdges))
	for i, e := range formEdges {
		present[e.ID] = true
		out[i] = Correspondence{Form: e, FormIndex: i}
		p, ok := f.links[e.ID]
		if !ok {
			continue
		}
		fe, err := f.graph.EdgeBetween(p[0], p[1])
		if err != nil {
			return nil, fmt.Errorf("diagram: link %s → (%s,%s): %w", e.ID, p[0], p[1], ErrBadLink)
		}
		if prev, dup := owner[fe.ID]; dup {
			return nil, fmt.Errorf("diagram: force edge %s linked to both %s and %s: %w", fe.ID, prev, e.ID, ErrBadLink)
		}
		owner[fe.ID] = e.ID
		out[i].U, out[i].V, out[i].ForceEdge = p[0], p[1], fe.ID
	}
	for id := range f.links {
		if !present[id] {
			return nil, fmt.Errorf("diagram: link for missing form edge %q: %w", id, ErrBadLink)
		}
	}

	return out, nil
}
