package diagram

import (
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/graphstatics/core"
)

// Kind distinguishes form and force documents.
type Kind string

// Diagram kinds.
const (
	KindForm  Kind = "form"
	KindForce Kind = "force"
)

// DefaultQ is the force density of a freshly added edge.
const DefaultQ = 1.0

// VertexAttr holds per-vertex flags.
type VertexAttr struct {
	Fixed bool // support: never moved by geometry updates
}

// EdgeAttr holds per-edge scalars.
type EdgeAttr struct {
	Q      float64 // force density
	F      float64 // force
	L      float64 // length
	A      float64 // angle to the reciprocal edge, degrees
	IsEdge bool    // structural (true) or auxiliary
	IsInd  bool    // member of the independent set
}

// DefaultEdgeAttr is the attribute set of a new edge.
func DefaultEdgeAttr() EdgeAttr { return EdgeAttr{Q: DefaultQ, IsEdge: true} }

// Option configures a diagram at construction.
type Option func(*Diagram)

// WithName sets a human-readable name.
func WithName(name string) Option { return func(d *Diagram) { d.name = name } }

// WithGUID sets the diagram identity (a random v4 UUID otherwise).
func WithGUID(id uuid.UUID) Option { return func(d *Diagram) { d.guid = id } }

// Diagram is the storage shared by form and force diagrams.
type Diagram struct {
	mu    sync.RWMutex // guards vattr, eattr
	graph *core.Graph
	guid  uuid.UUID
	name  string
	vattr map[string]*VertexAttr
	eattr map[string]*EdgeAttr
}

func newDiagram(opts ...Option) *Diagram {
	d := &Diagram{
		graph: core.NewGraph(),
		guid:  uuid.New(),
		vattr: make(map[string]*VertexAttr),
		eattr: make(map[string]*EdgeAttr),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Graph exposes the underlying topology. Mutating it directly bypasses the
// attribute tables; use the Diagram methods instead.
func (d *Diagram) Graph() *core.Graph { return d.graph }

// GUID returns the diagram identity.
func (d *Diagram) GUID() uuid.UUID { return d.guid }

// Name returns the diagram name.
func (d *Diagram) Name() string { return d.name }

// AddVertex adds a vertex at (x, y).
func (d *Diagram) AddVertex(key string, x, y float64) error {
	if err := d.graph.AddVertex(key, x, y); err != nil {
		return fmt.Errorf("diagram: add vertex %q: %w", key, err)
	}
	d.mu.Lock()
	d.vattr[key] = &VertexAttr{}
	d.mu.Unlock()

	return nil
}

// AddEdge joins u → v and returns the new edge ID.
func (d *Diagram) AddEdge(u, v string) (string, error) {
	eid, err := d.graph.AddEdge(u, v)
	if err != nil {
		return "", fmt.Errorf("diagram: add edge %s-%s: %w", u, v, err)
	}
	d.mu.Lock()
	a := DefaultEdgeAttr()
	d.eattr[eid] = &a
	d.mu.Unlock()

	return eid, nil
}

// AddEdgeWithID joins u → v under a caller-chosen edge ID.
func (d *Diagram) AddEdgeWithID(eid, u, v string) error {
	if err := d.graph.AddEdgeWithID(eid, u, v); err != nil {
		return fmt.Errorf("diagram: add edge %s (%s-%s): %w", eid, u, v, err)
	}
	d.mu.Lock()
	a := DefaultEdgeAttr()
	d.eattr[eid] = &a
	d.mu.Unlock()

	return nil
}

// Keys returns vertex keys in insertion order.
func (d *Diagram) Keys() []string { return d.graph.Vertices() }

// Edges returns the edges in insertion order.
func (d *Diagram) Edges() []core.Edge { return d.graph.Edges() }

// KeyIndex maps each vertex key to its position in Keys().
func (d *Diagram) KeyIndex() map[string]int {
	keys := d.Keys()
	out := make(map[string]int, len(keys))
	for i, k := range keys {
		out[k] = i
	}

	return out
}

// EdgeIndex maps each edge ID to its position in Edges().
func (d *Diagram) EdgeIndex() map[string]int {
	edges := d.Edges()
	out := make(map[string]int, len(edges))
	for i, e := range edges {
		out[e.ID] = i
	}

	return out
}

// PairIndex returns the index of the edge joining u and v; both
// orientations map to the same index.
func (d *Diagram) PairIndex(u, v string) (int, bool) {
	e, err := d.graph.EdgeBetween(u, v)
	if err != nil {
		return 0, false
	}
	idx, ok := d.EdgeIndex()[e.ID]

	return idx, ok
}

// IndexPairs returns every edge as a (from, to) pair of vertex indices
// under KeyIndex.
func (d *Diagram) IndexPairs() [][2]int {
	k := d.KeyIndex()
	edges := d.Edges()
	out := make([][2]int, len(edges))
	for i, e := range edges {
		out[i] = [2]int{k[e.From], k[e.To]}
	}

	return out
}

// XY returns vertex positions in Keys() order.
func (d *Diagram) XY() [][2]float64 {
	keys := d.Keys()
	out := make([][2]float64, len(keys))
	for i, k := range keys {
		x, y, _ := d.graph.Position(k)
		out[i] = [2]float64{x, y}
	}

	return out
}

// Position returns the coordinates of key.
func (d *Diagram) Position(key string) (x, y float64, err error) {
	x, y, err = d.graph.Position(key)
	if err != nil {
		return 0, 0, fmt.Errorf("diagram: %q: %w", key, ErrUnknownVertex)
	}

	return x, y, nil
}

// NeighborKeys returns the vertices adjacent to key.
func (d *Diagram) NeighborKeys(key string) ([]string, error) {
	nbrs, err := d.graph.NeighborIDs(key)
	if err != nil {
		return nil, fmt.Errorf("diagram: %q: %w", key, ErrUnknownVertex)
	}

	return nbrs, nil
}

// Degree returns the number of edges at key (0 for unknown keys).
func (d *Diagram) Degree(key string) int {
	n, _ := d.graph.Degree(key)

	return n
}

// SetFixed marks key as a support (or frees it).
func (d *Diagram) SetFixed(key string, fixed bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	a, ok := d.vattr[key]
	if !ok {
		return fmt.Errorf("diagram: %q: %w", key, ErrUnknownVertex)
	}
	a.Fixed = fixed

	return nil
}

// IsFixed reports whether key is a support.
func (d *Diagram) IsFixed(key string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	a, ok := d.vattr[key]

	return ok && a.Fixed
}

// Fixed returns the support keys in insertion order.
func (d *Diagram) Fixed() []string {
	var out []string
	for _, k := range d.Keys() {
		if d.IsFixed(k) {
			out = append(out, k)
		}
	}

	return out
}

// Leaves returns the degree-1 vertices in insertion order.
func (d *Diagram) Leaves() []string { return d.graph.Leaves() }

// EdgeAttr returns a copy of the attributes of eid.
func (d *Diagram) EdgeAttr(eid string) (EdgeAttr, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	a, ok := d.eattr[eid]
	if !ok {
		return EdgeAttr{}, fmt.Errorf("diagram: %q: %w", eid, ErrUnknownEdge)
	}

	return *a, nil
}

// SetQ sets the force density of one edge.
func (d *Diagram) SetQ(eid string, q float64) error {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return fmt.Errorf("diagram: q of %q must be finite: %w", eid, ErrBadData)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	a, ok := d.eattr[eid]
	if !ok {
		return fmt.Errorf("diagram: %q: %w", eid, ErrUnknownEdge)
	}
	a.Q = q

	return nil
}

// SetIsEdge marks an edge as structural (true) or auxiliary (false).
func (d *Diagram) SetIsEdge(eid string, structural bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	a, ok := d.eattr[eid]
	if !ok {
		return fmt.Errorf("diagram: %q: %w", eid, ErrUnknownEdge)
	}
	a.IsEdge = structural

	return nil
}

// Q returns force densities in Edges() order.
func (d *Diagram) Q() []float64 {
	edges := d.Edges()
	out := make([]float64, len(edges))
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i, e := range edges {
		out[i] = d.eattr[e.ID].Q
	}

	return out
}

// Ind returns the IDs of edges flagged independent, in Edges() order.
func (d *Diagram) Ind() []string {
	var out []string
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, e := range d.graph.Edges() {
		if d.eattr[e.ID].IsInd {
			out = append(out, e.ID)
		}
	}

	return out
}

// SetInd flags exactly the given edges as independent. Unknown IDs leave the
// diagram untouched.
func (d *Diagram) SetInd(ids []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := d.eattr[id]; !ok {
			return fmt.Errorf("diagram: %q: %w", id, ErrUnknownEdge)
		}
		want[id] = true
	}
	for id, a := range d.eattr {
		a.IsInd = want[id]
	}

	return nil
}

// SetPositions moves several vertices at once. Every key and coordinate is
// validated before the first write.
func (d *Diagram) SetPositions(pos map[string][2]float64) error { return d.Update(pos, nil) }

// SetEdgeAttrs replaces the attributes of several edges at once. Every ID is
// validated before the first write.
func (d *Diagram) SetEdgeAttrs(attrs map[string]EdgeAttr) error { return d.Update(nil, attrs) }

// CheckUpdate reports the first vertex key, coordinate or edge ID that
// Update would reject, without writing anything.
func (d *Diagram) CheckUpdate(pos map[string][2]float64, attrs map[string]EdgeAttr) error {
	for k, p := range pos {
		if !d.graph.HasVertex(k) {
			return fmt.Errorf("diagram: %q: %w", k, ErrUnknownVertex)
		}
		if math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsInf(p[0], 0) || math.IsInf(p[1], 0) {
			return fmt.Errorf("diagram: position of %q must be finite: %w", k, ErrBadData)
		}
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for id := range attrs {
		if _, ok := d.eattr[id]; !ok {
			return fmt.Errorf("diagram: %q: %w", id, ErrUnknownEdge)
		}
	}

	return nil
}

// Update writes vertex positions and edge attributes together. Nothing is
// written unless every key of both maps passes CheckUpdate.
func (d *Diagram) Update(pos map[string][2]float64, attrs map[string]EdgeAttr) error {
	if err := d.CheckUpdate(pos, attrs); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for k, p := range pos {
		if err := d.graph.SetPosition(k, p[0], p[1]); err != nil {
			return fmt.Errorf("diagram: %q: %w", k, err)
		}
	}
	for id, a := range attrs {
		cp := a
		d.eattr[id] = &cp
	}

	return nil
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (d *Diagram) Bounds() (minX, minY, maxX, maxY float64) {
	xy := d.XY()
	if len(xy) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = xy[0][0], xy[0][1]
	maxX, maxY = minX, minY
	for _, p := range xy[1:] {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}

	return minX, minY, maxX, maxY
}

// Scale returns the diagonal of the bounding box (1 for degenerate boxes).
func (d *Diagram) Scale() float64 {
	x0, y0, x1, y1 := d.Bounds()
	s := math.Hypot(x1-x0, y1-y0)
	if s == 0 {
		return 1
	}

	return s
}

// clone copies storage; identity and name are kept.
func (d *Diagram) clone() *Diagram {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c := &Diagram{
		graph: d.graph.Clone(),
		guid:  d.guid,
		name:  d.name,
		vattr: make(map[string]*VertexAttr, len(d.vattr)),
		eattr: make(map[string]*EdgeAttr, len(d.eattr)),
	}
	for k, a := range d.vattr {
		cp := *a
		c.vattr[k] = &cp
	}
	for k, a := range d.eattr {
		cp := *a
		c.eattr[k] = &cp
	}

	return c
}
