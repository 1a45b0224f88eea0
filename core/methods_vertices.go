// File: methods_vertices.go
// Role: Vertex lifecycle, positions & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import "math"

// AddVertex inserts a new vertex at (x, y).
//
// Implementation:
//   - Stage 1: Validate non-empty ID and finite coordinates.
//   - Stage 2: Under muVert write lock, reject duplicates and register the vertex.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadPosition, ErrDuplicateVertex.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, x, y float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if !finite(x) || !finite(y) {
		return ErrBadPosition
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; ok {
		return ErrDuplicateVertex
	}
	g.vertices[id] = &Vertex{ID: id, X: x, Y: y}
	g.vertexOrder = append(g.vertexOrder, id)

	g.muEdgeAdj.Lock()
	g.adjacency[id] = make(map[string]string)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex id.
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// Position returns the coordinates of id.
func (g *Graph) Position(id string) (x, y float64, err error) {
	v, err := g.Vertex(id)
	if err != nil {
		return 0, 0, err
	}

	return v.X, v.Y, nil
}

// SetPosition moves vertex id to (x, y).
func (g *Graph) SetPosition(id string, x, y float64) error {
	if !finite(x) || !finite(y) {
		return ErrBadPosition
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.X, v.Y = x, y

	return nil
}

// RemoveVertex deletes id and every incident edge.
//
// Complexity: O(V + E) for order-slice compaction.
func (g *Graph) RemoveVertex(id string) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	delete(g.vertices, id)
	g.vertexOrder = removeString(g.vertexOrder, id)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for nbr, eid := range g.adjacency[id] {
		delete(g.adjacency[nbr], id)
		delete(g.edges, eid)
		g.edgeOrder = removeString(g.edgeOrder, eid)
	}
	delete(g.adjacency, id)

	return nil
}

// Vertices returns all vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return append([]string(nil), g.vertexOrder...)
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertexOrder)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func removeString(s []string, x string) []string {
	for i, v := range s {
		if v == x {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
