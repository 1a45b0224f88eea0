// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeWithID/RemoveEdge/HasEdge/
//       EdgeBetween/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new oriented edge from → to and returns its generated ID.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Check both endpoints exist (vertices are never created implicitly:
//     a planar vertex needs a position).
//  3. Lock muEdgeAdj, reject a second edge on the same unordered pair.
//  4. Generate eid atomically, store edge, mirror adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	return g.addEdge("", from, to)
}

// AddEdgeWithID is AddEdge with a caller-chosen edge ID.
// Errors additionally include ErrDuplicateEdge.
func (g *Graph) AddEdgeWithID(eid, from, to string) error {
	if eid == "" {
		return ErrEmptyVertexID
	}
	_, err := g.addEdge(eid, from, to)

	return err
}

func (g *Graph) addEdge(eid, from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	g.muVert.RLock()
	_, okFrom := g.vertices[from]
	_, okTo := g.vertices[to]
	g.muVert.RUnlock()
	if !okFrom || !okTo {
		return "", ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, dup := g.adjacency[from][to]; dup {
		return "", ErrMultiEdgeNotAllowed
	}
	if eid == "" {
		for eid = nextEdgeID(g); g.edges[eid] != nil; eid = nextEdgeID(g) {
		}
	} else if g.edges[eid] != nil {
		return "", ErrDuplicateEdge
	}

	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	g.edgeOrder = append(g.edgeOrder, eid)
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// RemoveEdge deletes one edge.
// Complexity: O(E) for order-slice compaction.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	g.edgeOrder = removeString(g.edgeOrder, eid)
	delete(g.adjacency[e.From], e.To)
	delete(g.adjacency[e.To], e.From)

	return nil
}

// HasEdge reports whether an edge joins u and v in either orientation.
func (g *Graph) HasEdge(u, v string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeBetween returns the edge joining u and v (in its stored orientation).
func (g *Graph) EdgeBetween(u, v string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[u][v]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *g.edges[eid], nil
}

// Edges returns copies of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, len(g.edgeOrder))
	for i, eid := range g.edgeOrder {
		out[i] = *g.edges[eid]
	}

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edgeOrder)
}

// nextEdgeID returns the next unique textual edge ID.
//
// Concurrency:
//   - Safe for concurrent callers; atomic.AddUint64 reserves the next number.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
