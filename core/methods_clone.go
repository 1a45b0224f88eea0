// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over nextEdgeID and insertion order.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: vertices, edges, and adjacency.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithCapacity(len(g.vertexOrder), len(g.edgeOrder)))
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for _, id := range g.vertexOrder {
		v := *g.vertices[id]
		clone.vertices[id] = &v
		clone.vertexOrder = append(clone.vertexOrder, id)
		clone.adjacency[id] = make(map[string]string, len(g.adjacency[id]))
	}
	for _, eid := range g.edgeOrder {
		e := *g.edges[eid]
		clone.edges[eid] = &e
		clone.edgeOrder = append(clone.edgeOrder, eid)
		clone.adjacency[e.From][e.To] = eid
		clone.adjacency[e.To][e.From] = eid
	}

	return clone
}

// Clear removes all vertices and edges and resets the edge ID sequence.
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	g.vertices = make(map[string]*Vertex)
	g.vertexOrder = nil
	g.edges = make(map[string]*Edge)
	g.edgeOrder = nil
	g.adjacency = make(map[string]map[string]string)
	atomic.StoreUint64(&g.nextEdgeID, 0)
}
