// File: methods_adjacent.go
// Role: Neighborhood queries: NeighborIDs, IncidentEdges, Degree, Leaves.
// Determinism:
//   - Neighbors are reported in the insertion order of the connecting edges.

package core

// NeighborIDs returns the vertices adjacent to id.
//
// Implementation:
//   - Stage 1: Verify the vertex exists.
//   - Stage 2: Walk edgeOrder and collect the opposite endpoint of incident edges.
//
// Complexity: O(E).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.IncidentEdges(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.Other(id)
	}

	return out, nil
}

// IncidentEdges returns copies of the edges touching id, in insertion order.
func (g *Graph) IncidentEdges(id string) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		if e.From == id || e.To == id {
			out = append(out, *e)
		}
	}

	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}

// Leaves returns the degree-1 vertices in insertion order.
func (g *Graph) Leaves() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var out []string
	for _, id := range g.vertexOrder {
		if len(g.adjacency[id]) == 1 {
			out = append(out, id)
		}
	}

	return out
}
