// Package core: Vertex, Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates AddVertex was called with an existing ID.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates AddEdgeWithID was called with an existing edge ID.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadPosition indicates a non-finite vertex coordinate.
	ErrBadPosition = errors.New("core: vertex position must be finite")
)

// Vertex is a positioned node.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// X, Y are planar coordinates.
	X, Y float64
}

// Edge is an oriented connection From → To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the tail vertex ID.
	From string

	// To is the head vertex ID.
	To string
}

// Other returns the endpoint of e opposite to id ("" if id is not an endpoint).
func (e Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	}

	return ""
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex and edge catalogs.
func WithCapacity(vertices, edges int) GraphOption {
	return func(g *Graph) {
		if vertices > 0 {
			g.vertices = make(map[string]*Vertex, vertices)
			g.vertexOrder = make([]string, 0, vertices)
			g.adjacency = make(map[string]map[string]string, vertices)
		}
		if edges > 0 {
			g.edges = make(map[string]*Edge, edges)
			g.edgeOrder = make([]string, 0, edges)
		}
	}
}

// Graph is the core in-memory planar graph.
//
// muVert protects the vertex catalog; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, vertexOrder
	muEdgeAdj sync.RWMutex // guards edges, edgeOrder, adjacency

	nextEdgeID  uint64             // atomic edge ID generator
	vertices    map[string]*Vertex // vertex ID → Vertex
	vertexOrder []string           // insertion order
	edges       map[string]*Edge   // edge ID → Edge
	edgeOrder   []string           // insertion order

	// adjacency[u][v] = edge ID joining u and v (mirrored for both endpoints)
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
