// Package core provides a thread-safe, in-memory planar graph: vertices carry
// (x, y) positions and edges carry an orientation (From → To).
//
// The Graph G = (V,E) is the topological substrate of form and force diagrams:
//
//   - Vertices and edges enumerate in insertion order, so matrix rows and
//     columns built from them are reproducible.
//   - Edges are oriented; adjacency is symmetric. At most one edge may join an
//     unordered pair {u, v} and self-loops are rejected.
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …); explicit IDs
//     are accepted through AddEdgeWithID for round-tripping stored diagrams.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//     to minimize lock contention under concurrency.
//
// Lock order is always muVert → muEdgeAdj.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex or edge ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrDuplicateVertex     - AddVertex on an existing ID.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrDuplicateEdge       - AddEdgeWithID on an existing edge ID.
//	ErrLoopNotAllowed      - from == to.
//	ErrMultiEdgeNotAllowed - a second edge joining the same pair.
//	ErrBadPosition         - NaN or ±Inf coordinate.
package core
