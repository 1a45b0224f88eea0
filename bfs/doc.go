// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus connected components.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error).
//   - Per-edge filtering via WithFilterEdge (e.g. skip non-structural edges).
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - A force diagram is only solvable from its anchor when every vertex is
//     reachable through the structural edges; Reachable and Components answer
//     that before any linear system is assembled.
//
// Determinism
//
//	core.Graph reports incident edges in insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V·E) with core's linear incident-edge scan; O(V + E) traversal.
//   - Memory: O(V).
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if incident-edge lookup fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
