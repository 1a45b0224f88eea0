// Package diagram holds the two reciprocal diagrams of graphic statics.
//
// A FormDiagram is the geometry of a structure: vertices (joints, supports,
// load application points) joined by edges (members, loads, reactions). Each
// edge carries a force density q, a force f, a length l and the angle a to its
// reciprocal. A ForceDiagram is the dual: each structural form edge has one
// force edge whose length is the magnitude of the member force.
//
// Both diagrams wrap a core.Graph for topology and positions and keep per
// vertex / per edge attributes beside it. Index maps (KeyIndex, EdgeIndex)
// follow insertion order and are recomputed from current state on every call;
// analysis code snapshots them once per operation.
//
// Writes that must be consistent (positions after a geometry update, edge
// attributes after a propagation) go through Update, or its halves
// SetPositions and SetEdgeAttrs, which validate every key before touching
// anything. CheckUpdate runs the same validation alone, so a caller writing
// two diagrams can check both first.
//
// Diagrams serialize to a JSON exchange document (Data) whose schema is
// available from Schema.
package diagram
