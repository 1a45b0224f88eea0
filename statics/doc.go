// Package statics implements the numerical core of 2D graphic statics on a
// pair of reciprocal diagrams.
//
// What:
//   - Connectivity and equilibrium matrices of a form diagram.
//   - Degrees of freedom: static indeterminacy k and mechanisms m, and a
//     canonical independent edge set (non-pivot columns of RREF(E)).
//   - Force-density propagation from the independent edges to all others.
//   - Reciprocal geometry updates: form from force (Gauss–Seidel on parallel
//     line constraints) and force from form (sparse least squares).
//   - A two-state session that decides which diagram is authoritative.
//
// Conventions:
//   - Vertex order is the diagram's Keys() order and edge order its Edges()
//     order; every matrix is rebuilt from current state on each call.
//   - Checks precede writes: a failed call leaves both diagrams untouched.
//   - Non-fatal conditions are returned as Warning values on results and
//     logged at WARN on the configured logger.
package statics
