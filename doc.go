// Package graphstatics computes reciprocal form and force diagrams of
// pin-jointed plane structures: graphic statics as linear algebra.
//
// 🚀 What is graphstatics?
//
//	A pure-Go engine that keeps a form diagram (the geometry of a structure)
//	and its force diagram (the polygon of forces) consistent:
//		• Degrees of freedom: static indeterminacy k, mechanisms m, independent edges
//		• Force-density propagation from the independent edges
//		• Form update from an edited force diagram (parallel-line fitting)
//		• Force update from an edited form diagram
//		• Dual construction of the force diagram of a plane form diagram
//		• Constraint Jacobians, JSON exchange, PNG plots and a CLI
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        — thread-safe graph storage with vertex positions
//	matrix/      — dense and CSR matrices, RREF, LU, least squares, CG
//	bfs/         — reachability and connected components
//	diagram/     — form and force diagrams, edge correspondence, dual, JSON
//	statics/     — equilibrium matrix, DOF, propagation, reciprocal updates
//	constraints/ — constraint collections and their Jacobian
//	builder/     — deterministic sample structures (truss, funicular, ring)
//	render/      — PNG plots coloured by force sign
//	cmd/agstatics — command line front end
//
// Quick start:
//
//	form, _ := builder.BuildForm(nil, nil, builder.Truss(4))
//	dof, _ := statics.IdentifyDOF(form, statics.WithMarkIndependent())
//	force, _ := diagram.DualOf(form)
//	res, _ := statics.NewReciprocal(form, force).Update()
package graphstatics
