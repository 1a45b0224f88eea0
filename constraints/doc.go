// Package constraints assembles linear geometric constraints on the vertices
// of a diagram into a Jacobian and a residual vector.
//
// Columns follow the layout [x₀ … x_{n−1} | y₀ … y_{n−1}] of a diagram with n
// vertices in key-index order, so a constraint row can be stacked under the
// equilibrium matrix of the same diagram.
//
//	c := constraints.NewCollection()
//	h, _ := constraints.HorizontalFix(form, "a")
//	_ = c.Add(h)
//	jac, res, err := c.Compute()
package constraints
