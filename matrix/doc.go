// Package matrix provides the numerical substrate of graphic statics.
//
// The matrix package offers:
//
//   - Dense: a row-major, bounds-checked matrix with fast paths on *Dense.
//   - CSR: a compressed sparse row matrix assembled from triplets, used for
//     connectivity matrices and their Gram products (CᵗC).
//   - Products and stacking: Mul, Transpose, MatVec, VStack, Gram.
//   - Direct solves: LU with partial pivoting, Solve, Inverse, Cond1.
//   - Rank-revealing reduction: RREF with an explicit leftmost-pivot rule,
//     Rank and NonPivots.
//   - Least squares: normal equations (overdetermined) or minimum norm
//     (underdetermined) on top of the pivoted LU.
//   - ConjugateGradient on symmetric positive definite CSR systems.
//
// All kernels are deterministic (fixed loop orders, no map iteration) and
// return sentinel errors instead of panicking.
package matrix
