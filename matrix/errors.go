// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation
// tag via matrixErrorf) and callers match them with errors.Is. No kernel
// panics on user-triggered conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping. Wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary; errors.Is still matches.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> numerical failure.

var (
	// ErrBadShape is returned when a requested window or stacking shape is invalid.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a pivot vanishes (within tolerance) during
	// factorization, or a condition estimate is infinite.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotPositiveDefinite is returned by the conjugate-gradient solver when a
	// search direction has non-positive curvature (pᵀAp ≤ 0).
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrNoConvergence is returned when an iterative solver exhausts its
	// iteration budget without meeting the residual tolerance.
	ErrNoConvergence = errors.New("matrix: iterative solver did not converge")

	// ErrMatrixNotImplemented marks an intentionally unsupported operation
	// (e.g. Set on a compressed sparse matrix).
	ErrMatrixNotImplemented = errors.New("matrix: operation not implemented")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)

