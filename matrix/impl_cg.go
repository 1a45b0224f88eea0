// SPDX-License-Identifier: MIT

// Package matrix - conjugate gradient for symmetric positive definite systems.
//
// Purpose:
//   - Solve A·x = b where A is SPD and typically sparse (reduced CᵗC Laplacians).
//
// Stopping rule:
//   - ‖b − A·x‖₂ ≤ tol·‖b‖₂ (tol from WithResidualTol) or the iteration budget
//     (WithMaxIter, default 10·n) is exhausted, whichever comes first.

package matrix

import "fmt"

// LinearOperator is the minimal surface CG needs: a square action x ↦ A·x.
// *Dense and *CSR both satisfy it.
type LinearOperator interface {
	Rows() int
	Cols() int
	MulVec(x []float64) ([]float64, error)
}

var (
	_ LinearOperator = (*Dense)(nil)
	_ LinearOperator = (*CSR)(nil)
)

// CGResult reports how a ConjugateGradient run ended.
type CGResult struct {
	X          []float64 // solution estimate
	Iterations int       // iterations performed
	Residual   float64   // final relative residual ‖r‖/‖b‖ (absolute when b = 0)
}

// ConjugateGradient solves a·x = b starting from x0 (nil ⇒ zero vector).
//
// Implementation:
//   - Stage 1: validate shapes; r = b − A·x0, p = r.
//   - Stage 2: iterate α = rᵀr / pᵀAp, x += αp, r −= αAp, β = r'ᵀr' / rᵀr,
//     p = r + βp until the relative residual meets the tolerance.
//   - Stage 3: a non-positive curvature pᵀAp ≤ 0 aborts with ErrNotPositiveDefinite.
//
// Errors:
//   - ErrNonSquare, ErrDimensionMismatch, ErrNotPositiveDefinite, ErrNoConvergence
//     (the partial result is still returned with ErrNoConvergence).
//
// Complexity:
//   - Time O(iter · cost(MulVec)), Space O(n).
func ConjugateGradient(a LinearOperator, b, x0 []float64, opts ...Option) (*CGResult, error) {
	if a == nil {
		return nil, matrixErrorf(opCG, ErrNilMatrix)
	}
	n := a.Rows()
	if a.Cols() != n {
		return nil, matrixErrorf(opCG, ErrNonSquare)
	}
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opCG, err)
	}
	o := gatherOptions(opts...)
	maxIter := o.maxIter
	if maxIter == 0 {
		maxIter = 10 * n
	}

	x := make([]float64, n)
	if x0 != nil {
		if err := ValidateVecLen(x0, n); err != nil {
			return nil, matrixErrorf(opCG, err)
		}
		copy(x, x0)
	}
	ax, err := a.MulVec(x)
	if err != nil {
		return nil, matrixErrorf(opCG, err)
	}
	r := make([]float64, n)
	for i := range r {
		r[i] = b[i] - ax[i]
	}
	p := append([]float64(nil), r...)

	bnorm := Norm2(b)
	if bnorm == 0 {
		bnorm = 1
	}
	rr := Dot(r, r)
	res := &CGResult{X: x, Residual: Norm2(r) / bnorm}
	if res.Residual <= o.residualTol {
		return res, nil
	}

	for it := 1; it <= maxIter; it++ {
		ap, err := a.MulVec(p)
		if err != nil {
			return nil, matrixErrorf(opCG, err)
		}
		pap := Dot(p, ap)
		if pap <= 0 {
			return nil, matrixErrorf(opCG, fmt.Errorf("iteration %d: %w", it, ErrNotPositiveDefinite))
		}
		alpha := rr / pap
		for i := 0; i < n; i++ {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		rrNext := Dot(r, r)
		res.Iterations = it
		res.Residual = Norm2(r) / bnorm
		if res.Residual <= o.residualTol {
			return res, nil
		}
		beta := rrNext / rr
		for i := 0; i < n; i++ {
			p[i] = r[i] + beta*p[i]
		}
		rr = rrNext
	}

	return res, matrixErrorf(opCG, fmt.Errorf("%d iterations, residual %.3g: %w", res.Iterations, res.Residual, ErrNoConvergence))
}
