// SPDX-License-Identifier: MIT

// Package matrix - least-squares / minimum-norm solves on top of pivoted LU.
//
// Method selection by shape of A (r×c):
//   - r == c: direct solve A·x = b.
//   - r >  c: normal equations (AᵀA)·x = Aᵀb (least-squares solution).
//   - r <  c: minimum-norm solution x = Aᵀ·(AAᵀ)⁻¹·b.
//
// The condition number reported is that of the matrix actually factorized,
// so callers can reject or flag ill-posed systems with a single threshold.

package matrix

import (
	"errors"
	"math"
)

// SolveMethod names the strategy LeastSquares used.
type SolveMethod string

// Solve strategies.
const (
	MethodSquare  SolveMethod = "square"
	MethodNormal  SolveMethod = "normal-equations"
	MethodMinNorm SolveMethod = "minimum-norm"
)

// LstsqResult carries the solution and diagnostics of LeastSquares.
type LstsqResult struct {
	X      []float64
	Cond   float64 // κ₁ of the factorized system matrix (+Inf if exactly singular)
	Method SolveMethod
}

// LeastSquares solves a·x ≈ b choosing the strategy from the shape of a.
//
// Implementation:
//   - Stage 1: validate; handle empty shapes (no unknowns ⇒ empty x; no
//     equations ⇒ zero x).
//   - Stage 2: build the system matrix S (a, aᵀa or aaᵀ) and its right side.
//   - Stage 3: factorize S, record κ₁(S), solve; back-map through aᵀ for the
//     minimum-norm case.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - ErrSingular when S has an exactly zero pivot; the result is still
//     returned (X nil, Cond +Inf) so callers can report the condition.
//
// Complexity:
//   - Time O(r·c·min(r,c) + min(r,c)³), Space O(min(r,c)²).
func LeastSquares(a Matrix, b []float64) (*LstsqResult, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opLstsq, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opLstsq, err)
	}
	r, c := a.Rows(), a.Cols()
	if c == 0 {
		return &LstsqResult{X: []float64{}, Cond: 1, Method: MethodSquare}, nil
	}
	if r == 0 {
		return &LstsqResult{X: make([]float64, c), Cond: 1, Method: MethodMinNorm}, nil
	}

	at, err := Transpose(a)
	if err != nil {
		return nil, matrixErrorf(opLstsq, err)
	}
	var (
		sys    *Dense
		rhs    []float64
		method SolveMethod
	)
	switch {
	case r == c:
		sys, rhs, method = toDense(a), b, MethodSquare
	case r > c:
		if sys, err = Mul(at, a); err != nil {
			return nil, matrixErrorf(opLstsq, err)
		}
		if rhs, err = MatVec(at, b); err != nil {
			return nil, matrixErrorf(opLstsq, err)
		}
		method = MethodNormal
	default:
		if sys, err = Mul(a, at); err != nil {
			return nil, matrixErrorf(opLstsq, err)
		}
		rhs, method = b, MethodMinNorm
	}

	res := &LstsqResult{Method: method, Cond: math.Inf(1)}
	f, err := Factorize(sys)
	if err != nil {
		if errors.Is(err, ErrSingular) {
			return res, matrixErrorf(opLstsq, ErrSingular)
		}
		return nil, matrixErrorf(opLstsq, err)
	}
	if res.Cond, err = f.cond1(sys); err != nil {
		return nil, matrixErrorf(opLstsq, err)
	}
	y, err := f.Solve(rhs)
	if err != nil {
		return nil, matrixErrorf(opLstsq, err)
	}
	if method == MethodMinNorm {
		if y, err = MatVec(at, y); err != nil {
			return nil, matrixErrorf(opLstsq, err)
		}
	}
	res.X = y

	return res, nil
}
