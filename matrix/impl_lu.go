// SPDX-License-Identifier: MIT

// Package matrix - LU factorization with partial pivoting (PA = LU).
//
// Purpose:
//   - Solve square systems robustly (row exchanges on the largest pivot).
//   - Provide Inverse and the 1-norm condition number κ₁(A) = ‖A‖₁·‖A⁻¹‖₁.
//
// Determinism:
//   - Pivot choice is the first row holding the strictly largest |a|; ties keep
//     the upper row, so identical inputs always produce identical factors.

package matrix

import (
	"fmt"
	"math"
)

// LU holds the compact factors of PA = LU.
// The strict lower triangle of lu stores L (unit diagonal implied); the upper
// triangle including the diagonal stores U. piv[i] is the source row of row i.
type LU struct {
	n   int
	lu  *Dense
	piv []int
}

// Factorize computes PA = LU with partial pivoting.
//
// Implementation:
//   - Stage 1: validate non-nil square input; copy into a working Dense.
//   - Stage 2: for k = 0..n−1 pick the row p ≥ k maximizing |a[p,k]|, swap
//     rows p and k, store multipliers a[i,k]/a[k,k] below the pivot and
//     update the trailing block.
//   - Stage 3: an exactly zero pivot aborts with ErrSingular.
//
// Behavior highlights:
//   - Nearly singular matrices factor successfully; use Cond1 to judge them.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(a Matrix) (*LU, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := a.Rows()
	w := toDense(a.Clone())
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}

	var (
		i, j, k, p int
		best, v, f float64
		rowK, rowI int
	)
	for k = 0; k < n; k++ {
		// Stage 2: partial pivot search.
		p, best = k, math.Abs(w.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(w.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				w.data[k*n+j], w.data[p*n+j] = w.data[p*n+j], w.data[k*n+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
		}

		// Elimination below the pivot.
		rowK = k * n
		for i = k + 1; i < n; i++ {
			rowI = i * n
			f = w.data[rowI+k] / w.data[rowK+k]
			w.data[rowI+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				w.data[rowI+j] -= f * w.data[rowK+j]
			}
		}
	}

	return &LU{n: n, lu: w, piv: piv}, nil
}

// Solve returns x with A·x = b using the stored factors.
//
// Implementation:
//   - Stage 1: permute b by piv.
//   - Stage 2: forward substitution with unit-diagonal L.
//   - Stage 3: back substitution with U.
//
// Complexity:
//   - Time O(n²), Space O(n).
func (f *LU) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n, d := f.n, f.lu.data
	x := make([]float64, n)
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		x[i] = b[f.piv[i]]
	}
	for i = 0; i < n; i++ {
		sum = x[i]
		for j = 0; j < i; j++ {
			sum -= d[i*n+j] * x[j]
		}
		x[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= d[i*n+j] * x[j]
		}
		x[i] = sum / d[i*n+i]
	}

	return x, nil
}

// Inverse returns A⁻¹ column by column from the factors.
func (f *LU) Inverse() (*Dense, error) {
	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	e := make([]float64, n)
	var i, j int
	for j = 0; j < n; j++ {
		for i = range e {
			e[i] = 0
		}
		e[j] = 1
		col, err := f.Solve(e)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+j] = col[i]
		}
	}

	return inv, nil
}

// Det returns det(A) from the factors.
func (f *LU) Det() float64 {
	det := 1.0
	for i := 0; i < f.n; i++ {
		det *= f.lu.data[i*f.n+i]
	}
	// parity of the permutation
	seen := make([]bool, f.n)
	for i := 0; i < f.n; i++ {
		if seen[i] {
			continue
		}
		cycle := 0
		for j := i; !seen[j]; j = f.piv[j] {
			seen[j] = true
			cycle++
		}
		if cycle%2 == 0 {
			det = -det
		}
	}

	return det
}

// Solve is a convenience wrapper: Factorize(a) then Solve(b).
func Solve(a Matrix, b []float64) ([]float64, error) {
	f, err := Factorize(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// Inverse returns a⁻¹ or ErrSingular.
func Inverse(a Matrix) (*Dense, error) {
	f, err := Factorize(a)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return f.Inverse()
}

// Cond1 returns the 1-norm condition number κ₁(a) = ‖a‖₁·‖a⁻¹‖₁.
//
// Implementation:
//   - Stage 1: factorize; an exact zero pivot yields +Inf (no error).
//   - Stage 2: form a⁻¹ from the factors and take both column-sum norms.
//
// Behavior highlights:
//   - The value is exact, not an estimate; diagrams in graphic statics are
//     small enough that the O(n³) inverse is affordable.
//   - An empty (0×0) matrix has κ₁ = 1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Cond1(a Matrix) (float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	if a.Rows() == 0 {
		return 1, nil
	}
	f, err := Factorize(a)
	if err != nil {
		return math.Inf(1), nil
	}

	return f.cond1(a)
}

func (f *LU) cond1(a Matrix) (float64, error) {
	inv, err := f.Inverse()
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	na, err := Norm1(a)
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	ni, err := Norm1(inv)
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	k := na * ni
	if math.IsNaN(k) {
		return math.Inf(1), nil
	}

	return k, nil
}
