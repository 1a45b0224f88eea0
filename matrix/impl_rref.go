// SPDX-License-Identifier: MIT

// Package matrix - reduced row echelon form and rank.
//
// Purpose:
//   - Reveal the column structure of a (possibly rank-deficient, non-square)
//     matrix: which columns carry a pivot and which are free.
//   - In graphic statics the free (non-pivot) columns of the equilibrium
//     matrix are the independent edges.
//
// Pivot rule:
//   - Columns are scanned left to right; the first column whose remaining
//     entries exceed the tolerance becomes the next pivot column. Inside a
//     column the row with the strictly largest |a| is chosen (upper row wins
//     ties). The set of pivot columns is therefore the lexicographically
//     smallest basis of the column space.

package matrix

import (
	"fmt"
	"math"
)

// RankTol returns the automatic rank threshold max(r, c)·ε·max|aᵢⱼ|.
func RankTol(m Matrix) float64 {
	r, c := m.Rows(), m.Cols()
	dim := r
	if c > dim {
		dim = c
	}

	return float64(dim) * epsilon * MaxAbs(m)
}

// epsilon is the float64 machine epsilon (2⁻⁵²).
const epsilon = 0x1p-52

// RREF returns the reduced row echelon form of m together with the indices of
// its pivot columns in increasing order.
//
// Implementation:
//   - Stage 1: copy m; resolve tolerance (WithRankTol or automatic).
//   - Stage 2: for each column, partial-pivot among the unreduced rows; skip
//     the column when the best candidate is ≤ tol (it is then non-pivot).
//   - Stage 3: normalize the pivot row and eliminate the column from every
//     other row (above and below).
//   - Stage 4: snap entries with |v| ≤ tol to exactly zero.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c).
func RREF(m Matrix, opts ...Option) (*Dense, []int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	o := gatherOptions(opts...)
	w := toDense(m.Clone())
	tol := o.rankTol
	if tol == 0 {
		tol = RankTol(w)
	}
	rows, cols := w.r, w.c
	pivots := make([]int, 0, rows)

	var (
		i, j, col, p, lead int
		best, v, f, piv    float64
	)
	for col = 0; col < cols && lead < rows; col++ {
		// Stage 2: pivot search in column col among rows lead..rows-1.
		p, best = lead, math.Abs(w.data[lead*cols+col])
		for i = lead + 1; i < rows; i++ {
			if v = math.Abs(w.data[i*cols+col]); v > best {
				p, best = i, v
			}
		}
		if best <= tol {
			for i = lead; i < rows; i++ {
				w.data[i*cols+col] = 0
			}
			continue
		}
		if p != lead {
			for j = 0; j < cols; j++ {
				w.data[lead*cols+j], w.data[p*cols+j] = w.data[p*cols+j], w.data[lead*cols+j]
			}
		}

		// Stage 3: normalize and eliminate.
		piv = w.data[lead*cols+col]
		for j = col; j < cols; j++ {
			w.data[lead*cols+j] /= piv
		}
		for i = 0; i < rows; i++ {
			if i == lead {
				continue
			}
			f = w.data[i*cols+col]
			if f == 0 {
				continue
			}
			for j = col; j < cols; j++ {
				w.data[i*cols+j] -= f * w.data[lead*cols+j]
			}
		}
		pivots = append(pivots, col)
		lead++
	}

	// Stage 4: clean round-off.
	for i = range w.data {
		if math.Abs(w.data[i]) <= tol {
			w.data[i] = 0
		}
	}

	return w, pivots, nil
}

// Rank returns the numerical rank of m (number of RREF pivots).
func Rank(m Matrix, opts ...Option) (int, error) {
	_, piv, err := RREF(m, opts...)
	if err != nil {
		return 0, err
	}

	return len(piv), nil
}

// NonPivots returns the complement of the pivot columns, ascending.
func NonPivots(m Matrix, opts ...Option) ([]int, error) {
	_, piv, err := RREF(m, opts...)
	if err != nil {
		return nil, err
	}

	return complementOf(piv, m.Cols()), nil
}

// complementOf lists 0..n-1 minus the sorted set idx.
func complementOf(idx []int, n int) []int {
	out := make([]int, 0, n-len(idx))
	k := 0
	for j := 0; j < n; j++ {
		if k < len(idx) && idx[k] == j {
			k++
			continue
		}
		out = append(out, j)
	}

	return out
}

// Nullity returns cols − rank, the dimension of the null space of m.
func Nullity(m Matrix, opts ...Option) (int, error) {
	r, err := Rank(m, opts...)
	if err != nil {
		return 0, fmt.Errorf("Nullity: %w", err)
	}

	return m.Cols() - r, nil
}
