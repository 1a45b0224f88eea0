// SPDX-License-Identifier: MIT

// Package matrix - sparse assembly (triplets) and compressed sparse rows.
//
// Purpose:
//   - Assemble connectivity-style matrices entry by entry (Put) the way finite
//     element codes assemble stiffness: duplicates are summed at compression.
//   - Store them as CSR for O(nnz) products and for the Gram matrix CᵗC used
//     by the conjugate-gradient solver.
//
// Determinism:
//   - Compression sorts each row by column index; summation order of duplicate
//     entries follows insertion order.

package matrix

import (
	"fmt"
	"sort"
)

// Triplet collects (i, j, v) entries of an r×c sparse matrix.
type Triplet struct {
	r, c int
	ii   []int
	jj   []int
	vv   []float64
}

// NewTriplet allocates an empty r×c triplet with room for capacity entries.
func NewTriplet(rows, cols, capacity int) (*Triplet, error) {
	if rows < 0 || cols < 0 || capacity < 0 {
		return nil, matrixErrorf(opTriplet, ErrInvalidDimensions)
	}

	return &Triplet{
		r:  rows,
		c:  cols,
		ii: make([]int, 0, capacity),
		jj: make([]int, 0, capacity),
		vv: make([]float64, 0, capacity),
	}, nil
}

// Put appends v at (i, j). Repeated positions are summed by ToCSR.
func (t *Triplet) Put(i, j int, v float64) error {
	if i < 0 || i >= t.r || j < 0 || j >= t.c {
		return matrixErrorf(opTriplet, fmt.Errorf("Put(%d,%d): %w", i, j, ErrOutOfRange))
	}
	if isNonFinite(v) {
		return matrixErrorf(opTriplet, fmt.Errorf("Put(%d,%d): %w", i, j, ErrNaNInf))
	}
	t.ii = append(t.ii, i)
	t.jj = append(t.jj, j)
	t.vv = append(t.vv, v)

	return nil
}

// Len returns the number of stored (uncompressed) entries.
func (t *Triplet) Len() int { return len(t.vv) }

// ToCSR compresses the triplet.
//
// Implementation:
//   - Stage 1: count entries per row and build row pointers (prefix sums).
//   - Stage 2: scatter entries into their row slots.
//   - Stage 3: sort each row by column, sum duplicates, drop exact zeros.
//
// Complexity:
//   - Time O(nnz·log(nnz/r)), Space O(nnz + r).
func (t *Triplet) ToCSR() *CSR {
	counts := make([]int, t.r+1)
	for _, i := range t.ii {
		counts[i+1]++
	}
	for i := 0; i < t.r; i++ {
		counts[i+1] += counts[i]
	}
	cols := make([]int, len(t.vv))
	vals := make([]float64, len(t.vv))
	next := make([]int, t.r)
	copy(next, counts[:t.r])
	for k := range t.vv {
		p := next[t.ii[k]]
		cols[p], vals[p] = t.jj[k], t.vv[k]
		next[t.ii[k]]++
	}

	out := &CSR{r: t.r, c: t.c, rowPtr: make([]int, t.r+1)}
	for i := 0; i < t.r; i++ {
		lo, hi := counts[i], counts[i+1]
		row := entries{cols: cols[lo:hi], vals: vals[lo:hi]}
		sort.Stable(row)
		for k := lo; k < hi; k++ {
			n := len(out.colIdx)
			if n > out.rowPtr[i] && out.colIdx[n-1] == cols[k] {
				out.val[n-1] += vals[k]
				continue
			}
			out.colIdx = append(out.colIdx, cols[k])
			out.val = append(out.val, vals[k])
		}
		out.dropZeros(i)
		out.rowPtr[i+1] = len(out.colIdx)
	}

	return out
}

// entries sorts a row segment by column.
type entries struct {
	cols []int
	vals []float64
}

func (e entries) Len() int           { return len(e.cols) }
func (e entries) Less(a, b int) bool { return e.cols[a] < e.cols[b] }
func (e entries) Swap(a, b int) {
	e.cols[a], e.cols[b] = e.cols[b], e.cols[a]
	e.vals[a], e.vals[b] = e.vals[b], e.vals[a]
}

// CSR is a read-only compressed sparse row matrix.
type CSR struct {
	r, c   int
	rowPtr []int     // len r+1; row i occupies [rowPtr[i], rowPtr[i+1])
	colIdx []int     // column of each stored value, ascending within a row
	val    []float64 // stored values
}

var _ Matrix = (*CSR)(nil)

// dropZeros removes entries of the row under construction that cancelled out.
func (s *CSR) dropZeros(i int) {
	w := s.rowPtr[i]
	for k := s.rowPtr[i]; k < len(s.colIdx); k++ {
		if s.val[k] != 0 {
			s.colIdx[w], s.val[w] = s.colIdx[k], s.val[k]
			w++
		}
	}
	s.colIdx, s.val = s.colIdx[:w], s.val[:w]
}

// Rows returns the number of rows.
func (s *CSR) Rows() int { return s.r }

// Cols returns the number of columns.
func (s *CSR) Cols() int { return s.c }

// NNZ returns the number of stored non-zeros.
func (s *CSR) NNZ() int { return len(s.val) }

// At returns s[i,j] by binary search in row i.
func (s *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return 0, matrixErrorf(opCSR, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange))
	}
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]
	k := lo + sort.SearchInts(s.colIdx[lo:hi], j)
	if k < hi && s.colIdx[k] == j {
		return s.val[k], nil
	}

	return 0, nil
}

// Set is not supported on compressed storage; assemble through a Triplet.
func (s *CSR) Set(i, j int, _ float64) error {
	return matrixErrorf(opCSR, fmt.Errorf("Set(%d,%d): %w", i, j, ErrMatrixNotImplemented))
}

// Clone returns a deep copy.
func (s *CSR) Clone() Matrix {
	return &CSR{
		r:      s.r,
		c:      s.c,
		rowPtr: append([]int(nil), s.rowPtr...),
		colIdx: append([]int(nil), s.colIdx...),
		val:    append([]float64(nil), s.val...),
	}
}

// RowNonZeros calls fn for each stored entry of row i in column order.
func (s *CSR) RowNonZeros(i int, fn func(j int, v float64)) {
	for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
		fn(s.colIdx[k], s.val[k])
	}
}

// MulVec computes y = s·x in O(nnz).
func (s *CSR) MulVec(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, s.c); err != nil {
		return nil, matrixErrorf(opCSR, err)
	}
	y := make([]float64, s.r)
	for i := 0; i < s.r; i++ {
		sum := ZeroSum
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			sum += s.val[k] * x[s.colIdx[k]]
		}
		y[i] = sum
	}

	return y, nil
}

// TMulVec computes y = sᵀ·x in O(nnz) without forming the transpose.
func (s *CSR) TMulVec(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, s.r); err != nil {
		return nil, matrixErrorf(opCSR, err)
	}
	y := make([]float64, s.c)
	for i := 0; i < s.r; i++ {
		if x[i] == 0 {
			continue
		}
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			y[s.colIdx[k]] += s.val[k] * x[i]
		}
	}

	return y, nil
}

// Transpose returns sᵀ as a new CSR.
func (s *CSR) Transpose() *CSR {
	t, _ := NewTriplet(s.c, s.r, len(s.val))
	for i := 0; i < s.r; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			_ = t.Put(s.colIdx[k], i, s.val[k])
		}
	}

	return t.ToCSR()
}

// ToDense materializes s.
func (s *CSR) ToDense() *Dense {
	d := newDenseWithPolicy(s.r, s.c, DefaultValidateNaNInf)
	for i := 0; i < s.r; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			d.data[i*s.c+s.colIdx[k]] = s.val[k]
		}
	}

	return d
}

// Gram returns sᵀ·s (c×c, symmetric).
//
// Implementation:
//   - Every row contributes the outer product of its non-zeros; contributions
//     are accumulated in a triplet and compressed once.
//
// Complexity:
//   - Time O(Σ nnz(row)²), Space O(same).
func (s *CSR) Gram() *CSR {
	capacity := 0
	for i := 0; i < s.r; i++ {
		n := s.rowPtr[i+1] - s.rowPtr[i]
		capacity += n * n
	}
	t, _ := NewTriplet(s.c, s.c, capacity)
	for i := 0; i < s.r; i++ {
		lo, hi := s.rowPtr[i], s.rowPtr[i+1]
		for a := lo; a < hi; a++ {
			for b := lo; b < hi; b++ {
				_ = t.Put(s.colIdx[a], s.colIdx[b], s.val[a]*s.val[b])
			}
		}
	}

	return t.ToCSR()
}

// Induced extracts rowsIdx × colsIdx as a new CSR; index order is preserved.
func (s *CSR) Induced(rowsIdx, colsIdx []int) (*CSR, error) {
	colMap := make(map[int]int, len(colsIdx))
	for jj, j := range colsIdx {
		if j < 0 || j >= s.c {
			return nil, matrixErrorf(opCSR, fmt.Errorf("Induced col %d: %w", j, ErrOutOfRange))
		}
		colMap[j] = jj
	}
	t, _ := NewTriplet(len(rowsIdx), len(colsIdx), 0)
	for ii, i := range rowsIdx {
		if i < 0 || i >= s.r {
			return nil, matrixErrorf(opCSR, fmt.Errorf("Induced row %d: %w", i, ErrOutOfRange))
		}
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			if jj, ok := colMap[s.colIdx[k]]; ok {
				_ = t.Put(ii, jj, s.val[k])
			}
		}
	}

	return t.ToCSR(), nil
}

// Column returns column j as a dense vector.
func (s *CSR) Column(j int) ([]float64, error) {
	if j < 0 || j >= s.c {
		return nil, matrixErrorf(opCSR, fmt.Errorf("Column(%d): %w", j, ErrOutOfRange))
	}
	out := make([]float64, s.r)
	for i := 0; i < s.r; i++ {
		out[i], _ = s.At(i, j)
	}

	return out, nil
}
