// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose, scaling, subtraction, stacking and
// matrix-vector products. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Factorizations live in impl_lu.go, reductions in impl_rref.go.
//   - Every kernel validates with the central validators and wraps via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitution and accumulation loops.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting an exact zero pivot.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opVStack    = "VStack"
	opNorm1     = "Norm1"
	opInverse   = "Inverse"
	opLU        = "LU"
	opSolve     = "Solve"
	opCond      = "Cond1"
	opRREF      = "RREF"
	opLstsq     = "LeastSquares"
	opCG        = "ConjugateGradient"
	opTriplet   = "Triplet"
	opCSR       = "CSR"
	opIncidence = "Incidence"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m as *Dense, materializing a copy for other implementations.
func toDense(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d
	}
	if s, ok := m.(*CSR); ok {
		return s.ToDense()
	}
	out := newDenseWithPolicy(m.Rows(), m.Cols(), DefaultValidateNaNInf)
	var i, j int
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			out.data[i*out.c+j], _ = m.At(i, j)
		}
	}

	return out
}

// Mul computes the matrix product a·b.
//
// Implementation:
//   - Stage 1: ValidateNotNil on both operands, then ValidateMulCompatible.
//   - Stage 2: materialize operands as *Dense and run the i-k-j loop on flat
//     buffers, skipping zero multiplicands.
//
// Behavior highlights:
//   - Zero inner dimension is legal and yields a zero matrix of shape a.Rows×b.Cols.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, db := toDense(a), toDense(b)
	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d := toDense(m)
	res, err := newDenseZeroOK(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*res.c+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	res := toDense(m.Clone())
	for i := range res.data {
		res.data[i] *= alpha
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Implementation:
//   - Stage 1: validate non-nil and len(x) == m.Cols().
//   - Stage 2: row-wise dot products (CSR dispatches to its own kernel).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c) dense, O(nnz) sparse; Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if s, ok := m.(*CSR); ok {
		return s.MulVec(x)
	}
	d := toDense(m)
	y := make([]float64, d.r)
	var i, j, base int
	var sum float64
	for i = 0; i < d.r; i++ {
		base = i * d.c
		sum = ZeroSum
		for j = 0; j < d.c; j++ {
			sum += d.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// VStack stacks the operands vertically: [a; b; ...].
// All operands must share the same column count. Zero-row blocks are allowed.
func VStack(blocks ...Matrix) (*Dense, error) {
	if len(blocks) == 0 {
		return nil, matrixErrorf(opVStack, ErrBadShape)
	}
	cols, rows := -1, 0
	for _, b := range blocks {
		if err := ValidateNotNil(b); err != nil {
			return nil, matrixErrorf(opVStack, err)
		}
		if cols >= 0 && b.Cols() != cols {
			return nil, matrixErrorf(opVStack, ErrDimensionMismatch)
		}
		cols = b.Cols()
		rows += b.Rows()
	}
	res, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	off := 0
	for _, b := range blocks {
		d := toDense(b)
		copy(res.data[off:], d.data)
		off += len(d.data)
	}

	return res, nil
}

// Norm1 returns the maximum absolute column sum ‖m‖₁.
func Norm1(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm1, err)
	}
	d := toDense(m)
	best := 0.0
	var i, j int
	var s float64
	for j = 0; j < d.c; j++ {
		s = ZeroSum
		for i = 0; i < d.r; i++ {
			s += math.Abs(d.data[i*d.c+j])
		}
		if s > best {
			best = s
		}
	}

	return best, nil
}

// MaxAbs returns max |mᵢⱼ| (0 for an empty matrix).
func MaxAbs(m Matrix) float64 {
	d := toDense(m)
	best := 0.0
	for _, v := range d.data {
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best
}

// Dot returns the inner product of equally long vectors.
func Dot(x, y []float64) float64 {
	s := ZeroSum
	for i := range x {
		s += x[i] * y[i]
	}

	return s
}

// Norm2 returns the Euclidean norm of x.
func Norm2(x []float64) float64 { return math.Sqrt(Dot(x, x)) }
