package statics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphstatics/diagram"
	"github.com/katalvlaran/graphstatics/matrix"
)

// Op tags used in error wrapping.
const (
	opConnectivity = "Connectivity"
	opEquilibrium  = "EquilibriumMatrix"
	opEdgeVectors  = "EdgeVectors"
	opIdentifyDOF  = "IdentifyDOF"
	opCountDOF     = "CountDOF"
	opSolveDep     = "SolveDependent"
	opUpdateQ      = "UpdateQFromQind"
	opFormFromFrc  = "UpdateFormFromForce"
	opForceFromFrm = "UpdateForceFromForm"
)

// Connectivity builds the |E|×n signed connectivity matrix: row e carries −1
// at column i and +1 at column j for edges[e] = (i, j).
//
// Errors:
//   - ErrDimension when n ≤ 0, an index lies outside [0, n) or an edge loops.
func Connectivity(edges [][2]int, n int) (*matrix.CSR, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: %d vertices: %w", opConnectivity, n, ErrDimension)
	}
	c, err := matrix.NewConnectivity(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opConnectivity, ErrDimension, err)
	}

	return c, nil
}

// EdgeVectors returns C·xy, the (Δx, Δy) of every edge.
func EdgeVectors(c *matrix.CSR, xy [][2]float64) ([][2]float64, error) {
	if c == nil || len(xy) != c.Cols() {
		return nil, fmt.Errorf("%s: %d positions for %d columns: %w", opEdgeVectors, len(xy), colsOf(c), ErrDimension)
	}
	out := make([][2]float64, c.Rows())
	for e := range out {
		c.RowNonZeros(e, func(j int, v float64) {
			out[e][0] += v * xy[j][0]
			out[e][1] += v * xy[j][1]
		})
	}

	return out, nil
}

// EdgeLengths returns |C·xy| per edge.
func EdgeLengths(c *matrix.CSR, xy [][2]float64) ([]float64, error) {
	uv, err := EdgeVectors(c, xy)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(uv))
	for i, d := range uv {
		out[i] = math.Hypot(d[0], d[1])
	}

	return out, nil
}

func colsOf(c *matrix.CSR) int {
	if c == nil {
		return 0
	}

	return c.Cols()
}

// EquilibriumMatrix assembles E = [C_freeᵗ·diag(Δx); C_freeᵗ·diag(Δy)], of
// shape 2·len(free) × |E|: the x rows of every free vertex, then the y rows.
//
// Implementation:
//   - Stage 1: validate xy against C and free for range and duplicates.
//   - Stage 2: Δ = C·xy.
//   - Stage 3: walk the non-zeros of Cᵗ restricted to the free columns and
//     scale each by the Δx (top block) and Δy (bottom block) of its edge.
//
// Errors:
//   - ErrDimension for len(xy) ≠ C.Cols() or a bad free index.
//
// Complexity:
//   - Time O(nnz(C) + |free|·|E|), Space O(|free|·|E|).
func EquilibriumMatrix(c *matrix.CSR, xy [][2]float64, free []int) (*matrix.Dense, error) {
	uv, err := EdgeVectors(c, xy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEquilibrium, err)
	}
	n := c.Cols()
	seen := make(map[int]bool, len(free))
	for _, i := range free {
		if i < 0 || i >= n || seen[i] {
			return nil, fmt.Errorf("%s: free index %d: %w", opEquilibrium, i, ErrDimension)
		}
		seen[i] = true
	}

	nf, ne := len(free), c.Rows()
	e, err := matrix.NewZeros(2*nf, ne)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEquilibrium, err)
	}
	ct := c.Transpose()
	for r, i := range free {
		ct.RowNonZeros(i, func(edge int, v float64) {
			_ = e.Set(r, edge, v*uv[edge][0])
			_ = e.Set(nf+r, edge, v*uv[edge][1])
		})
	}

	return e, nil
}

// system is the transient matrix state of one form diagram.
type system struct {
	keys   []string
	edges  []string
	index  map[string]int // key → column of C
	eindex map[string]int // edge ID → row of C
	xy     [][2]float64
	c      *matrix.CSR
	free   []int
}

// buildSystem captures the indexing and connectivity of d, with the free
// vertices chosen by isFree.
func buildSystem(d *diagram.Diagram, isFree func(key string) bool) (*system, error) {
	s := &system{keys: d.Keys(), index: d.KeyIndex(), eindex: d.EdgeIndex(), xy: d.XY()}
	for _, e := range d.Edges() {
		s.edges = append(s.edges, e.ID)
	}
	var err error
	if s.c, err = Connectivity(d.IndexPairs(), len(s.keys)); err != nil {
		return nil, err
	}
	for i, k := range s.keys {
		if isFree(k) {
			s.free = append(s.free, i)
		}
	}

	return s, nil
}

func (s *system) equilibrium() (*matrix.Dense, error) {
	return EquilibriumMatrix(s.c, s.xy, s.free)
}
