package statics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphstatics/diagram"
	"github.com/katalvlaran/graphstatics/matrix"
)

// SolveReport describes how the dependent force densities were obtained.
type SolveReport struct {
	Method   matrix.SolveMethod // empty when no solve was needed
	Cond     float64            // κ₁ of the factorized system (1 when skipped)
	Warnings []Warning
}

// SolveDependent solves E_dep·q_dep = −E_ind·q_ind and writes q_dep into q.
//
// Implementation:
//   - Stage 1: check that dep ∪ ind partitions the columns of E and that q
//     has one entry per column.
//   - Stage 2: rhs = −E_ind·q_ind.
//   - Stage 3: matrix.LeastSquares picks LU (square), normal equations
//     (more rows than unknowns) or the minimum-norm solution (fewer rows).
//   - Stage 4: reject κ₁ > CondLimit, warn on κ₁ > CondWarn.
//
// q is modified only on success. An empty dep leaves q unchanged.
//
// Errors:
//   - ErrDimension, ErrSingularSystem.
func SolveDependent(e *matrix.Dense, q []float64, dep, ind []int, opts ...Option) (*SolveReport, error) {
	o := gatherOptions(opts...)
	if e == nil {
		return nil, fmt.Errorf("%s: nil matrix: %w", opSolveDep, ErrDimension)
	}
	if len(q) != e.Cols() {
		return nil, fmt.Errorf("%s: %d densities for %d edges: %w", opSolveDep, len(q), e.Cols(), ErrDimension)
	}
	if err := checkPartition(e.Cols(), dep, ind); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveDep, err)
	}
	report := &SolveReport{Cond: 1}
	if len(dep) == 0 {
		return report, nil
	}

	eDep, err := e.Columns(dep)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opSolveDep, ErrDimension, err)
	}
	eInd, err := e.Columns(ind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opSolveDep, ErrDimension, err)
	}
	qInd := make([]float64, len(ind))
	for i, j := range ind {
		qInd[i] = q[j]
	}
	rhs := make([]float64, e.Rows())
	if len(ind) > 0 {
		if rhs, err = matrix.MatVec(eInd, qInd); err != nil {
			return nil, fmt.Errorf("%s: %w", opSolveDep, err)
		}
		for i := range rhs {
			rhs[i] = -rhs[i]
		}
	}

	res, err := matrix.LeastSquares(eDep, rhs)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("%s: %d×%d dependent block: %w", opSolveDep, eDep.Rows(), eDep.Cols(), ErrSingularSystem)
		}
		return nil, fmt.Errorf("%s: %w", opSolveDep, err)
	}
	report.Method, report.Cond = res.Method, res.Cond
	o.logger.Debug("solved dependent densities", "rows", eDep.Rows(), "cols", eDep.Cols(), "method", res.Method, "cond", res.Cond)
	if res.Cond > o.condLimit {
		return nil, fmt.Errorf("%s: condition %.3g exceeds %.3g: %w", opSolveDep, res.Cond, o.condLimit, ErrSingularSystem)
	}
	if res.Cond > o.condWarn {
		o.warn(&report.Warnings, WarnIllConditioned,
			fmt.Sprintf("dependent system condition %.3g exceeds %.3g", res.Cond, o.condWarn),
			"cond", res.Cond)
	}
	for i, j := range dep {
		q[j] = res.X[i]
	}

	return report, nil
}

// checkPartition verifies that dep and ind are disjoint and together cover
// [0, n) exactly once.
func checkPartition(n int, dep, ind []int) error {
	if len(dep)+len(ind) != n {
		return fmt.Errorf("%d dependent + %d independent for %d edges: %w", len(dep), len(ind), n, ErrDimension)
	}
	seen := make([]bool, n)
	for _, set := range [][]int{dep, ind} {
		for _, j := range set {
			if j < 0 || j >= n || seen[j] {
				return fmt.Errorf("edge index %d: %w", j, ErrDimension)
			}
			seen[j] = true
		}
	}

	return nil
}

// Propagation is the outcome of UpdateQFromQind, indexed like form.Edges().
type Propagation struct {
	Q, F, L []float64
	Report  *SolveReport
}

// UpdateQFromQind propagates the force densities of the edges flagged
// independent to every other edge, then writes q, f = q·l and l to the
// structural edges.
//
// Supports are the fixed vertices and the leaves; every other vertex
// contributes its two equilibrium rows.
//
// Errors:
//   - ErrDimension, ErrSingularSystem; nothing is written on error.
func UpdateQFromQind(form *diagram.FormDiagram, opts ...Option) (*Propagation, error) {
	isFree := func(k string) bool { return !form.IsFixed(k) && form.Degree(k) != 1 }
	s, err := buildSystem(form.Diagram, isFree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opUpdateQ, err)
	}
	e, err := s.equilibrium()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opUpdateQ, err)
	}

	var ind, dep []int
	isInd := make(map[int]bool)
	for _, id := range form.Ind() {
		ind = append(ind, s.eindex[id])
		isInd[s.eindex[id]] = true
	}
	for j := range s.edges {
		if !isInd[j] {
			dep = append(dep, j)
		}
	}

	q := form.Q()
	report, err := SolveDependent(e, q, dep, ind, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opUpdateQ, err)
	}
	l, err := EdgeLengths(s.c, s.xy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opUpdateQ, err)
	}
	out := &Propagation{Q: q, F: make([]float64, len(q)), L: l, Report: report}
	attrs := make(map[string]diagram.EdgeAttr, len(q))
	for j, id := range s.edges {
		out.F[j] = q[j] * l[j]
		a, err := form.EdgeAttr(id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opUpdateQ, err)
		}
		if !a.IsEdge {
			continue
		}
		a.Q, a.F, a.L = q[j], out.F[j], l[j]
		attrs[id] = a
	}
	if err = form.SetEdgeAttrs(attrs); err != nil {
		return nil, fmt.Errorf("%s: %w", opUpdateQ, err)
	}

	return out, nil
}
