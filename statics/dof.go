package statics

import (
	"fmt"

	"github.com/katalvlaran/graphstatics/diagram"
	"github.com/katalvlaran/graphstatics/matrix"
)

// Status classifies a structure by its DOF counts.
type Status int

// Static classifications.
const (
	Determinate           Status = iota // k = 0, m = 0
	Indeterminate                       // k > 0, m = 0
	Unstable                            // k = 0, m > 0
	IndeterminateUnstable               // k > 0, m > 0
)

func (s Status) String() string {
	switch s {
	case Determinate:
		return "statically determinate"
	case Indeterminate:
		return "statically indeterminate"
	case Unstable:
		return "unstable"
	case IndeterminateUnstable:
		return "indeterminate and unstable"
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// IndependentEdge names one edge of the independent set.
type IndependentEdge struct {
	ID   string
	U, V string
}

// DOF is the outcome of IdentifyDOF.
type DOF struct {
	K           int // static indeterminacy: ncols(E) − rank(E)
	M           int // mechanisms: nrows(E) − rank(E)
	Rank        int
	Independent []IndependentEdge // in edge order
}

// Status classifies the structure.
func (d *DOF) Status() Status {
	switch {
	case d.K == 0 && d.M == 0:
		return Determinate
	case d.M == 0:
		return Indeterminate
	case d.K == 0:
		return Unstable
	default:
		return IndeterminateUnstable
	}
}

// IndependentIDs returns the IDs of the independent edges.
func (d *DOF) IndependentIDs() []string {
	out := make([]string, len(d.Independent))
	for i, e := range d.Independent {
		out[i] = e.ID
	}

	return out
}

// notFixed frees every vertex that is not a support; leaves stay free so
// their equilibrium is part of E.
func notFixed(form *diagram.FormDiagram) func(string) bool {
	return func(k string) bool { return !form.IsFixed(k) }
}

// IdentifyDOF computes k, m and the independent edges of the form diagram.
//
// Implementation:
//   - Stage 1: E from the current geometry with free = all − fixed.
//   - Stage 2: RREF with partial pivoting, columns scanned left to right; a
//     column whose best candidate is within tolerance is non-pivot. Ties in
//     the pivot search go to the upper row, so the leftmost (lowest edge
//     index) columns become pivots first.
//   - Stage 3: independent edges = non-pivot columns.
//
// With WithMarkIndependent the is_ind flags of the form are replaced by the
// set found.
//
// Errors:
//   - ErrDimension when the diagram has no vertices or an edge loops.
func IdentifyDOF(form *diagram.FormDiagram, opts ...Option) (*DOF, error) {
	o := gatherOptions(opts...)
	s, err := buildSystem(form.Diagram, notFixed(form))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opIdentifyDOF, err)
	}
	e, err := s.equilibrium()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opIdentifyDOF, err)
	}
	_, pivots, err := matrix.RREF(e, rankOpts(o)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opIdentifyDOF, err)
	}

	rank := len(pivots)
	out := &DOF{K: e.Cols() - rank, M: e.Rows() - rank, Rank: rank}
	isPivot := make(map[int]bool, rank)
	for _, p := range pivots {
		isPivot[p] = true
	}
	all := form.Edges()
	for j := 0; j < e.Cols(); j++ {
		if !isPivot[j] {
			out.Independent = append(out.Independent, IndependentEdge{ID: all[j].ID, U: all[j].From, V: all[j].To})
		}
	}
	o.logger.Debug("identified dof", "rows", e.Rows(), "cols", e.Cols(), "rank", rank, "k", out.K, "m", out.M)

	if o.markIndependent {
		if err = form.SetInd(out.IndependentIDs()); err != nil {
			return nil, fmt.Errorf("%s: %w", opIdentifyDOF, err)
		}
	}

	return out, nil
}

// CountDOF returns (k, m) using the same rank computation as IdentifyDOF.
func CountDOF(form *diagram.FormDiagram, opts ...Option) (k, m int, err error) {
	o := gatherOptions(opts...)
	s, err := buildSystem(form.Diagram, notFixed(form))
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", opCountDOF, err)
	}
	e, err := s.equilibrium()
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", opCountDOF, err)
	}
	rank, err := matrix.Rank(e, rankOpts(o)...)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", opCountDOF, err)
	}

	return e.Cols() - rank, e.Rows() - rank, nil
}

func rankOpts(o Options) []matrix.Option {
	if o.rankTol == 0 {
		return nil
	}

	return []matrix.Option{matrix.WithRankTol(o.rankTol)}
}
