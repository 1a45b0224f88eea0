package statics

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphstatics/bfs"
	"github.com/katalvlaran/graphstatics/core"
	"github.com/katalvlaran/graphstatics/diagram"
	"github.com/katalvlaran/graphstatics/matrix"
)

// ForceUpdate reports the solve of UpdateForceFromForm.
type ForceUpdate struct {
	Iterations [2]int     // CG iterations for x and y
	Residual   [2]float64 // final relative residuals
	Warnings   []Warning
}

// UpdateForceFromForm recomputes the force diagram so that each linked force
// edge equals q times its form edge, in the least-squares sense.
//
// Implementation:
//   - Stage 1: the anchor exists and every force vertex reaches it through
//     linked force edges (BFS); otherwise the system is underdetermined.
//   - Stage 2: C* = connectivity of the linked force edges in form edge
//     order, rhs = C*ᵀ·Q·(C·xy) per coordinate.
//   - Stage 3: drop the anchor column: (C*ᵀC*)ᵣ·x = rhsᵣ − (C*ᵀC*)[:, anchor]·x_anchor.
//     The reduced Laplacian is SPD, solved by conjugate gradient on CSR
//     starting from the current positions.
//   - Stage 4: write every force vertex position and every force edge length.
//
// Errors:
//   - ErrUnderdeterminedSystem (no anchor, unreachable vertex).
//   - ErrDimension (stale correspondence).
//   - ErrSingularSystem (the reduced operator is not positive definite).
func UpdateForceFromForm(force *diagram.ForceDiagram, form *diagram.FormDiagram, opts ...Option) (*ForceUpdate, error) {
	o := gatherOptions(opts...)
	anchor := force.Anchor()
	if anchor == "" {
		return nil, fmt.Errorf("%s: %w: %w", opForceFromFrm, ErrUnderdeterminedSystem, diagram.ErrNoAnchor)
	}
	corr, err := force.OrderedEdges(form)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opForceFromFrm, ErrDimension, err)
	}

	linked := make(map[string]bool, len(corr))
	for _, c := range corr {
		if c.Linked() {
			linked[c.ForceEdge] = true
		}
	}
	unreached, err := bfs.Reachable(force.Graph(), anchor, bfs.WithFilterEdge(func(_ string, e core.Edge) bool {
		return linked[e.ID]
	}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opForceFromFrm, err)
	}
	if len(unreached) > 0 {
		return nil, fmt.Errorf("%s: %d force vertices (%q first) not tied to anchor %q: %w",
			opForceFromFrm, len(unreached), unreached[0], anchor, ErrUnderdeterminedSystem)
	}

	fkeys := force.Keys()
	fIdx := force.KeyIndex()
	kIdx := form.KeyIndex()
	xy := form.XY()
	q := form.Q()
	var pairs [][2]int
	var rx, ry []float64
	for _, c := range corr {
		if !c.Linked() {
			continue
		}
		u, v := xy[kIdx[c.Form.From]], xy[kIdx[c.Form.To]]
		pairs = append(pairs, [2]int{fIdx[c.U], fIdx[c.V]})
		rx = append(rx, q[c.FormIndex]*(v[0]-u[0]))
		ry = append(ry, q[c.FormIndex]*(v[1]-u[1]))
	}
	cf, err := Connectivity(pairs, len(fkeys))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opForceFromFrm, err)
	}

	a := fIdx[anchor]
	free := make([]int, 0, len(fkeys)-1)
	for i := range fkeys {
		if i != a {
			free = append(free, i)
		}
	}
	fxy := force.XY()
	res := &ForceUpdate{}
	var cgOpts []matrix.Option
	if o.cgTol > 0 {
		cgOpts = append(cgOpts, matrix.WithResidualTol(o.cgTol))
	}
	if len(free) > 0 {
		lap := cf.Gram()
		red, err := lap.Induced(free, free)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opForceFromFrm, err)
		}
		col, err := lap.Column(a)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opForceFromFrm, err)
		}
		o.logger.Debug("force from form", "vertices", len(fkeys), "edges", len(pairs), "nnz", red.NNZ())
		for dim, r := range [2][]float64{rx, ry} {
			full, err := cf.TMulVec(r)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opForceFromFrm, err)
			}
			rhs := make([]float64, len(free))
			x0 := make([]float64, len(free))
			for k, i := range free {
				rhs[k] = full[i] - col[i]*fxy[a][dim]
				x0[k] = fxy[i][dim]
			}
			cg, err := matrix.ConjugateGradient(red, rhs, x0, cgOpts...)
			switch {
			case errors.Is(err, matrix.ErrNoConvergence):
				o.warn(&res.Warnings, WarnNotConverged,
					fmt.Sprintf("conjugate gradient stopped at residual %.3g", cg.Residual),
					"dim", dim, "iterations", cg.Iterations)
			case errors.Is(err, matrix.ErrNotPositiveDefinite):
				return nil, fmt.Errorf("%s: %w: %w", opForceFromFrm, ErrSingularSystem, err)
			case err != nil:
				return nil, fmt.Errorf("%s: %w", opForceFromFrm, err)
			}
			res.Iterations[dim], res.Residual[dim] = cg.Iterations, cg.Residual
			for k, i := range free {
				fxy[i][dim] = cg.X[k]
			}
		}
	}

	pos := make(map[string][2]float64, len(fkeys))
	for i, k := range fkeys {
		pos[k] = fxy[i]
	}
	attrs := make(map[string]diagram.EdgeAttr)
	for _, e := range force.Edges() {
		at, err := force.EdgeAttr(e.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opForceFromFrm, err)
		}
		u, v := fxy[fIdx[e.From]], fxy[fIdx[e.To]]
		at.L = math.Hypot(v[0]-u[0], v[1]-u[1])
		attrs[e.ID] = at
	}
	if err = force.Update(pos, attrs); err != nil {
		return nil, fmt.Errorf("%s: %w", opForceFromFrm, err)
	}

	return res, nil
}
