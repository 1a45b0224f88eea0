package statics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphstatics/bfs"
	"github.com/katalvlaran/graphstatics/diagram"
)

// pinvRelTol is the relative eigenvalue cut-off of the 2×2 pseudo-inverse.
const pinvRelTol = 1e-10

// FormUpdate reports the Gauss–Seidel run of UpdateFormFromForce.
type FormUpdate struct {
	Iterations int     // sweeps performed
	Movement   float64 // largest vertex move of the last sweep
	Tolerance  float64 // absolute movement tolerance used
	Converged  bool
	Warnings   []Warning
}

// lineSet is the line system of one free form vertex: lines through its
// non-leaf neighbors parallel to the reciprocal force edges.
type lineSet struct {
	vertex int
	nbrs   []int
	dirs   [][2]float64 // unit directions
}

// UpdateFormFromForce moves the free vertices of the form diagram so that
// every form edge is parallel to its reciprocal force edge, then derives the
// edge lengths, angles, densities and signed forces.
//
// Implementation:
//   - Stage 1: validate: at least one support, connected form, a linked force
//     edge for every edge between two non-leaf vertices.
//   - Stage 2: per free vertex i assemble R = Σ(I − t tᵀ) and b = Σ(I − t tᵀ)xⱼ
//     over its non-leaf neighbors j, t the unit force direction.
//   - Stage 3: Gauss–Seidel sweeps in key order: p = x + R⁺(b − R x), which
//     is R⁻¹b when R is regular and the closest point on the common line
//     otherwise. Stop when the largest move is below tolerance or after Kmax
//     sweeps (WarnNotConverged).
//   - Stage 4: leaves keep their original offset from their neighbor.
//   - Stage 5: l, a, q = l*/l and f = l* with the sign rule, l* the force
//     edge length. Force edges receive a and l*.
//
// Nothing is written on error.
//
// Errors:
//   - ErrDimension for a missing or stale correspondence.
//   - ErrUnderdeterminedSystem when the form has no support or is not
//     connected.
func UpdateFormFromForce(form *diagram.FormDiagram, force *diagram.ForceDiagram, opts ...Option) (*FormUpdate, error) {
	o := gatherOptions(opts...)
	keys := form.Keys()
	if len(keys) == 0 {
		return nil, fmt.Errorf("%s: empty form: %w", opFormFromFrc, ErrDimension)
	}
	if len(form.Fixed()) == 0 {
		return nil, fmt.Errorf("%s: no fixed vertex: %w", opFormFromFrc, ErrUnderdeterminedSystem)
	}
	comps, err := bfs.Components(form.Graph())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFormFromFrc, err)
	}
	if len(comps) != 1 {
		return nil, fmt.Errorf("%s: %d components: %w", opFormFromFrc, len(comps), ErrUnderdeterminedSystem)
	}
	corr, err := force.OrderedEdges(form)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opFormFromFrc, ErrDimension, err)
	}

	kIdx := form.KeyIndex()
	eIdx := form.EdgeIndex()
	fIdx := force.KeyIndex()
	fxy := force.XY()
	tvec := make([][2]float64, len(corr))
	for e, c := range corr {
		if !c.Linked() {
			if !form.IsLeafEdge(c.Form.From, c.Form.To) {
				return nil, fmt.Errorf("%s: edge %s has no reciprocal: %w", opFormFromFrc, c.Form.ID, ErrDimension)
			}
			continue
		}
		u, v := fxy[fIdx[c.U]], fxy[fIdx[c.V]]
		tvec[e] = [2]float64{v[0] - u[0], v[1] - u[1]}
	}

	leaf := make([]bool, len(keys))
	fixed := make([]bool, len(keys))
	for i, k := range keys {
		fixed[i] = form.IsFixed(k)
		leaf[i] = !fixed[i] && form.Degree(k) == 1
	}
	var lines []lineSet
	for i, k := range keys {
		if fixed[i] || leaf[i] {
			continue
		}
		ls := lineSet{vertex: i}
		edges, err := form.Graph().IncidentEdges(k)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opFormFromFrc, err)
		}
		for _, fe := range edges {
			j := kIdx[fe.Other(k)]
			if form.Degree(keys[j]) == 1 {
				continue
			}
			t := tvec[eIdx[fe.ID]]
			n := math.Hypot(t[0], t[1])
			if n == 0 {
				continue
			}
			ls.nbrs = append(ls.nbrs, j)
			ls.dirs = append(ls.dirs, [2]float64{t[0] / n, t[1] / n})
		}
		lines = append(lines, ls)
	}

	xy0 := form.XY()
	xy := form.XY()
	res := &FormUpdate{Tolerance: math.Max(o.tol*form.Scale(), MinAbsTol)}
	for res.Iterations < o.kmax {
		res.Iterations++
		res.Movement = 0
		for _, ls := range lines {
			p := ls.solve(xy)
			move := math.Hypot(p[0]-xy[ls.vertex][0], p[1]-xy[ls.vertex][1])
			res.Movement = math.Max(res.Movement, move)
			xy[ls.vertex] = p
		}
		if res.Movement < res.Tolerance {
			res.Converged = true
			break
		}
	}
	o.logger.Debug("form from force", "free", len(lines), "sweeps", res.Iterations, "movement", res.Movement)
	if !res.Converged {
		o.warn(&res.Warnings, WarnNotConverged,
			fmt.Sprintf("no convergence after %d sweeps, last movement %.3g", res.Iterations, res.Movement),
			"kmax", o.kmax, "movement", res.Movement)
	}

	for i, k := range keys {
		if !leaf[i] {
			continue
		}
		nbrs, err := form.NeighborKeys(k)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opFormFromFrc, err)
		}
		j := kIdx[nbrs[0]]
		xy[i] = [2]float64{xy[j][0] + xy0[i][0] - xy0[j][0], xy[j][1] + xy0[i][1] - xy0[j][1]}
	}

	pos := make(map[string][2]float64, len(keys))
	for i, k := range keys {
		pos[k] = xy[i]
	}
	formAttrs := make(map[string]diagram.EdgeAttr, len(corr))
	forceAttrs := make(map[string]diagram.EdgeAttr)
	for e, c := range corr {
		a, err := form.EdgeAttr(c.Form.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opFormFromFrc, err)
		}
		u, v := xy[kIdx[c.Form.From]], xy[kIdx[c.Form.To]]
		uv := [2]float64{v[0] - u[0], v[1] - u[1]}
		a.L = math.Hypot(uv[0], uv[1])
		if c.Linked() {
			fl := math.Hypot(tvec[e][0], tvec[e][1])
			a.A = AngleDeg(uv, tvec[e])
			a.F = Signed(a.A, fl)
			a.Q = 0
			if a.L > 0 {
				a.Q = Signed(a.A, fl/a.L)
			}
			fa, err := force.EdgeAttr(c.ForceEdge)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opFormFromFrc, err)
			}
			fa.A, fa.L = a.A, fl
			forceAttrs[c.ForceEdge] = fa
		}
		formAttrs[c.Form.ID] = a
	}

	// both diagrams are checked before either is written
	if err = form.CheckUpdate(pos, formAttrs); err != nil {
		return nil, fmt.Errorf("%s: %w", opFormFromFrc, err)
	}
	if err = force.CheckUpdate(nil, forceAttrs); err != nil {
		return nil, fmt.Errorf("%s: %w", opFormFromFrc, err)
	}
	if err = form.Update(pos, formAttrs); err != nil {
		return nil, fmt.Errorf("%s: %w", opFormFromFrc, err)
	}
	if err = force.Update(nil, forceAttrs); err != nil {
		return nil, fmt.Errorf("%s: %w", opFormFromFrc, err)
	}

	return res, nil
}

// solve returns the least-squares intersection of the vertex's lines,
// measured from its current position.
func (ls lineSet) solve(xy [][2]float64) [2]float64 {
	var r00, r01, r11, b0, b1 float64
	for k, j := range ls.nbrs {
		t := ls.dirs[k]
		p00, p01, p11 := 1-t[0]*t[0], -t[0]*t[1], 1-t[1]*t[1]
		r00 += p00
		r01 += p01
		r11 += p11
		b0 += p00*xy[j][0] + p01*xy[j][1]
		b1 += p01*xy[j][0] + p11*xy[j][1]
	}
	x := xy[ls.vertex]
	// residual of the current position
	g0 := b0 - (r00*x[0] + r01*x[1])
	g1 := b1 - (r01*x[0] + r11*x[1])
	d0, d1 := pinv2(r00, r01, r11, g0, g1)

	return [2]float64{x[0] + d0, x[1] + d1}
}

// pinv2 applies the pseudo-inverse of the symmetric matrix [[a c] [c d]] to
// (g0, g1) through its eigendecomposition.
func pinv2(a, c, d, g0, g1 float64) (float64, float64) {
	mean := (a + d) / 2
	rad := math.Hypot((a-d)/2, c)
	l1, l2 := mean+rad, mean-rad
	if l1 <= 0 {
		return 0, 0
	}
	var v [2]float64
	switch {
	case c != 0:
		v = [2]float64{l1 - d, c}
	case a >= d:
		v = [2]float64{1, 0}
	default:
		v = [2]float64{0, 1}
	}
	n := math.Hypot(v[0], v[1])
	v[0], v[1] = v[0]/n, v[1]/n
	w := [2]float64{-v[1], v[0]}

	var x0, x1 float64
	s := (v[0]*g0 + v[1]*g1) / l1
	x0, x1 = s*v[0], s*v[1]
	if l2 > pinvRelTol*l1 {
		s = (w[0]*g0 + w[1]*g1) / l2
		x0 += s * w[0]
		x1 += s * w[1]
	}

	return x0, x1
}
