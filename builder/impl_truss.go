// SPDX-License-Identifier: MIT
// Package: graphstatics/builder
//
// impl_truss.go - a simply supported Pratt truss.

package builder

import "github.com/katalvlaran/graphstatics/diagram"

// Truss adds a Pratt truss of panels ≥ 2 panels over the span, with depth
// rise. The bottom chord carries a vertical load leaf at every inner node and
// a vertical reaction leaf below each end.
//
// Members:
//   - bottom chord b0..bp, top chord t1..t(p−1)
//   - end diagonals b0-t1 and bp-t(p−1)
//   - verticals bi-ti
//   - one diagonal per inner panel, sloping down towards mid-span
//
// The bars alone form a simple truss (2j − 3 members for j joints). Every
// leaf is vertical, so horizontal translation stays unresisted: the loaded
// truss has k = p − 1 independent edges and m = 1 mechanism.
//
// Vertex order: b0..bp, t1..t(p−1), then leaves.
//
// Complexity: O(p).
func Truss(panels int) Constructor {
	return func(f *diagram.FormDiagram, cfg builderConfig) error {
		if panels < MinTrussPanels {
			return builderErrorf(MethodTruss, "panels=%d < %d: %w", panels, MinTrussPanels, ErrTooFewVertices)
		}
		s := newSketch(f, cfg, MethodTruss)
		w := cfg.span / float64(panels)
		bottom := make([]string, panels+1)
		for i := range bottom {
			bottom[i] = s.node(w*float64(i), 0)
		}
		top := make([]string, panels+1) // top[0], top[panels] unused
		for i := 1; i < panels; i++ {
			top[i] = s.node(w*float64(i), cfg.rise)
		}

		for i := 0; i < panels; i++ {
			s.bar(bottom[i], bottom[i+1])
		}
		for i := 1; i+1 < panels; i++ {
			s.bar(top[i], top[i+1])
		}
		s.bar(bottom[0], top[1])
		s.bar(bottom[panels], top[panels-1])
		for i := 1; i < panels; i++ {
			s.bar(bottom[i], top[i])
		}
		for i := 1; i+1 < panels; i++ {
			if 2*(i+1) <= panels {
				s.bar(top[i], bottom[i+1])
			} else {
				s.bar(top[i+1], bottom[i])
			}
		}

		s.leaf(bottom[0], 0, -cfg.loadLength)
		s.leaf(bottom[panels], 0, -cfg.loadLength)
		for i := 1; i < panels; i++ {
			s.leaf(bottom[i], 0, -cfg.loadLength)
		}

		return s.err
	}
}
