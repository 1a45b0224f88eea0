// SPDX-License-Identifier: MIT
// Package: graphstatics/builder
//
// impl_funicular.go - a hanging cable.

package builder

import "github.com/katalvlaran/graphstatics/diagram"

// Funicular adds a cable through n ≥ 1 loaded nodes. The supports sit at
// (0, 0) and (span, 0) as fixed cable ends; node i (1..n) sits at
// x = span·i/(n+1) on the parabola y = −4·rise·t(1−t), t = x/span, with a
// vertical load leaf below it.
//
// Vertex order: left support, nodes 1..n, right support, then the n load
// ends. Edges: n+1 cable segments followed by n loads.
//
// Complexity: O(n).
func Funicular(n int) Constructor {
	return func(f *diagram.FormDiagram, cfg builderConfig) error {
		if n < MinFunicularNodes {
			return builderErrorf(MethodFunicular, "n=%d < %d: %w", n, MinFunicularNodes, ErrTooFewVertices)
		}
		s := newSketch(f, cfg, MethodFunicular)
		chain := make([]string, n+2)
		for i := range chain {
			x := cfg.span * float64(i) / float64(n+1)
			t := x / cfg.span
			chain[i] = s.node(x, -4*cfg.rise*t*(1-t))
		}
		for i := 0; i+1 < len(chain); i++ {
			s.bar(chain[i], chain[i+1])
		}
		for _, key := range chain[1 : n+1] {
			s.leaf(key, 0, -cfg.loadLength)
		}
		if s.err != nil {
			return s.err
		}
		for _, key := range []string{chain[0], chain[n+1]} {
			if err := f.SetFixed(key, true); err != nil {
				return builderErrorf(MethodFunicular, "%w: %w", ErrConstructFailed, err)
			}
		}

		return nil
	}
}

