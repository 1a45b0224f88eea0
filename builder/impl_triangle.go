// SPDX-License-Identifier: MIT
// Package: graphstatics/builder
//
// impl_triangle.go - a loaded triangle.

package builder

import "github.com/katalvlaran/graphstatics/diagram"

// Triangle adds three bars a-b, b-c, c-a with a = (0, 0), b = (span, 0) and
// apex c = (span/2, rise). Vertical reactions hang below a and b; the load
// leaf stands above c.
//
// Vertex order: a, b, c, then the leaves of a, b and c. Six edges, three
// free vertices.
func Triangle() Constructor {
	return func(f *diagram.FormDiagram, cfg builderConfig) error {
		s := newSketch(f, cfg, MethodTriangle)
		a := s.node(0, 0)
		b := s.node(cfg.span, 0)
		c := s.node(cfg.span/2, cfg.rise)
		s.bar(a, b)
		s.bar(b, c)
		s.bar(c, a)
		s.leaf(a, 0, -cfg.loadLength)
		s.leaf(b, 0, -cfg.loadLength)
		s.leaf(c, 0, cfg.loadLength)

		return s.err
	}
}
