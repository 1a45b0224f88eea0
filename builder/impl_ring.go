// SPDX-License-Identifier: MIT
// Package: graphstatics/builder
//
// impl_ring.go - a ring under radial loads.

package builder

import (
	"math"

	"github.com/katalvlaran/graphstatics/diagram"
)

// Ring adds a regular n-gon (n ≥ 3) of diameter span centred at the origin,
// with a radial leaf of length loadLength pointing outwards from every
// corner. Corner i sits at angle 2πi/n.
//
// Vertex order: corners, then leaves. Edges: the n sides, then the n leaves.
func Ring(n int) Constructor {
	return func(f *diagram.FormDiagram, cfg builderConfig) error {
		if n < MinRingNodes {
			return builderErrorf(MethodRing, "n=%d < %d: %w", n, MinRingNodes, ErrTooFewVertices)
		}
		s := newSketch(f, cfg, MethodRing)
		r := cfg.span / 2
		corners := make([]string, n)
		for i := range corners {
			sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
			corners[i] = s.node(r*cos, r*sin)
		}
		for i := range corners {
			s.bar(corners[i], corners[(i+1)%n])
		}
		for i, key := range corners {
			sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
			s.leaf(key, cfg.loadLength*cos, cfg.loadLength*sin)
		}

		return s.err
	}
}
