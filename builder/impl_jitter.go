// SPDX-License-Identifier: MIT
// Package: graphstatics/builder
//
// impl_jitter.go - seeded perturbation of free vertices.

package builder

import "github.com/katalvlaran/graphstatics/diagram"

// Jitter moves every free vertex (not fixed, degree > 1) by independent
// N(0, sigma²) offsets in x and y. Supports and leaf ends stay put. The draws
// follow Free() order, so a fixed seed reproduces the layout.
//
// Errors: ErrNeedRandSource without WithSeed/WithRand, ErrOptionViolation for
// sigma < 0. sigma == 0 is a no-op.
func Jitter(sigma float64) Constructor {
	return func(f *diagram.FormDiagram, cfg builderConfig) error {
		if sigma < 0 {
			return builderErrorf(MethodJitter, "sigma=%g: %w", sigma, ErrOptionViolation)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodJitter, "%w", ErrNeedRandSource)
		}
		if sigma == 0 {
			return nil
		}
		free := f.Free()
		pos := make(map[string][2]float64, len(free))
		for _, key := range free {
			x, y, err := f.Position(key)
			if err != nil {
				return builderErrorf(MethodJitter, "%w: %w", ErrConstructFailed, err)
			}
			pos[key] = [2]float64{
				x + sigma*cfg.rng.NormFloat64(),
				y + sigma*cfg.rng.NormFloat64(),
			}
		}
		if err := f.SetPositions(pos); err != nil {
			return builderErrorf(MethodJitter, "%w: %w", ErrConstructFailed, err)
		}

		return nil
	}
}
