// SPDX-License-Identifier: MIT
// Package: graphstatics/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn ("0","1","2",...)
//   • rng        = nil (pure unless seeded)
//   • span       = DefaultSpan
//   • rise       = DefaultRise
//   • loadLength = DefaultLoadLength

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors. It is passed by
// value.
type builderConfig struct {
	idFn       IDFn
	rng        *rand.Rand
	span       float64 // > 0
	rise       float64 // > 0
	loadLength float64 // > 0
}

// newBuilderConfig applies opts over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		span:       DefaultSpan,
		rise:       DefaultRise,
		loadLength: DefaultLoadLength,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
