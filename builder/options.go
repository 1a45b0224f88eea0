// SPDX-License-Identifier: MIT
// Package: graphstatics/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Seeding is explicit (WithSeed / WithRand); nothing is global.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes builderConfig before construction starts.
type BuilderOption func(*builderConfig)

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

// WithIDScheme sets the vertex key generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for Jitter. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG; use it to lock Jitter outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSpan sets the horizontal extent of the fixtures. Panics unless > 0.
func WithSpan(span float64) BuilderOption {
	if !positive(span) {
		panic("builder: WithSpan(span<=0)")
	}
	return func(c *builderConfig) { c.span = span }
}

// WithRise sets the apex height, cable sag or truss depth. Panics unless > 0.
func WithRise(rise float64) BuilderOption {
	if !positive(rise) {
		panic("builder: WithRise(rise<=0)")
	}
	return func(c *builderConfig) { c.rise = rise }
}

// WithLoadLength sets the length of load and reaction leaves. Panics unless > 0.
func WithLoadLength(l float64) BuilderOption {
	if !positive(l) {
		panic("builder: WithLoadLength(l<=0)")
	}
	return func(c *builderConfig) { c.loadLength = l }
}
