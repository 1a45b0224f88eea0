// SPDX-License-Identifier: MIT
// Package: graphstatics/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w; they never panic at runtime.
//   • Option constructors (WithX) panic on meaningless values.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, panels) is below the
// minimum of its constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the diagram rejected a vertex or edge, or
// that a nil constructor was passed.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a constructor argument outside its domain
// that is not a size (e.g., a negative jitter sigma).
var ErrOptionViolation = errors.New("builder: invalid option value")
