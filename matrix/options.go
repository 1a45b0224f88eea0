// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Notes:
//   - A rank tolerance of zero selects the automatic threshold
//     max(rows, cols) · ε · max|aᵢⱼ|, the usual floating-point rank rule.
//   - The residual tolerance is relative: ‖r‖₂ ≤ tol · ‖b‖₂.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRankTol selects the automatic rank threshold when zero.
	DefaultRankTol = 0.0

	// DefaultResidualTol is the relative residual target of iterative solvers.
	DefaultResidualTol = 1e-12

	// DefaultMaxIter is the iteration budget of iterative solvers; zero means
	// 10·n for an n×n system.
	DefaultMaxIter = 0

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRankTolInvalid     = "matrix: WithRankTol: tol must be finite, non-negative"
	panicResidualTolInvalid = "matrix: WithResidualTol: tol must be finite and > 0"
	panicMaxIterInvalid     = "matrix: WithMaxIter: n must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	rankTol        float64 // >= 0; DefaultRankTol (0 ⇒ automatic)
	residualTol    float64 // > 0; DefaultResidualTol
	maxIter        int     // >= 0; DefaultMaxIter (0 ⇒ 10·n)
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithRankTol sets the absolute threshold under which a pivot candidate is
// treated as zero by RREF, Rank and NonPivots. Zero restores the automatic rule.
func WithRankTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicRankTolInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// WithResidualTol sets the relative residual target of ConjugateGradient.
func WithResidualTol(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicResidualTolInvalid)
	}

	return func(o *Options) { o.residualTol = tol }
}

// WithMaxIter bounds the number of iterations of ConjugateGradient.
func WithMaxIter(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithNoValidateNaNInf disables NaN/Inf validation of values passed to
// NewDenseFromRows (use with care).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		rankTol:        DefaultRankTol,
		residualTol:    DefaultResidualTol,
		maxIter:        DefaultMaxIter,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
