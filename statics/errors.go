package statics

import "errors"

var (
	// ErrDimension is returned for malformed or inconsistent index ranges.
	ErrDimension = errors.New("statics: dimension mismatch")

	// ErrSingularSystem is returned when a reduced system is singular or its
	// condition estimate exceeds the configured limit.
	ErrSingularSystem = errors.New("statics: singular system")

	// ErrUnderdeterminedSystem is returned when part of a diagram is not tied
	// to a support or the anchor.
	ErrUnderdeterminedSystem = errors.New("statics: underdetermined system")
)

// WarningKind classifies non-fatal conditions.
type WarningKind string

// Warning kinds.
const (
	WarnNotConverged   WarningKind = "not-converged"
	WarnIllConditioned WarningKind = "ill-conditioned"
)

// Warning is a non-fatal condition attached to a result.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string { return string(w.Kind) + ": " + w.Message }
