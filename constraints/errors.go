package constraints

import "errors"

var (
	// ErrUnknownVertex is returned when a constraint names a key the diagram
	// does not have.
	ErrUnknownVertex = errors.New("constraints: unknown vertex")

	// ErrInconsistentConstraint is returned when constraints of one
	// collection were built against different vertex counts.
	ErrInconsistentConstraint = errors.New("constraints: inconsistent column count")

	// ErrEmptyCollection is returned by Compute on a collection without
	// constraints.
	ErrEmptyCollection = errors.New("constraints: empty collection")
)
