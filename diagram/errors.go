package diagram

import "errors"

var (
	// ErrUnknownVertex is returned when a key is not a vertex of the diagram.
	ErrUnknownVertex = errors.New("diagram: unknown vertex")

	// ErrUnknownEdge is returned when an edge ID is not part of the diagram.
	ErrUnknownEdge = errors.New("diagram: unknown edge")

	// ErrNoAnchor is returned when a force diagram has no anchor vertex.
	ErrNoAnchor = errors.New("diagram: force diagram has no anchor")

	// ErrBadLink is returned for an edge correspondence that does not match
	// an edge of both diagrams.
	ErrBadLink = errors.New("diagram: invalid edge correspondence")

	// ErrBadData is returned when an exchange document cannot be turned into
	// a diagram.
	ErrBadData = errors.New("diagram: invalid diagram data")

	// ErrNotPlanar is returned by DualOf when the face structure of the form
	// diagram does not close (crossing edges or a disconnected graph).
	ErrNotPlanar = errors.New("diagram: form diagram is not a connected plane graph")
)
