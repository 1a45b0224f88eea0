// SPDX-License-Identifier: MIT
// Package: graphstatics/builder
//
// helpers.go - shared plumbing for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphstatics/diagram"
)

// builderErrorf prefixes an error with the constructor method tag.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}

// sketch adds vertices under consecutive keys idFn(next), continuing after
// the vertices already present in the diagram, so constructors compose.
type sketch struct {
	f      *diagram.FormDiagram
	cfg    builderConfig
	method string
	next   int
	err    error
}

func newSketch(f *diagram.FormDiagram, cfg builderConfig, method string) *sketch {
	return &sketch{f: f, cfg: cfg, method: method, next: len(f.Keys())}
}

// node adds a vertex at (x, y) and returns its key. After the first failure
// every call is a no-op and the error is kept in s.err.
func (s *sketch) node(x, y float64) string {
	if s.err != nil {
		return ""
	}
	key := s.cfg.idFn(s.next)
	s.next++
	if err := s.f.AddVertex(key, x, y); err != nil {
		s.err = builderErrorf(s.method, "%w: %w", ErrConstructFailed, err)
	}

	return key
}

// bar joins u → v.
func (s *sketch) bar(u, v string) {
	if s.err != nil {
		return
	}
	if _, err := s.f.AddEdge(u, v); err != nil {
		s.err = builderErrorf(s.method, "%w: %w", ErrConstructFailed, err)
	}
}

// leaf hangs a fixed vertex off key at offset (dx, dy): a load or a reaction.
func (s *sketch) leaf(key string, dx, dy float64) {
	if s.err != nil {
		return
	}
	x, y, err := s.f.Position(key)
	if err != nil {
		s.err = builderErrorf(s.method, "%w: %w", ErrConstructFailed, err)
		return
	}
	end := s.node(x+dx, y+dy)
	s.bar(key, end)
	if s.err == nil {
		if err = s.f.SetFixed(end, true); err != nil {
			s.err = builderErrorf(s.method, "%w: %w", ErrConstructFailed, err)
		}
	}
}
