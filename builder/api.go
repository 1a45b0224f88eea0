// SPDX-License-Identifier: MIT
// Package: graphstatics/builder
//
// api.go - public entry point of the builder package.
//
// Contract:
//   • BuildForm creates a new *diagram.FormDiagram and applies constructors
//     in the order given.
//   • The first constructor error aborts the build; the partial diagram is
//     discarded.
//   • All randomness flows from the configured *rand.Rand.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphstatics/diagram"
)

// Constructor adds a fixture to f using cfg.
type Constructor func(f *diagram.FormDiagram, cfg builderConfig) error

// BuildForm creates a form diagram with dopts and runs cons over it.
//
// Example:
//
//	f, err := builder.BuildForm(nil,
//		[]builder.BuilderOption{builder.WithSpan(6), builder.WithSeed(1)},
//		builder.Truss(6), builder.Jitter(0.05))
func BuildForm(dopts []diagram.Option, bopts []BuilderOption, cons ...Constructor) (*diagram.FormDiagram, error) {
	cfg := newBuilderConfig(bopts...)
	f := diagram.NewForm(dopts...)
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildForm: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		if err := c(f, cfg); err != nil {
			return nil, fmt.Errorf("BuildForm: %w", err)
		}
	}

	return f, nil
}
