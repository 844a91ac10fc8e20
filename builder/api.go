// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go — Constructor type and the BuildGraph orchestrators.

package builder

import (
	"fmt"

	"github.com/anupam312nwd/matrix-manifolds/core"
)

// Constructor appends one component to g using the resolved configuration.
// Constructors validate their parameters before touching g and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph and applies cons in order with the
// default configuration. The root is node 0.
func BuildGraph(cons ...Constructor) (*core.Graph, error) {
	return BuildGraphWith(nil, cons...)
}

// BuildGraphWith is BuildGraph with builder options. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
func BuildGraphWith(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(0)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	if g.N() > 0 {
		if err := g.SetRoot(cfg.root); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge wraps core.Graph.AddEdge with method context.
func addEdge(g *core.Graph, method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %v: %w", method, u, v, err, ErrConstructFailed)
	}
	return nil
}
