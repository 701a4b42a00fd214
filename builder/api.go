// SPDX-License-Identifier: MIT
// Package: planegraph/builder
//
// api.go - public entry points.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors live in impl_*.go and are documented there.
//   - Functional options resolve into a builderConfig passed by value (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/planegraph/core"
)

// Constructor populates g using the resolved builderConfig. Constructors:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Require an empty graph, since the adjacency matrix is sized once.
//   - Preserve determinism for the same config.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned with a
// nil graph.
//
// Errors: callers branch with errors.Is against the builder sentinels.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs a single constructor against an existing, empty graph with
// freshly resolved options. The constructor works on a scratch graph that
// carries g's id; g receives the result only on success, so a failed
// generation leaves g as it was.
func Apply(g *core.Graph, con Constructor, opts ...BuilderOption) error {
	if g == nil || con == nil {
		return fmt.Errorf("Apply: nil graph or constructor: %w", ErrConstructFailed)
	}
	if g.VertexCount() != 0 || g.Adjacency().Sized() {
		return fmt.Errorf("Apply: %d vertices present: %w", g.VertexCount(), ErrGraphNotEmpty)
	}

	scratch := core.NewGraph(core.WithID(g.ID()))
	if err := con(scratch, newBuilderConfig(opts...)); err != nil {
		return err
	}
	g.Adopt(scratch)

	return nil
}
