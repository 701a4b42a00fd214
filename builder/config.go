// SPDX-License-Identifier: MIT
// Package: planegraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng                = nil      (stochastic constructors demand WithSeed/WithRand)
//   • radius             = 10
//   • side               = 600
//   • placementAttempts  = 64       (random draws per vertex before the free-cell pick)
//   • edgeAttempts       = 10000    (consecutive rejections before a bridge search)
//   • jitter             = 0        (exact grid centers)
//   • observer           = no-op

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Drawing geometry: vertex disk radius and square side.
	radius float64
	side   float64

	// Rejection-loop bounds.
	placementAttempts int
	edgeAttempts      int

	// Fraction of half the grid gap a center may be displaced by noise.
	jitter float64

	observer Observer
}

// Deterministic defaults (named, no magic numbers).
const (
	DefaultRadius            = 10.0
	DefaultSide              = 600.0
	DefaultPlacementAttempts = 64
	DefaultEdgeAttempts      = 10000
	DefaultJitter            = 0.0
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:               nil,
		radius:            DefaultRadius,
		side:              DefaultSide,
		placementAttempts: DefaultPlacementAttempts,
		edgeAttempts:      DefaultEdgeAttempts,
		jitter:            DefaultJitter,
		observer:          nopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
