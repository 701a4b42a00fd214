// SPDX-License-Identifier: MIT
// Package: planegraph/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRadius sets the vertex disk radius. Panics unless r > 0 and finite.
func WithRadius(r float64) BuilderOption {
	if !(r > 0) || math.IsInf(r, 0) {
		panic("builder: WithRadius(r<=0)")
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithSide sets the side of the drawing square. Panics unless s > 0 and finite.
func WithSide(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithSide(s<=0)")
	}
	return func(c *builderConfig) {
		c.side = s
	}
}

// WithPlacementAttempts bounds random cell draws per vertex. Panics if n < 1.
func WithPlacementAttempts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithPlacementAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.placementAttempts = n
	}
}

// WithEdgeAttempts bounds consecutive rejected edge proposals before a
// bridge search. Panics if n < 1.
func WithEdgeAttempts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithEdgeAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.edgeAttempts = n
	}
}

// WithJitter displaces grid centers by noise, up to amount·gap/2 per axis.
// Panics unless 0 ≤ amount < 1.
func WithJitter(amount float64) BuilderOption {
	if !(amount >= 0 && amount < 1) {
		panic("builder: WithJitter(amount outside [0,1))")
	}
	return func(c *builderConfig) {
		c.jitter = amount
	}
}

// WithObserver installs a progress observer. Panics on nil.
func WithObserver(o Observer) BuilderOption {
	if o == nil {
		panic("builder: WithObserver(nil)")
	}
	return func(c *builderConfig) {
		c.observer = o
	}
}
