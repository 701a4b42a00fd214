// SPDX-License-Identifier: MIT
// Package: planegraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".
//   • Priority: size/params → graph state → rng → capacity → construction.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a negative vertex count.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrGraphNotEmpty indicates a constructor was run on a populated graph.
var ErrGraphNotEmpty = errors.New("builder: graph is not empty")

// ErrGridCapacity indicates more vertices were requested than grid cells exist.
var ErrGridCapacity = errors.New("builder: vertex count exceeds grid capacity")

// ErrInvalidTreeParams indicates n ≤ 0, k ≤ 0, k > n or an oversized tree.
var ErrInvalidTreeParams = errors.New("builder: invalid combination tree parameters")

// ErrSideTooSmall indicates the combination tree does not fit the square.
var ErrSideTooSmall = errors.New("builder: side too small for layout")

// ErrConstructFailed indicates that the builder exhausted permitted strategies
// and could not construct a graph without breaking invariants.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnreachableConnectivity indicates that random proposals stalled and no
// admissible bridge between two components exists. It wraps
// ErrConstructFailed.
var ErrUnreachableConnectivity = fmt.Errorf("builder: connectivity unreachable: %w", ErrConstructFailed)
