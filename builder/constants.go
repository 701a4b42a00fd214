// SPDX-License-Identifier: MIT
// Package: planegraph/builder
//
// constants.go - method names (error context) and generation kinds.

package builder

const (
	// MethodPlanar is the canonical name for the Planar constructor.
	MethodPlanar = "Planar"
	// MethodCombinationTree is the canonical name for the CombinationTree constructor.
	MethodCombinationTree = "CombinationTree"
)

// Generation kinds reported to Observer.Generated.
const (
	KindPlanar = "planar"
	KindTree   = "tree"
)
