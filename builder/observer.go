// SPDX-License-Identifier: MIT
// Package: planegraph/builder
//
// observer.go - progress events emitted during generation.

package builder

import "time"

// PlacementPath tells how a vertex found its cell.
type PlacementPath string

const (
	// PlacedRandom: a uniform random draw hit a free cell.
	PlacedRandom PlacementPath = "random"
	// PlacedSweep: draws ran out; the cell was picked among the free ones.
	PlacedSweep PlacementPath = "sweep"
)

// ProposalOutcome classifies one proposed edge.
type ProposalOutcome string

const (
	OutcomeAccepted ProposalOutcome = "accepted"
	OutcomeSame     ProposalOutcome = "same_vertex"
	OutcomeExisting ProposalOutcome = "existing"
	OutcomeCross    ProposalOutcome = "cross"
	OutcomeNear     ProposalOutcome = "near_vertex"
)

// Observer receives generation events. Implementations must be cheap; they
// are called from the rejection loops.
type Observer interface {
	VertexPlaced(path PlacementPath)
	EdgeProposal(outcome ProposalOutcome)
	BridgeSearch(found bool)
	Generated(kind string, vertices, edges int, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) VertexPlaced(PlacementPath) {}
func (nopObserver) EdgeProposal(ProposalOutcome) {}
func (nopObserver) BridgeSearch(bool) {}
func (nopObserver) Generated(string, int, int, time.Duration) {}
