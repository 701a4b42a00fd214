// SPDX-License-Identifier: MIT
// Package: planegraph/builder
//
// impl_planar.go — implementation of the Planar(n) constructor.
//
// Canonical model:
//   • Vertices sit at the centers of distinct cells of a gridgraph.SlotGrid.
//   • Edges are straight segments proposed between random vertex pairs; a
//     proposal survives only if it is new, crosses no accepted edge and keeps
//     clear of every other vertex disk.
//   • Proposals continue until the graph is connected.
//
// Contract:
//   • n ≥ 0 (else ErrTooFewVertices); empty target graph (else ErrGraphNotEmpty).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • n ≤ M² (else ErrGridCapacity).
//   • Ids are assigned in placement order; labels are the decimal ids.
//
// Bounded retries:
//   • Placement: cfg.placementAttempts random draws per vertex, then a
//     uniform pick among the free cells (always succeeds under the capacity guard).
//   • Edges: after cfg.edgeAttempts consecutive rejections, a bridge search
//     adds the shortest admissible edge between two different components. If
//     there is none, ErrUnreachableConnectivity.
//
// Complexity:
//   • Placement: O(n·placementAttempts + M²) worst case.
//   • Each proposal: O(E + V) predicate checks; each acceptance adds O(V+E) for connectivity.
//   • Bridge search: O(V² log V + V²·(E+V)).

package builder

import (
	"fmt"
	"sort"
	"time"

	"github.com/ojrac/opensimplex-go"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/planegraph/core"
	"github.com/katalvlaran/planegraph/geom"
	"github.com/katalvlaran/planegraph/gridgraph"
)

// Planar returns a Constructor that builds a connected planar straight-line
// graph with n vertices.
func Planar(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		start := time.Now()

		// 1) Parameter and state validation (no side effects on failure).
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", MethodPlanar, n, ErrTooFewVertices)
		}
		if g.VertexCount() != 0 || g.Adjacency().Sized() {
			return fmt.Errorf("%s: %d vertices present: %w", MethodPlanar, g.VertexCount(), ErrGraphNotEmpty)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodPlanar, ErrNeedRandSource)
		}

		// 2) Placement grid and capacity guard.
		grid, err := gridgraph.NewSlotGrid(cfg.side, cfg.radius)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodPlanar, err)
		}
		if n > grid.Capacity() {
			return fmt.Errorf("%s: n=%d > %d cells (side=%g, radius=%g): %w",
				MethodPlanar, n, grid.Capacity(), cfg.side, cfg.radius, ErrGridCapacity)
		}
		if cfg.jitter > 0 {
			// noise seed comes from the rng, so the jittered layout follows the seed
			grid.Jitter(cfg.jitter, opensimplex.New(cfg.rng.Int63()))
		}

		// 3) Place vertices; ids follow placement order.
		for i := 0; i < n; i++ {
			idx, path := pickCell(grid, cfg)
			if err = grid.Occupy(idx); err != nil {
				return fmt.Errorf("%s: vertex %d: %w", MethodPlanar, i, err)
			}
			g.AddVertex("", grid.CenterAt(idx))
			cfg.observer.VertexPlaced(path)
		}

		// 4) Size the matrix exactly once.
		if err = g.InitAdjacency(n); err != nil {
			return fmt.Errorf("%s: %w", MethodPlanar, err)
		}

		// 5) Close connectivity.
		p := newPlanarState(g, cfg.radius)
		if err = p.connect(cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodPlanar, err)
		}

		elapsed := time.Since(start)
		cfg.observer.Generated(KindPlanar, n, g.EdgeCount(), elapsed)
		klog.V(2).Infof("%s: graph %s: %d vertices, %d edges in %v", MethodPlanar, g.ID(), n, g.EdgeCount(), elapsed)

		return nil
	}
}

// pickCell draws random cells until a free one appears, falling back to a
// uniform pick among the free cells once cfg.placementAttempts are spent.
// The caller guarantees at least one free cell.
func pickCell(grid *gridgraph.SlotGrid, cfg builderConfig) (int, PlacementPath) {
	for a := 0; a < cfg.placementAttempts; a++ {
		idx := grid.Index(cfg.rng.Intn(grid.Size), cfg.rng.Intn(grid.Size))
		if !grid.Occupied(idx) {
			return idx, PlacedRandom
		}
	}

	free := grid.FreeCells()
	klog.V(2).Infof("%s: %d draws missed, picking among %d free cells", MethodPlanar, cfg.placementAttempts, len(free))

	return free[cfg.rng.Intn(len(free))], PlacedSweep
}

// planarState caches positions and accepted segments; both only grow.
type planarState struct {
	g      *core.Graph
	radius float64
	pos    []geom.Point
	segs   []geom.Segment
}

func newPlanarState(g *core.Graph, radius float64) *planarState {
	vs := g.Vertices()
	pos := make([]geom.Point, len(vs))
	for i, v := range vs {
		pos[i] = v.Pos
	}

	return &planarState{g: g, radius: radius, pos: pos}
}

// admissible classifies the candidate edge {u, v} against the current drawing.
func (p *planarState) admissible(u, v int) ProposalOutcome {
	if u == v {
		return OutcomeSame
	}
	if p.g.HasEdge(u, v) {
		return OutcomeExisting
	}
	seg := geom.NewSegment(p.pos[u], p.pos[v])
	for _, s := range p.segs {
		if geom.SegmentsCross(seg, s) {
			return OutcomeCross
		}
	}
	for w, q := range p.pos {
		if w == u || w == v {
			continue
		}
		if geom.SegmentNearPoint(seg, q, p.radius) {
			return OutcomeNear
		}
	}

	return OutcomeAccepted
}

// add inserts {u, v} into the graph and the segment cache.
func (p *planarState) add(u, v int) error {
	if err := p.g.AddEdge(u, v); err != nil {
		return err
	}
	p.segs = append(p.segs, geom.NewSegment(p.pos[u], p.pos[v]))

	return nil
}

// connect runs the proposal loop until the graph is connected.
func (p *planarState) connect(cfg builderConfig) error {
	n := len(p.pos)
	connected := p.g.IsConnected()
	rejections := 0

	for !connected {
		// Stalled: deterministic bridge between two components.
		if rejections >= cfg.edgeAttempts {
			found, err := p.bridge()
			cfg.observer.BridgeSearch(found)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%d components left after %d rejections: %w",
					len(p.g.Components()), rejections, ErrUnreachableConnectivity)
			}
			klog.Warningf("%s: %d consecutive rejections, bridged two components", MethodPlanar, rejections)
			rejections = 0
			connected = p.g.IsConnected()

			continue
		}

		u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
		outcome := p.admissible(u, v)
		cfg.observer.EdgeProposal(outcome)
		if outcome != OutcomeAccepted {
			rejections++

			continue
		}
		if err := p.add(u, v); err != nil {
			return err
		}
		rejections = 0
		connected = p.g.IsConnected()
	}

	return nil
}

// candidate is a bridge candidate ordered by (length, u, v).
type candidate struct {
	u, v   int
	length float64
}

// bridge adds the shortest admissible edge joining two components.
func (p *planarState) bridge() (bool, error) {
	comp := make([]int, len(p.pos))
	for c, members := range p.g.Components() {
		for _, id := range members {
			comp[id] = c
		}
	}

	var cands []candidate
	for u := 1; u < len(p.pos); u++ {
		for v := 0; v < u; v++ {
			if comp[u] == comp[v] {
				continue
			}
			cands = append(cands, candidate{u: u, v: v, length: geom.NewSegment(p.pos[u], p.pos[v]).Length()})
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.length != b.length {
			return a.length < b.length
		}
		if a.u != b.u {
			return a.u < b.u
		}

		return a.v < b.v
	})

	for _, c := range cands {
		if p.admissible(c.u, c.v) == OutcomeAccepted {
			return true, p.add(c.u, c.v)
		}
	}

	return false, nil
}
