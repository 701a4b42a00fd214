// SPDX-License-Identifier: MIT
// Package: planegraph/core
//
// audit.go - connectivity, four-view consistency and embedding checks.

package core

import (
	"fmt"

	"github.com/katalvlaran/planegraph/dfs"
	"github.com/katalvlaran/planegraph/geom"
)

const (
	methodValidate       = "Validate"
	methodCheckEmbedding = "CheckEmbedding"
)

// arena adapts the locked vertex slice to dfs.Graph.
type arena []Vertex

func (a arena) VertexCount() int         { return len(a) }
func (a arena) NeighborIDs(id int) []int { return a[id].Neighbors }

// IsConnected reports whether every vertex is reachable from vertex 0.
// An empty graph is connected.
// Complexity: O(V + E).
func (g *Graph) IsConnected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return dfs.IsConnected(arena(g.vertices))
}

// Components returns the connected components (see dfs.Components).
func (g *Graph) Components() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return dfs.Components(arena(g.vertices))
}

// Validate checks that neighbor lists, edges and matrix describe one
// relation and that every edge segment matches its endpoint positions.
// Complexity: O(V² + E).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.vertices)
	if g.adj.Sized() && g.adj.Dimension() != n {
		return fmt.Errorf("%s: matrix %d vs %d vertices: %w", methodValidate, g.adj.Dimension(), n, ErrInconsistent)
	}
	if !g.adj.Sized() && len(g.edges) > 0 {
		return fmt.Errorf("%s: %d edges without matrix: %w", methodValidate, len(g.edges), ErrInconsistent)
	}

	// edges ⇒ matrix, no duplicates, segment snapshot matches positions
	seen := make(map[[2]int]struct{}, len(g.edges))
	for _, e := range g.edges {
		if !g.hasVertex(e.U) || !g.hasVertex(e.V) || e.U == e.V {
			return fmt.Errorf("%s: edge {%d,%d}: %w", methodValidate, e.U, e.V, ErrInconsistent)
		}
		key := edgeKey(e.U, e.V)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%s: duplicate edge {%d,%d}: %w", methodValidate, e.U, e.V, ErrInconsistent)
		}
		seen[key] = struct{}{}
		if !g.adj.Has(e.U, e.V) {
			return fmt.Errorf("%s: edge {%d,%d} missing in matrix: %w", methodValidate, e.U, e.V, ErrInconsistent)
		}
		if e.Seg != geom.NewSegment(g.vertices[e.U].Pos, g.vertices[e.V].Pos) {
			return fmt.Errorf("%s: edge {%d,%d} stale segment: %w", methodValidate, e.U, e.V, ErrInconsistent)
		}
	}
	if c := g.adj.Count(); c != len(g.edges) {
		return fmt.Errorf("%s: matrix has %d cells, %d edges: %w", methodValidate, c, len(g.edges), ErrInconsistent)
	}

	// neighbor lists ⇔ edges
	degree := 0
	for _, v := range g.vertices {
		for _, w := range v.Neighbors {
			if _, ok := seen[edgeKey(v.ID, w)]; !ok {
				return fmt.Errorf("%s: neighbor %d of %d without edge: %w", methodValidate, w, v.ID, ErrInconsistent)
			}
		}
		degree += len(v.Neighbors)
	}
	if degree != 2*len(g.edges) {
		return fmt.Errorf("%s: degree sum %d for %d edges: %w", methodValidate, degree, len(g.edges), ErrInconsistent)
	}

	return nil
}

// CheckEmbedding verifies the drawing with vertex disks of the given radius:
// no two edges without a shared endpoint cross, and no edge passes through
// the disk of a vertex other than its endpoints.
// Complexity: O(E² + E·V).
func (g *Graph) CheckEmbedding(radius float64) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, e := range g.edges {
		for _, f := range g.edges[i+1:] {
			if geom.SegmentsCross(e.Seg, f.Seg) {
				return fmt.Errorf("%s: {%d,%d} x {%d,%d}: %w", methodCheckEmbedding, e.U, e.V, f.U, f.V, ErrEdgesCross)
			}
		}
		for _, v := range g.vertices {
			if v.ID == e.U || v.ID == e.V {
				continue
			}
			if geom.SegmentNearPoint(e.Seg, v.Pos, radius) {
				return fmt.Errorf("%s: {%d,%d} near %d: %w", methodCheckEmbedding, e.U, e.V, v.ID, ErrEdgeNearVertex)
			}
		}
	}

	return nil
}

func edgeKey(u, v int) [2]int {
	if u < v {
		u, v = v, u
	}

	return [2]int{u, v}
}
