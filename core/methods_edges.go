// SPDX-License-Identifier: MIT
// Package: planegraph/core
//
// methods_edges.go - adjacency sizing, edge insertion and queries.
// Determinism: Edges() returns edges in insertion order.

package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planegraph/geom"
	"github.com/katalvlaran/planegraph/matrix"
)

const (
	methodInitAdjacency = "InitAdjacency"
	methodAddEdge       = "AddEdge"
	methodFromMatrix    = "FromMatrix"
)

// InitAdjacency sizes the adjacency matrix to n. It may be called once.
func (g *Graph) InitAdjacency(n int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.adj.SetDimension(n); err != nil {
		if errors.Is(err, matrix.ErrAlreadySized) {
			return fmt.Errorf("%s: %w", methodInitAdjacency, ErrAdjacencySized)
		}

		return fmt.Errorf("%s: %w", methodInitAdjacency, err)
	}

	return nil
}

// AddEdge connects u and v, updating both neighbor lists, the edge list and
// the matrix cell together.
//
// Steps:
//  1. Both ids must address vertices (ErrVertexNotFound); u != v (ErrLoopNotAllowed).
//  2. The matrix must be sized (ErrAdjacencyUnsized) and the cell clear (ErrMultiEdgeNotAllowed).
//  3. Set the cell, record the Edge with its segment snapshot, append neighbors.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertex(u) || !g.hasVertex(v) {
		return fmt.Errorf("%s: {%d,%d}: %w", methodAddEdge, u, v, ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("%s: {%d,%d}: %w", methodAddEdge, u, v, ErrLoopNotAllowed)
	}
	if !g.adj.Sized() {
		return fmt.Errorf("%s: %w", methodAddEdge, ErrAdjacencyUnsized)
	}
	set, err := g.adj.At(u, v)
	if err != nil {
		return fmt.Errorf("%s: {%d,%d}: %w", methodAddEdge, u, v, err)
	}
	if set {
		return fmt.Errorf("%s: {%d,%d}: %w", methodAddEdge, u, v, ErrMultiEdgeNotAllowed)
	}

	_ = g.adj.Set(u, v, true) // cell validated above
	g.edges = append(g.edges, Edge{
		U:   u,
		V:   v,
		Seg: geom.NewSegment(g.vertices[u].Pos, g.vertices[v].Pos),
	})
	g.vertices[u].Neighbors = append(g.vertices[u].Neighbors, v)
	g.vertices[v].Neighbors = append(g.vertices[v].Neighbors, u)

	return nil
}

// HasEdge reports whether {u, v} is an edge, answered from the matrix.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj.Has(u, v)
}

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Edge(nil), g.edges...)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Adjacency exposes the matrix for serialization. Callers must not mutate it.
func (g *Graph) Adjacency() *matrix.Triangle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj
}

// FromMatrix rebuilds a Graph from a sized matrix and a vertex list whose
// order defines the ids. Labels are kept verbatim (including empty ones) and
// neighbor lists in the input are ignored. Edges are wired for every set cell
// (i, j), j < i, in row-major order.
func FromMatrix(m *matrix.Triangle, vertices []Vertex, opts ...GraphOption) (*Graph, error) {
	if !m.Sized() {
		return nil, fmt.Errorf("%s: %w", methodFromMatrix, ErrAdjacencyUnsized)
	}
	if m.Dimension() != len(vertices) {
		return nil, fmt.Errorf("%s: matrix %d vs %d vertices: %w",
			methodFromMatrix, m.Dimension(), len(vertices), ErrInconsistent)
	}

	g := NewGraph(opts...)
	g.vertices = make([]Vertex, len(vertices))
	for i, v := range vertices {
		g.vertices[i] = Vertex{ID: i, Label: v.Label, Pos: v.Pos}
	}
	if err := g.InitAdjacency(len(vertices)); err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromMatrix, err)
	}
	for _, p := range m.Pairs() {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFromMatrix, err)
		}
	}

	return g, nil
}

// Adopt moves the vertices, edges and matrix of src into g. g keeps its id
// and display filter; src is left empty with an unsized matrix.
// Complexity: O(1).
func (g *Graph) Adopt(src *Graph) {
	if g == src {
		return
	}

	src.mu.Lock()
	vs, es, adj := src.vertices, src.edges, src.adj
	src.vertices, src.edges, src.adj = nil, nil, matrix.NewTriangle()
	src.mu.Unlock()

	g.mu.Lock()
	g.vertices, g.edges, g.adj = vs, es, adj
	g.mu.Unlock()
}
