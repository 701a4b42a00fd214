// SPDX-License-Identifier: MIT
// Package: planegraph/core
//
// methods_vertices.go - vertex arena: insertion and queries.

package core

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/planegraph/geom"
)

const methodVertex = "Vertex"

// AddVertex appends a vertex and returns its id. An empty label becomes the
// decimal id.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(label string, pos geom.Point) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := len(g.vertices)
	if label == "" {
		label = strconv.Itoa(id)
	}
	g.vertices = append(g.vertices, Vertex{ID: id, Label: label, Pos: pos})

	return id
}

// HasVertex reports whether id addresses a vertex.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertex(id)
}

func (g *Graph) hasVertex(id int) bool { return id >= 0 && id < len(g.vertices) }

// Vertex returns a copy of vertex id.
func (g *Graph) Vertex(id int) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(id) {
		return Vertex{}, fmt.Errorf("%s: id %d: %w", methodVertex, id, ErrVertexNotFound)
	}

	return copyVertex(g.vertices[id]), nil
}

// Vertices returns copies of all vertices in id order.
// Complexity: O(V + E).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = copyVertex(v)
	}

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// NeighborIDs returns the ids adjacent to id in insertion order; nil for an
// unknown id.
func (g *Graph) NeighborIDs(id int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(id) {
		return nil
	}

	return append([]int(nil), g.vertices[id].Neighbors...)
}

// Degree returns the number of neighbors of id (0 for an unknown id).
func (g *Graph) Degree(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(id) {
		return 0
	}

	return len(g.vertices[id].Neighbors)
}

func copyVertex(v Vertex) Vertex {
	v.Neighbors = append([]int(nil), v.Neighbors...)

	return v
}
