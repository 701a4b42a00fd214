// SPDX-License-Identifier: MIT
// Package: planegraph/core
//
// types.go - Vertex, Edge, Graph, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/planegraph/geom"
	"github.com/katalvlaran/planegraph/matrix"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrAdjacencyUnsized indicates AddEdge before InitAdjacency.
	ErrAdjacencyUnsized = errors.New("core: adjacency matrix not sized")

	// ErrAdjacencySized indicates a second InitAdjacency on the same graph.
	ErrAdjacencySized = errors.New("core: adjacency matrix already sized")

	// ErrInconsistent indicates the neighbor lists, edges and matrix disagree.
	ErrInconsistent = errors.New("core: inconsistent adjacency views")

	// ErrEdgesCross indicates two edges of the embedding intersect.
	ErrEdgesCross = errors.New("core: edges cross")

	// ErrEdgeNearVertex indicates an edge passes through a vertex disk.
	ErrEdgeNearVertex = errors.New("core: edge passes near a vertex")
)

// Vertex is a positioned, labelled node.
type Vertex struct {
	// ID is the vertex index in its Graph.
	ID int

	// Label is the display text; the decimal id unless set explicitly.
	Label string

	// Pos is the center of the vertex disk.
	Pos geom.Point

	// Neighbors lists adjacent ids in insertion order.
	Neighbors []int
}

// Edge is an undirected straight-line connection between U and V.
// Seg is captured from the endpoint positions when the edge is created.
type Edge struct {
	U, V int
	Seg  geom.Segment
}

// Other returns the endpoint that is not id.
func (e Edge) Other(id int) int {
	if e.U == id {
		return e.V
	}

	return e.U
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithID overrides the random graph identity.
func WithID(id uuid.UUID) GraphOption {
	return func(g *Graph) { g.id = id }
}

// Graph is the aggregate owning vertices, edges and the adjacency matrix.
type Graph struct {
	mu sync.RWMutex

	id       uuid.UUID
	vertices []Vertex
	edges    []Edge
	adj      *matrix.Triangle

	// display filter; nil means everything is visible
	view map[int]struct{}
}

// NewGraph creates an empty Graph with a fresh uuid.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		id:  uuid.New(),
		adj: matrix.NewTriangle(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// ID returns the graph identity.
func (g *Graph) ID() uuid.UUID { return g.id }
