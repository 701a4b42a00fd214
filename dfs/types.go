// SPDX-License-Identifier: MIT
// Package: planegraph/dfs
//
// types.go - the neighbor view traversal works on.

package dfs

// Graph is an undirected graph with dense integer vertex ids.
type Graph interface {
	// VertexCount returns the number of vertices; ids are 0..VertexCount()−1.
	VertexCount() int

	// NeighborIDs returns the ids adjacent to id. The slice is only read.
	NeighborIDs(id int) []int
}
