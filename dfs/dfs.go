// SPDX-License-Identifier: MIT
// Package: planegraph/dfs
//
// dfs.go - recursive depth-first walker, single source and forest mode.

package dfs

import "sort"

// walker encapsulates state during DFS.
type walker struct {
	graph   Graph
	visited []bool
	order   []int // discovery order of the current tree
}

func newWalker(g Graph) *walker {
	return &walker{graph: g, visited: make([]bool, g.VertexCount())}
}

// traverse marks id and recurses into unvisited neighbors.
func (w *walker) traverse(id int) {
	w.visited[id] = true
	w.order = append(w.order, id)

	for _, nid := range w.graph.NeighborIDs(id) {
		if nid < 0 || nid >= len(w.visited) {
			continue
		}
		if !w.visited[nid] {
			w.traverse(nid)
		}
	}
}

// Reach returns visited flags for a traversal rooted at start.
func Reach(g Graph, start int) []bool {
	w := newWalker(g)
	if start >= 0 && start < len(w.visited) {
		w.traverse(start)
	}

	return w.visited
}

// IsConnected reports whether every vertex is reachable from vertex 0.
// Graphs with zero or one vertex are connected.
func IsConnected(g Graph) bool {
	if g.VertexCount() <= 1 {
		return true
	}
	for _, ok := range Reach(g, 0) {
		if !ok {
			return false
		}
	}

	return true
}

// Components runs a forest traversal, starting trees at ascending ids.
// Each component lists its ids in ascending order; components are ordered by
// their smallest id.
func Components(g Graph) [][]int {
	w := newWalker(g)
	var comps [][]int
	for v := range w.visited {
		if w.visited[v] {
			continue
		}
		w.order = nil
		w.traverse(v)
		comp := append([]int(nil), w.order...)
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}

// ComponentIndex maps each vertex id to the index of its component in
// Components(g).
func ComponentIndex(g Graph) []int {
	idx := make([]int, g.VertexCount())
	for c, comp := range Components(g) {
		for _, v := range comp {
			idx[v] = c
		}
	}

	return idx
}
