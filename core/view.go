// SPDX-License-Identifier: MIT
// Package: planegraph/core
//
// view.go - display filter. Toggling it never changes vertices, edges or the
// matrix; it only narrows what the Visible* queries report.

package core

// ShowSubgraph restricts visibility to ids. Unknown ids are kept in the set
// but match nothing.
func (g *Graph) ShowSubgraph(ids []int) {
	view := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		view[id] = struct{}{}
	}

	g.mu.Lock()
	g.view = view
	g.mu.Unlock()
}

// ShowFullGraph clears the display filter.
func (g *Graph) ShowFullGraph() {
	g.mu.Lock()
	g.view = nil
	g.mu.Unlock()
}

// Filtered reports whether a display filter is active.
func (g *Graph) Filtered() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.view != nil
}

// InView reports whether vertex id is visible.
func (g *Graph) InView(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inView(id)
}

// EdgeInView reports whether both endpoints of e are visible.
func (g *Graph) EdgeInView(e Edge) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inView(e.U) && g.inView(e.V)
}

// VisibleVertices returns copies of the visible vertices in id order.
func (g *Graph) VisibleVertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		if g.inView(v.ID) {
			out = append(out, copyVertex(v))
		}
	}

	return out
}

// VisibleEdges returns the edges whose endpoints are both visible.
func (g *Graph) VisibleEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if g.inView(e.U) && g.inView(e.V) {
			out = append(out, e)
		}
	}

	return out
}

func (g *Graph) inView(id int) bool {
	if !g.hasVertex(id) {
		return false
	}
	if g.view == nil {
		return true
	}
	_, ok := g.view[id]

	return ok
}
