// Package dfs answers reachability questions for the generators.
//
// What:
//
//   - Reach(g, start): the set of vertices reachable from start.
//   - IsConnected(g): every vertex reachable from vertex 0 (an empty graph
//     counts as connected).
//   - Components(g): connected components in forest order, each sorted.
//
// The package works on any id-indexed neighbor view (the Graph interface):
// vertex ids are dense integers 0..VertexCount()−1. core.Graph satisfies it,
// and so can a test fixture or a filtered view.
//
// Complexity: Time O(V + E), Memory O(V) per call.
//
// Errors: none. Out-of-range neighbor ids are ignored; an out-of-range start
// yields an all-false Reach.
package dfs
