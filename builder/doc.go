// Package builder generates the two kinds of drawable graphs: planar random
// graphs scattered over a placement grid, and laid-out combination trees.
//
// The package follows one pattern for both:
//
//   - Constructor: func(g *core.Graph, cfg builderConfig) error. A constructor
//     populates an empty graph in a single call and sizes its adjacency
//     matrix exactly once.
//   - BuildGraph(gopts, bopts, cons...): creates the graph, resolves options
//     into a builderConfig (passed by value), and runs the constructors.
//   - BuilderOption: WithSeed/WithRand supply randomness (stochastic
//     constructors fail with ErrNeedRandSource without one), WithRadius and
//     WithSide describe the drawing, WithPlacementAttempts/WithEdgeAttempts
//     bound the rejection loops, WithJitter perturbs grid centers and
//     WithObserver receives progress events. Option constructors panic on
//     meaningless values; constructors never panic.
//
// Planar(n):
//
//  1. Guard n against the grid capacity M² (ErrGridCapacity).
//  2. Place n vertices at random free cells; after WithPlacementAttempts
//     misses for one vertex, pick uniformly among the remaining free cells.
//  3. Propose random vertex pairs until the graph is connected, accepting a
//     pair only if it is new, crosses no edge and passes near no third
//     vertex. After WithEdgeAttempts consecutive rejections, connect two
//     components by the shortest admissible bridge; if none exists the
//     constructor fails with ErrUnreachableConnectivity.
//
// CombinationTree(n, k): enumerate, lay out and flatten the trie of all
// k-combinations of 1..n (see package combtree). Ids follow pre-order.
//
// Determinism: equal options, seed and constructor order give identical
// graphs (apart from the random graph uuid; use core.WithID to pin it).
package builder
