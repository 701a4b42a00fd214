// Package planegraph generates drawable graphs in a square and keeps them
// consistent from generation through storage.
//
// 🚀 What is planegraph?
//
//	A small, seedable toolkit that brings together:
//		• Planar random graphs: vertices on a placement grid, straight edges
//		  that never cross and never graze a third vertex, closed to connectivity
//		• Combination trees: the trie of all k-combinations of 1..n, laid out
//		  layer by layer and flattened into a graph
//		• One adjacency record: neighbor lists, edge list and a triangular
//		  matrix kept in agreement, with an audit that proves it
//		• Display filter: show a subgraph without touching the structure
//		• Two-artifact persistence: matrix/<name> and nodes/<name>
//
// Packages:
//
//	geom/      — segment coefficients, crossing and proximity predicates
//	matrix/    — strict lower triangular adjacency matrix + text artifact
//	dfs/       — reachability, connectivity, components
//	core/      — Graph aggregate, display filter, Validate/CheckEmbedding
//	gridgraph/ — placement grid (cell geometry, occupancy, optional jitter)
//	combtree/  — combination trie enumeration and layout
//	builder/   — Planar and CombinationTree constructors, BuildGraph
//	storage/   — Encode/Decode, FileStore, subgraph id lists
//	metrics/   — Prometheus registry observing generation
//	config/    — YAML configuration with validation
//
// Quick ASCII example (CombinationTree(3, 2)):
//
//	        {}
//	       /  \
//	    {1}    {2}
//	    / \      \
//	{1, 2} {1, 3} {2, 3}
//
// The command in cmd/planegraph wires everything together.
package planegraph
