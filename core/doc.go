// Package core provides the Graph aggregate produced by the generators: an
// arena of positioned vertices, the straight-line edges between them, and the
// triangular adjacency matrix that mirrors the edge set.
//
// Identity & relations:
//
//   - Vertices live in a Graph-owned slice; a vertex id is its index.
//   - Neighbor lists and edge endpoints hold ids, never pointers, so a Graph
//     can be copied, saved and reloaded without fixing up references.
//   - Every Graph carries a uuid (ID) used for logs and default artifact names.
//
// Four views of one relation:
//
//	A ∈ Neighbors(B)  ⇔  B ∈ Neighbors(A)  ⇔  Edge{A,B} exists  ⇔  matrix cell {A,B} set
//
// AddEdge maintains all four at once; Validate audits them.
//
// Lifecycle:
//
//	g := core.NewGraph()
//	id := g.AddVertex("", geom.Point{X: 10, Y: 10}) // label defaults to "0"
//	...
//	_ = g.InitAdjacency(g.VertexCount())            // exactly once
//	_ = g.AddEdge(0, 1)
//
// After generation a Graph is treated as immutable except for the display
// filter (ShowSubgraph / ShowFullGraph), which restricts what VisibleVertices
// and VisibleEdges report without touching the structure.
//
// CheckEmbedding audits a finished drawing with the same predicates the
// planar generator uses while it builds one.
//
// Concurrency: a Graph guards its state with a sync.RWMutex; readers of a
// finished graph may run in parallel.
//
// Errors:
//
//	ErrVertexNotFound      – id outside [0, VertexCount())
//	ErrLoopNotAllowed      – AddEdge(v, v)
//	ErrMultiEdgeNotAllowed – edge {u, v} already present
//	ErrAdjacencyUnsized    – AddEdge before InitAdjacency
//	ErrAdjacencySized      – second InitAdjacency
//	ErrInconsistent        – Validate found the views disagree
//	ErrEdgesCross          – CheckEmbedding: two edges intersect
//	ErrEdgeNearVertex      – CheckEmbedding: an edge runs through a vertex disk
package core
