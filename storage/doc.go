// Package storage persists a Graph as two plain-text artifacts that share a
// name: the adjacency matrix (see package matrix for its layout) and the node
// list
//
//	3
//	100 100 0
//	150.5 100 1
//	100 172 center vertex
//
// whose first line is the vertex count and whose following lines hold
// "<x> <y> <label>". The label is everything after the single space that
// follows y, so it may contain spaces or be empty. Coordinates are written in
// the shortest form that parses back to the same float64.
//
// Encode and Decode work on streams; FileStore lays the artifacts out as
// <dir>/matrix/<name> and <dir>/nodes/<name>. Vertex ids after a load are the
// line order of the node list, and edges are wired in matrix row order.
//
// Errors:
//
//   - ErrMissingArtifact: one of the two files does not exist (also matches
//     fs.ErrNotExist).
//   - ErrCountMismatch: the node list and the matrix disagree on n.
//   - ErrMalformed: truncated rows, bad numbers or bad cells.
//   - ErrBadName: empty name or a name with path separators.
//
// A failed Load returns no graph and leaves nothing behind.
package storage
