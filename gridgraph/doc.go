// Package gridgraph lays a square placement grid over the drawing area and
// tracks which cells already hold a vertex.
//
// What:
//
//   - SlotGrid divides a side×side square into M×M cells, M = ⌊side/radius/4⌋.
//   - Cell (row, col) is centered at (offset + row·pitch, offset + col·pitch)
//     with offset = 2·side·radius/(side + 4·radius) + radius and
//     pitch = offset + radius, so neighboring disks keep a clear gap of
//     pitch − 2·radius and the outermost disks stay inside the square.
//   - Occupancy is kept per row-major cell index; FreeCells sweeps the free
//     ones in index order for deterministic fallback placement.
//   - Jitter optionally nudges every center by opensimplex noise, bounded so
//     that disks still never overlap or leave the square.
//
// Complexity:
//
//   - Index/Coordinate/Center/Occupy: O(1).
//   - FreeCells: O(M²).
//
// Errors:
//
//   - ErrBadGeometry: side or radius not positive.
//   - ErrCellIndex:   cell index outside [0, M²).
//   - ErrCellOccupied: cell already holds a vertex.
package gridgraph
