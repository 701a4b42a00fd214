// SPDX-License-Identifier: MIT
// Package: planegraph/gridgraph
//
// types.go - SlotGrid and sentinel errors.

package gridgraph

import (
	"errors"

	"github.com/ojrac/opensimplex-go"
)

// MaxSize bounds M, the cells per axis; M² occupancy flags are allocated up front.
const MaxSize = 4096

// Sentinel errors for gridgraph operations.
var (
	// ErrBadGeometry indicates a non-positive side or radius, or a grid
	// finer than MaxSize cells per axis.
	ErrBadGeometry = errors.New("gridgraph: bad side/radius geometry")
	// ErrCellIndex indicates a cell index outside the grid.
	ErrCellIndex = errors.New("gridgraph: cell index out of range")
	// ErrCellOccupied indicates a cell that already holds a vertex.
	ErrCellOccupied = errors.New("gridgraph: cell already occupied")
)

// SlotGrid is the placement grid for vertex disks of one radius.
// Size, Offset and Pitch are derived once in NewSlotGrid.
type SlotGrid struct {
	Side, Radius float64
	Size         int     // M, cells per axis
	Offset       float64 // center of cell 0 on each axis
	Pitch        float64 // center-to-center distance

	occupied []bool
	used     int

	noise  opensimplex.Noise
	amount float64
}
