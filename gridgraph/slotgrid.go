// SPDX-License-Identifier: MIT
// Package: planegraph/gridgraph
//
// slotgrid.go - cell geometry, occupancy and jitter.

package gridgraph

import (
	"fmt"
	"math"

	"github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/planegraph/geom"
)

const (
	methodNewSlotGrid = "NewSlotGrid"
	methodOccupy      = "Occupy"

	// noiseScale spreads neighboring cells apart in noise space.
	noiseScale = 0.37
	// noiseShift decorrelates the y sample from the x sample.
	noiseShift = 101.3
)

// NewSlotGrid derives the grid for a side×side square and disks of radius.
// A radius too large for the side yields a 0×0 grid (capacity 0); a ratio
// giving more than MaxSize cells per axis is ErrBadGeometry.
// Complexity: O(M²) for the occupancy slice.
func NewSlotGrid(side, radius float64) (*SlotGrid, error) {
	if !(side > 0) || !(radius > 0) {
		return nil, fmt.Errorf("%s: side=%g radius=%g: %w", methodNewSlotGrid, side, radius, ErrBadGeometry)
	}
	cells := math.Floor(side / radius / 4)
	if cells > MaxSize {
		return nil, fmt.Errorf("%s: side=%g radius=%g gives %g cells per axis, max %d: %w",
			methodNewSlotGrid, side, radius, cells, MaxSize, ErrBadGeometry)
	}
	m := int(cells)
	offset := 2*side*radius/(side+4*radius) + radius

	return &SlotGrid{
		Side:     side,
		Radius:   radius,
		Size:     m,
		Offset:   offset,
		Pitch:    offset + radius,
		occupied: make([]bool, m*m),
	}, nil
}

// Capacity returns M², the number of cells.
func (sg *SlotGrid) Capacity() int { return sg.Size * sg.Size }

// Gap returns the clear distance between neighboring disks.
func (sg *SlotGrid) Gap() float64 { return sg.Pitch - 2*sg.Radius }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (sg *SlotGrid) InBounds(row, col int) bool {
	return row >= 0 && row < sg.Size && col >= 0 && col < sg.Size
}

// Index maps (row, col) to a row-major index: row*M + col.
// Complexity: O(1).
func (sg *SlotGrid) Index(row, col int) int {
	return row*sg.Size + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (sg *SlotGrid) Coordinate(idx int) (row, col int) {
	return idx / sg.Size, idx % sg.Size
}

// Occupied reports whether cell idx holds a vertex. Out-of-range is false.
func (sg *SlotGrid) Occupied(idx int) bool {
	return idx >= 0 && idx < len(sg.occupied) && sg.occupied[idx]
}

// Occupy marks cell idx as used.
func (sg *SlotGrid) Occupy(idx int) error {
	if idx < 0 || idx >= len(sg.occupied) {
		return fmt.Errorf("%s: %d of %d: %w", methodOccupy, idx, len(sg.occupied), ErrCellIndex)
	}
	if sg.occupied[idx] {
		return fmt.Errorf("%s: %d: %w", methodOccupy, idx, ErrCellOccupied)
	}
	sg.occupied[idx] = true
	sg.used++

	return nil
}

// FreeCount returns the number of unoccupied cells.
func (sg *SlotGrid) FreeCount() int { return len(sg.occupied) - sg.used }

// FreeCells lists unoccupied cell indices in ascending order.
// Complexity: O(M²).
func (sg *SlotGrid) FreeCells() []int {
	out := make([]int, 0, sg.FreeCount())
	for i, busy := range sg.occupied {
		if !busy {
			out = append(out, i)
		}
	}

	return out
}

// Jitter enables noise displacement of centers. amount is the fraction of
// half the gap a center may move per axis and must be in [0, 1); 0 or a nil
// noise disables it.
func (sg *SlotGrid) Jitter(amount float64, noise opensimplex.Noise) {
	if amount < 0 || amount >= 1 || noise == nil {
		sg.amount, sg.noise = 0, nil

		return
	}
	sg.amount, sg.noise = amount, noise
}

// Center returns the disk center of cell (row, col), jittered if enabled.
func (sg *SlotGrid) Center(row, col int) geom.Point {
	c := geom.Point{
		X: sg.Offset + float64(row)*sg.Pitch,
		Y: sg.Offset + float64(col)*sg.Pitch,
	}
	if sg.noise == nil || sg.amount == 0 {
		return c
	}

	limit := sg.amount * sg.Gap() / 2
	nx := clampUnit(sg.noise.Eval2(float64(row)*noiseScale, float64(col)*noiseScale))
	ny := clampUnit(sg.noise.Eval2(float64(row)*noiseScale+noiseShift, float64(col)*noiseScale+noiseShift))

	return r2.Add(c, r2.Vec{X: nx * limit, Y: ny * limit})
}

// CenterAt is Center for a row-major index.
func (sg *SlotGrid) CenterAt(idx int) geom.Point {
	return sg.Center(sg.Coordinate(idx))
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
