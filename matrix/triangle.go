// SPDX-License-Identifier: MIT
// Package: planegraph/matrix
//
// triangle.go - strict lower-triangle boolean storage.

package matrix

import "fmt"

// MaxDimension bounds n for SetDimension and ReadFrom, keeping n·(n−1)/2
// cells near 128 MiB.
const MaxDimension = 1 << 14

const (
	methodSetDimension = "SetDimension"
	methodAt           = "At"
	methodSet          = "Set"
)

// Triangle is a symmetric boolean adjacency matrix without diagonal.
// The zero value is an unsized matrix ready for SetDimension.
type Triangle struct {
	n     int    // dimension
	sized bool   // SetDimension has succeeded
	cells []bool // row-major strict lower triangle
}

// NewTriangle returns an unsized matrix.
func NewTriangle() *Triangle { return &Triangle{} }

// NewTriangleSized is a convenience for NewTriangle followed by SetDimension.
func NewTriangleSized(n int) (*Triangle, error) {
	t := NewTriangle()
	if err := t.SetDimension(n); err != nil {
		return nil, err
	}

	return t, nil
}

// SetDimension allocates n·(n−1)/2 cleared cells. It may be called once.
func (t *Triangle) SetDimension(n int) error {
	if n < 0 || n > MaxDimension {
		return fmt.Errorf("%s: n=%d: %w", methodSetDimension, n, ErrBadShape)
	}
	if t.sized {
		return fmt.Errorf("%s: already %d: %w", methodSetDimension, t.n, ErrAlreadySized)
	}
	t.n = n
	t.cells = make([]bool, n*(n-1)/2)
	t.sized = true

	return nil
}

// Dimension returns n (0 while unsized).
func (t *Triangle) Dimension() int { return t.n }

// Sized reports whether SetDimension has succeeded.
func (t *Triangle) Sized() bool { return t.sized }

// At reports whether cell {i, j} is set. Index order does not matter.
func (t *Triangle) At(i, j int) (bool, error) {
	k, err := t.offset(methodAt, i, j)
	if err != nil {
		return false, err
	}

	return t.cells[k], nil
}

// Set writes cell {i, j}. Index order does not matter.
func (t *Triangle) Set(i, j int, v bool) error {
	k, err := t.offset(methodSet, i, j)
	if err != nil {
		return err
	}
	t.cells[k] = v

	return nil
}

// Has is At without the error: invalid cells read as false.
func (t *Triangle) Has(i, j int) bool {
	v, err := t.At(i, j)

	return err == nil && v
}

// Count returns the number of set cells.
func (t *Triangle) Count() int {
	c := 0
	for _, v := range t.cells {
		if v {
			c++
		}
	}

	return c
}

// Pairs lists set cells as (row, col) with row > col, in row-major order.
func (t *Triangle) Pairs() [][2]int {
	out := make([][2]int, 0, t.Count())
	for i := 1; i < t.n; i++ {
		base := i * (i - 1) / 2
		for j := 0; j < i; j++ {
			if t.cells[base+j] {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// offset normalizes {i, j} to row > col and returns the flat index.
func (t *Triangle) offset(method string, i, j int) (int, error) {
	if !t.sized {
		return 0, fmt.Errorf("%s: %w", method, ErrUnsized)
	}
	if i < 0 || j < 0 || i >= t.n || j >= t.n {
		return 0, fmt.Errorf("%s: (%d,%d) with n=%d: %w", method, i, j, t.n, ErrOutOfRange)
	}
	if i == j {
		return 0, fmt.Errorf("%s: (%d,%d): %w", method, i, j, ErrDiagonal)
	}
	if i < j {
		i, j = j, i
	}

	return i*(i-1)/2 + j, nil
}
