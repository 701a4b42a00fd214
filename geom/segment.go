// SPDX-License-Identifier: MIT
// Package: planegraph/geom
//
// segment.go - immutable segment snapshot with implicit line coefficients.

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Eps is the absolute tolerance for every equality and containment test.
const Eps = 1e-10

// Point is a position on the plane.
type Point = r2.Vec

// Segment is a snapshot of two endpoint positions taken at construction time
// together with the implicit line a·x + b·y + c = 0 through them.
//
//	A = y2 − y1
//	B = x1 − x2
//	C = x2·y1 − x1·y2
//	L = sqrt(A² + B²)
//
// A Segment never follows its endpoints: if the vertices it was built from
// move, a new Segment must be built.
type Segment struct {
	P1, P2  Point
	A, B, C float64
	L       float64
}

// NewSegment builds the snapshot for p1→p2.
func NewSegment(p1, p2 Point) Segment {
	a := p2.Y - p1.Y
	b := p1.X - p2.X

	return Segment{
		P1: p1,
		P2: p2,
		A:  a,
		B:  b,
		C:  p2.X*p1.Y - p1.X*p2.Y,
		L:  math.Sqrt(a*a + b*b),
	}
}

// Length returns the cached Euclidean length.
func (s Segment) Length() float64 { return s.L }

// Midpoint returns the middle of the segment.
func (s Segment) Midpoint() Point {
	return r2.Scale(0.5, r2.Add(s.P1, s.P2))
}

// HasEndpoint reports whether p coincides (within Eps) with either endpoint.
func (s Segment) HasEndpoint(p Point) bool {
	return SamePoint(s.P1, p) || SamePoint(s.P2, p)
}

// Eq reports |a − b| < Eps.
func Eq(a, b float64) bool {
	return math.Abs(a-b) < Eps
}

// SamePoint reports whether p and q agree on both axes within Eps.
func SamePoint(p, q Point) bool {
	return Eq(p.X, q.X) && Eq(p.Y, q.Y)
}

// InRange reports whether x lies in the closed interval spanned by x1 and x2
// with a tolerance strictly below Eps: the bounds themselves are inside, a
// value a full Eps beyond a bound is outside. The bounds may come in either
// order.
func InRange(x, x1, x2 float64) bool {
	if x1 > x2 {
		x1, x2 = x2, x1
	}

	return x+Eps > x1 && x-Eps < x2
}
