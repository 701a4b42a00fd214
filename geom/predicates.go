// SPDX-License-Identifier: MIT
// Package: planegraph/geom
//
// predicates.go - crossing and proximity tests between segments and vertices.
//
// Contract:
//   - Parallel or colinear segments never cross (overlap along a shared line
//     is not reported; generation only ever proposes segments between disk
//     centers on a grid, where the proximity test rejects the colinear case).
//   - Segments sharing an endpoint never cross: edges meeting at a vertex are
//     the normal shape of a planar embedding.
//   - A point that is an endpoint of the segment is never "near" it.

package geom

// SegmentsCross reports whether s1 and s2 intersect at a point that is not a
// shared endpoint.
//
// The two implicit lines are solved as a 2×2 system with determinant
// k = a2·b1 − a1·b2; the intersection must lie inside the bounding interval
// of both segments on both axes.
func SegmentsCross(s1, s2 Segment) bool {
	k := s2.A*s1.B - s1.A*s2.B
	if Eq(k, 0) {
		return false
	}
	if SamePoint(s1.P1, s2.P1) || SamePoint(s1.P2, s2.P1) ||
		SamePoint(s1.P1, s2.P2) || SamePoint(s1.P2, s2.P2) {
		return false
	}

	x := (s2.B*s1.C - s1.B*s2.C) / k
	y := (s1.A*s2.C - s2.A*s1.C) / k

	return InRange(x, s1.P1.X, s1.P2.X) && InRange(x, s2.P1.X, s2.P2.X) &&
		InRange(y, s1.P1.Y, s1.P2.Y) && InRange(y, s2.P1.Y, s2.P2.Y)
}

// SegmentNearPoint reports whether the disk of the given radius centered at p
// is touched by s, i.e. whether drawing s would visibly run through a vertex
// that is not one of its endpoints.
//
// Degenerate segments (zero length) and points coinciding with an endpoint
// are never near. Otherwise the foot of the perpendicular from p onto the
// line must fall within the segment's bounding interval and be closer than
// radius (squared distance < radius² + Eps).
func SegmentNearPoint(s Segment, p Point, radius float64) bool {
	if Eq(s.L, 0) || s.HasEndpoint(p) {
		return false
	}

	l2 := s.L * s.L
	x := (s.B*s.B*p.X - s.A*(s.C+s.B*p.Y)) / l2
	y := (s.A*s.A*p.Y - s.B*(s.C+s.A*p.X)) / l2
	if !InRange(x, s.P1.X, s.P2.X) || !InRange(y, s.P1.Y, s.P2.Y) {
		return false
	}

	dx, dy := x-p.X, y-p.Y

	return dx*dx+dy*dy < radius*radius+Eps
}
