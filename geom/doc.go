// SPDX-License-Identifier: MIT
// Package geom holds the planar predicates used while growing a straight-line
// embedding: a segment snapshot with cached implicit line coefficients, a
// segment/segment crossing test and a segment/disk proximity test.
//
// All equality and range tests share one absolute tolerance, Eps. The scale the
// predicates are tuned for is coordinates in the hundreds (a 600×600 canvas
// with vertex radii around 10); far larger coordinates make the absolute
// tolerance progressively stricter.
//
// Positions are gonum r2.Vec values so callers can use the r2 vector helpers
// directly.
//
// Complexity:
//   - NewSegment, SegmentsCross, SegmentNearPoint: O(1) time, O(1) space.
package geom
