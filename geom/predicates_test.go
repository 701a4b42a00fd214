package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planegraph/geom"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

func seg(x1, y1, x2, y2 float64) geom.Segment {
	return geom.NewSegment(pt(x1, y1), pt(x2, y2))
}

func TestNewSegment_Coefficients(t *testing.T) {
	s := seg(1, 2, 4, 6)

	require.Equal(t, 4.0, s.A) // y2 - y1
	require.Equal(t, -3.0, s.B) // x1 - x2
	require.Equal(t, 4.0*2-1*6, s.C)
	require.InDelta(t, 5.0, s.Length(), 1e-12)
	require.Equal(t, pt(2.5, 4), s.Midpoint())

	// Both endpoints satisfy a·x + b·y + c = 0.
	for _, p := range []geom.Point{s.P1, s.P2} {
		assert.InDelta(t, 0, s.A*p.X+s.B*p.Y+s.C, 1e-12)
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		x1, x2 float64
		want   bool
	}{
		{"inside", 5, 0, 10, true},
		{"inside reversed bounds", 5, 10, 0, true},
		{"exactly at lower bound", 0, 0, 10, true},
		{"exactly at upper bound", 10, 0, 10, true},
		{"within tolerance below", -geom.Eps / 2, 0, 10, true},
		{"a full eps below", -geom.Eps, 0, 10, false},
		{"a full eps above reversed", geom.Eps, 0, -10, false},
		{"far outside", 11, 0, 10, false},
		{"degenerate interval hit", 3, 3, 3, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.InRange(tc.x, tc.x1, tc.x2))
		})
	}
}

func TestSegmentsCross(t *testing.T) {
	tests := []struct {
		name string
		s1   geom.Segment
		s2   geom.Segment
		want bool
	}{
		{"proper X crossing", seg(0, 0, 10, 10), seg(0, 10, 10, 0), true},
		{"shared endpoint, not parallel", seg(0, 0, 10, 0), seg(0, 0, 0, 10), false},
		{"shared far endpoint", seg(0, 0, 10, 10), seg(20, 0, 10, 10), false},
		{"parallel", seg(0, 0, 10, 0), seg(0, 5, 10, 5), false},
		{"colinear overlapping", seg(0, 0, 10, 0), seg(5, 0, 15, 0), false},
		{"lines meet outside both", seg(0, 0, 1, 1), seg(10, 0, 9, 1), false},
		{"lines meet inside one only", seg(0, 0, 10, 10), seg(20, 0, 16, 4), false},
		{"T junction touches interior", seg(0, 0, 10, 0), seg(5, 0, 5, 10), true},
		{"axis aligned plus", seg(-5, 0, 5, 0), seg(0, -5, 0, 5), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.SegmentsCross(tc.s1, tc.s2))
			assert.Equal(t, tc.want, geom.SegmentsCross(tc.s2, tc.s1), "symmetry")
		})
	}
}

func TestSegmentNearPoint(t *testing.T) {
	const r = 10.0
	base := seg(0, 0, 100, 0)

	tests := []struct {
		name string
		s    geom.Segment
		p    geom.Point
		want bool
	}{
		{"on the segment", base, pt(50, 0), true},
		{"inside the disk", base, pt(50, 9.99), true},
		{"outside the disk", base, pt(50, 10.5), false},
		{"foot beyond the end", base, pt(105, 1), false},
		{"endpoint itself", base, pt(0, 0), false},
		{"other endpoint", base, pt(100, 0), false},
		{"zero length segment", seg(5, 5, 5, 5), pt(5, 6), false},
		{"diagonal, close", seg(0, 0, 100, 100), pt(50, 55), true},
		{"diagonal, far", seg(0, 0, 100, 100), pt(50, 70), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.SegmentNearPoint(tc.s, tc.p, r))
		})
	}
}

func TestSamePoint(t *testing.T) {
	assert.True(t, geom.SamePoint(pt(1, 1), pt(1+geom.Eps/2, 1)))
	assert.False(t, geom.SamePoint(pt(1, 1), pt(1, 1.001)))
	assert.True(t, seg(0, 0, 3, 4).HasEndpoint(pt(3, 4)))
}
