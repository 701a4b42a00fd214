package core_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planegraph/core"
	"github.com/katalvlaran/planegraph/geom"
	"github.com/katalvlaran/planegraph/matrix"
)

// square builds the 4-cycle 0-1-2-3 on the corners of a 100×100 square.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}} {
		g.AddVertex("", p)
	}
	require.NoError(t, g.InitAdjacency(4))
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestNewGraph_Identity(t *testing.T) {
	a, b := core.NewGraph(), core.NewGraph()
	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())

	id := uuid.MustParse("0b8e6a3c-33a4-4c79-9a4f-0b3b9f5f9c11")
	assert.Equal(t, id, core.NewGraph(core.WithID(id)).ID())
}

func TestAddVertex_Labels(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex("", geom.Point{X: 1, Y: 2})
	b := g.AddVertex("{1, 2}", geom.Point{X: 3, Y: 4})

	require.Equal(t, 0, a)
	require.Equal(t, 1, b)
	v, err := g.Vertex(a)
	require.NoError(t, err)
	assert.Equal(t, "0", v.Label)
	assert.Equal(t, geom.Point{X: 1, Y: 2}, v.Pos)
	v, err = g.Vertex(b)
	require.NoError(t, err)
	assert.Equal(t, "{1, 2}", v.Label)

	_, err = g.Vertex(2)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.True(t, g.HasVertex(1))
	assert.False(t, g.HasVertex(-1))
}

func TestAddEdge_MaintainsAllViews(t *testing.T) {
	g := square(t)

	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 0))
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(0, 2))
	assert.Equal(t, []int{1, 3}, g.NeighborIDs(0))
	assert.Equal(t, []int{0, 2}, g.NeighborIDs(1))
	assert.Equal(t, 2, g.Degree(2))
	assert.Equal(t, 4, g.Adjacency().Count())

	e := g.Edges()[1]
	assert.Equal(t, 1, e.U)
	assert.Equal(t, 2, e.V)
	assert.Equal(t, 2, e.Other(1))
	assert.Equal(t, 100.0, e.Seg.Length())

	require.NoError(t, g.Validate())
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("", geom.Point{})
	g.AddVertex("", geom.Point{X: 50})

	require.ErrorIs(t, g.AddEdge(0, 1), core.ErrAdjacencyUnsized)
	require.NoError(t, g.InitAdjacency(2))
	require.ErrorIs(t, g.InitAdjacency(2), core.ErrAdjacencySized)

	tests := []struct {
		name string
		u, v int
		want error
	}{
		{"unknown vertex", 0, 5, core.ErrVertexNotFound},
		{"negative vertex", -1, 0, core.ErrVertexNotFound},
		{"loop", 1, 1, core.ErrLoopNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tc.u, tc.v), tc.want)
		})
	}

	require.NoError(t, g.AddEdge(0, 1))
	require.ErrorIs(t, g.AddEdge(1, 0), core.ErrMultiEdgeNotAllowed)
	assert.Equal(t, 1, g.EdgeCount())
	require.NoError(t, g.Validate())
}

func TestAddEdge_VertexBeyondMatrix(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("", geom.Point{})
	require.NoError(t, g.InitAdjacency(1))
	g.AddVertex("", geom.Point{X: 1})

	require.ErrorIs(t, g.AddEdge(0, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, g.Validate(), core.ErrInconsistent)
}

func TestVertices_ReturnsCopies(t *testing.T) {
	g := square(t)
	vs := g.Vertices()
	vs[0].Neighbors[0] = 99
	vs[0].Label = "changed"

	assert.Equal(t, []int{1, 3}, g.NeighborIDs(0))
	v, _ := g.Vertex(0)
	assert.Equal(t, "0", v.Label)
}

func TestFromMatrix(t *testing.T) {
	src := square(t)

	g, err := core.FromMatrix(src.Adjacency(), src.Vertices())
	require.NoError(t, err)
	assert.NotEqual(t, src.ID(), g.ID())
	assert.Equal(t, 4, g.EdgeCount())
	for _, e := range src.Edges() {
		assert.True(t, g.HasEdge(e.U, e.V))
	}
	// row-major wiring: (1,0) (2,1) (3,0) (3,2)
	assert.Equal(t, []int{1, 3}, g.NeighborIDs(0))
	assert.Equal(t, []int{0, 2}, g.NeighborIDs(3))
	require.NoError(t, g.Validate())
}

func TestFromMatrix_KeepsEmptyLabel(t *testing.T) {
	m, err := matrix.NewTriangleSized(1)
	require.NoError(t, err)

	g, err := core.FromMatrix(m, []core.Vertex{{Label: "", Pos: geom.Point{X: 5, Y: 5}}})
	require.NoError(t, err)
	v, err := g.Vertex(0)
	require.NoError(t, err)
	assert.Equal(t, "", v.Label)
}

func TestFromMatrix_Errors(t *testing.T) {
	_, err := core.FromMatrix(matrix.NewTriangle(), nil)
	assert.ErrorIs(t, err, core.ErrAdjacencyUnsized)

	m, err := matrix.NewTriangleSized(3)
	require.NoError(t, err)
	_, err = core.FromMatrix(m, make([]core.Vertex, 2))
	assert.ErrorIs(t, err, core.ErrInconsistent)
}

func TestAdopt_MovesStructure(t *testing.T) {
	src := square(t)
	want := src.Vertices()

	g := core.NewGraph()
	id := g.ID()
	g.ShowSubgraph([]int{0, 1})
	g.Adopt(src)

	assert.Equal(t, id, g.ID(), "id is kept")
	assert.Equal(t, want, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 4, g.Adjacency().Dimension())
	assert.True(t, g.Filtered(), "display filter is kept")
	require.NoError(t, g.Validate())

	assert.Equal(t, 0, src.VertexCount())
	assert.Equal(t, 0, src.EdgeCount())
	assert.False(t, src.Adjacency().Sized())

	g.Adopt(g)
	assert.Equal(t, 4, g.VertexCount(), "self-adopt is a no-op")
}
