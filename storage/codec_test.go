package storage_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planegraph/builder"
	"github.com/katalvlaran/planegraph/core"
	"github.com/katalvlaran/planegraph/geom"
	"github.com/katalvlaran/planegraph/matrix"
	"github.com/katalvlaran/planegraph/storage"
)

// triangle builds three labelled vertices joined 0–1 and 1–2.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	g.AddVertex("", geom.Point{X: 100, Y: 100})
	g.AddVertex("b", geom.Point{X: 150.5, Y: 100})
	g.AddVertex("center vertex", geom.Point{X: 100, Y: 172.25})
	require.NoError(t, g.InitAdjacency(3))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 1))

	return g
}

func TestEncode_Layout(t *testing.T) {
	var m, n bytes.Buffer
	require.NoError(t, storage.Encode(triangle(t), &m, &n))

	assert.Equal(t, "3\n1\n0 1\n", m.String())
	assert.Equal(t, "3\n100 100 0\n150.5 100 b\n100 172.25 center vertex\n", n.String())
}

func TestRoundTrip_Planar(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(8), builder.WithJitter(0.7)}, builder.Planar(30))
	require.NoError(t, err)

	var m, n bytes.Buffer
	require.NoError(t, storage.Encode(g, &m, &n))
	h, err := storage.Decode(&m, &n)
	require.NoError(t, err)

	require.Equal(t, g.VertexCount(), h.VertexCount())
	for i, v := range g.Vertices() {
		w, err := h.Vertex(i)
		require.NoError(t, err)
		assert.Equal(t, v.Pos, w.Pos, "positions round-trip exactly")
		assert.Equal(t, v.Label, w.Label)
		assert.ElementsMatch(t, v.Neighbors, w.Neighbors)
	}
	assert.Equal(t, g.Adjacency().Pairs(), h.Adjacency().Pairs())
	require.NoError(t, h.Validate())
}

func TestRoundTrip_TreeLabels(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.CombinationTree(4, 2))
	require.NoError(t, err)

	var m, n bytes.Buffer
	require.NoError(t, storage.Encode(g, &m, &n))
	h, err := storage.Decode(&m, &n)
	require.NoError(t, err)

	for i, v := range g.Vertices() {
		w, _ := h.Vertex(i)
		assert.Equal(t, v.Label, w.Label)
	}
	assert.Equal(t, 9, h.EdgeCount())
}

func TestDecode_EmptyGraph(t *testing.T) {
	g, err := storage.Decode(strings.NewReader("0\n"), strings.NewReader("0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.True(t, g.IsConnected())
}

func TestDecode_LabelForms(t *testing.T) {
	nodes := "3\n1 2\n3 4 \n5 6  two  spaces\n"
	g, err := storage.Decode(strings.NewReader("3\n0\n0 0\n"), strings.NewReader(nodes))
	require.NoError(t, err)

	var labels []string
	for _, v := range g.Vertices() {
		labels = append(labels, v.Label)
	}
	assert.Equal(t, []string{"", "", " two  spaces"}, labels)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name          string
		matrix, nodes string
		want          error
	}{
		{"count mismatch", "2\n1\n", "3\n0 0\n1 1\n2 2\n", storage.ErrCountMismatch},
		{"truncated matrix", "3\n1\n", "3\n0 0\n1 1\n2 2\n", storage.ErrMalformed},
		{"bad cell", "2\n2\n", "2\n0 0\n1 1\n", matrix.ErrMalformed},
		{"truncated nodes", "2\n1\n", "2\n0 0\n", storage.ErrMalformed},
		{"bad coordinate", "2\n1\n", "2\n0 0\nx 1\n", storage.ErrMalformed},
		{"missing y", "2\n1\n", "2\n0 0\n7\n", storage.ErrMalformed},
		{"bad count", "1\n", "one\n0 0\n", storage.ErrMalformed},
		{"empty nodes", "1\n", "", storage.ErrMalformed},
		{"huge dimension", "4000000000\n", "0\n", storage.ErrMalformed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := storage.Decode(strings.NewReader(tc.matrix), strings.NewReader(tc.nodes))
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	var m, n bytes.Buffer

	g := core.NewGraph()
	g.AddVertex("a", geom.Point{})
	assert.ErrorIs(t, storage.Encode(g, &m, &n), matrix.ErrUnsized)

	g = core.NewGraph()
	g.AddVertex("two\nlines", geom.Point{})
	require.NoError(t, g.InitAdjacency(1))
	assert.ErrorIs(t, storage.Encode(g, &m, &n), storage.ErrMalformed)
}
