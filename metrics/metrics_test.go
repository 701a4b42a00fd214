package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planegraph/builder"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r.registry)
	assert.NotNil(t, r.VerticesPlacedTotal)
	assert.NotNil(t, r.EdgeProposalsTotal)
	assert.NotNil(t, r.BridgeSearchesTotal)
	assert.NotNil(t, r.GenerationsTotal)
	assert.NotNil(t, r.GenerationDuration)

	// independent registries do not collide
	assert.NotSame(t, r.registry, NewRegistry().registry)
}

func TestObserverEvents(t *testing.T) {
	r := NewRegistry()

	r.VertexPlaced(builder.PlacedRandom)
	r.VertexPlaced(builder.PlacedRandom)
	r.VertexPlaced(builder.PlacedSweep)
	r.EdgeProposal(builder.OutcomeAccepted)
	r.EdgeProposal(builder.OutcomeCross)
	r.EdgeProposal(builder.OutcomeCross)
	r.BridgeSearch(true)
	r.Generated(builder.KindPlanar, 3, 2, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.VerticesPlacedTotal.WithLabelValues("random")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.VerticesPlacedTotal.WithLabelValues("sweep")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.EdgeProposalsTotal.WithLabelValues("cross")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.BridgeSearchesTotal.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.GenerationsTotal.WithLabelValues("planar")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.GeneratedVertices))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.GeneratedEdges))

	h, err := r.GenerationDuration.GetMetricWithLabelValues("planar")
	require.NoError(t, err)
	var m dto.Metric
	require.NoError(t, h.(prometheus.Histogram).Write(&m))
	assert.Equal(t, uint64(1), m.GetHistogram().GetSampleCount())
	assert.InDelta(t, 0.005, m.GetHistogram().GetSampleSum(), 1e-9)
}

func TestRegistry_AsBuilderObserver(t *testing.T) {
	r := NewRegistry()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(4), builder.WithObserver(r)},
		builder.Planar(20))
	require.NoError(t, err)

	placed := testutil.ToFloat64(r.VerticesPlacedTotal.WithLabelValues("random")) +
		testutil.ToFloat64(r.VerticesPlacedTotal.WithLabelValues("sweep"))
	assert.Equal(t, 20.0, placed)
	accepted := testutil.ToFloat64(r.EdgeProposalsTotal.WithLabelValues("accepted")) +
		testutil.ToFloat64(r.BridgeSearchesTotal.WithLabelValues("true"))
	assert.Equal(t, float64(g.EdgeCount()), accepted)
	assert.Equal(t, float64(g.EdgeCount()), testutil.ToFloat64(r.GeneratedEdges))
}

func TestWriteText(t *testing.T) {
	r := NewRegistry()
	r.Generated(builder.KindTree, 10, 9, time.Millisecond)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "# TYPE planegraph_generations_total counter")
	assert.Contains(t, out, `planegraph_generations_total{kind="tree"} 1`)
	assert.Contains(t, out, "planegraph_last_generated_edges 9")
	assert.Contains(t, out, `planegraph_generation_duration_seconds_count{kind="tree"} 1`)
}
