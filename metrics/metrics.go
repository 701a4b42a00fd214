// SPDX-License-Identifier: MIT
// Package: planegraph/metrics

package metrics

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/planegraph/builder"
)

var _ builder.Observer = (*Registry)(nil)

// NewRegistry creates a Registry backed by its own prometheus.Registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initBuilderMetrics()

	return r
}

func (r *Registry) initBuilderMetrics() {
	r.VerticesPlacedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "planegraph_vertices_placed_total",
			Help: "Vertices placed on the grid, by placement path",
		},
		[]string{"path"}, // random, sweep
	)

	r.EdgeProposalsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "planegraph_edge_proposals_total",
			Help: "Random edge proposals, by outcome",
		},
		[]string{"outcome"}, // accepted, same_vertex, existing, cross, near_vertex
	)

	r.BridgeSearchesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "planegraph_bridge_searches_total",
			Help: "Bridge searches after stalled proposals, by result",
		},
		[]string{"found"}, // true, false
	)

	r.GenerationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "planegraph_generations_total",
			Help: "Completed graph generations, by kind",
		},
		[]string{"kind"}, // planar, tree
	)

	r.GenerationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planegraph_generation_duration_seconds",
			Help:    "Wall time of a graph generation in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		},
		[]string{"kind"},
	)

	r.GeneratedVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "planegraph_last_generated_vertices",
			Help: "Vertex count of the most recent generation",
		},
	)

	r.GeneratedEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "planegraph_last_generated_edges",
			Help: "Edge count of the most recent generation",
		},
	)
}

// VertexPlaced records one placed vertex.
func (r *Registry) VertexPlaced(path builder.PlacementPath) {
	r.VerticesPlacedTotal.WithLabelValues(string(path)).Inc()
}

// EdgeProposal records one proposal outcome.
func (r *Registry) EdgeProposal(outcome builder.ProposalOutcome) {
	r.EdgeProposalsTotal.WithLabelValues(string(outcome)).Inc()
}

// BridgeSearch records a bridge search result.
func (r *Registry) BridgeSearch(found bool) {
	r.BridgeSearchesTotal.WithLabelValues(strconv.FormatBool(found)).Inc()
}

// Generated records a completed generation.
func (r *Registry) Generated(kind string, vertices, edges int, elapsed time.Duration) {
	r.GenerationsTotal.WithLabelValues(kind).Inc()
	r.GenerationDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
	r.GeneratedVertices.Set(float64(vertices))
	r.GeneratedEdges.Set(float64(edges))
}

// Gatherer exposes the underlying registry, e.g. for promhttp.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

// WriteText writes every metric family in the text exposition format.
func (r *Registry) WriteText(w io.Writer) error {
	mfs, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("WriteText: gather: %w", err)
	}
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("WriteText: %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
