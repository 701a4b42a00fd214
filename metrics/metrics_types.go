// SPDX-License-Identifier: MIT
// Package: planegraph/metrics

package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry holds all generation metrics.
type Registry struct {
	// Placement
	VerticesPlacedTotal *prometheus.CounterVec

	// Edge closure
	EdgeProposalsTotal  *prometheus.CounterVec
	BridgeSearchesTotal *prometheus.CounterVec

	// Completed generations
	GenerationsTotal   *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
	GeneratedVertices  prometheus.Gauge
	GeneratedEdges     prometheus.Gauge

	registry *prometheus.Registry
}
