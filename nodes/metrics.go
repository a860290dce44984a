// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"time"

	"cogentcore.org/nodes/graph"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the prometheus metrics of a [Scene]. All methods are
// safe to call on a nil *Metrics, which records nothing.
type Metrics struct {

	// Events counts the model notifications handled, by event type.
	Events *prometheus.CounterVec

	// NodeObjects is the current number of node visuals.
	NodeObjects prometheus.Gauge

	// ConnectionObjects is the current number of connection visuals.
	ConnectionObjects prometheus.Gauge

	// DraftConnections counts the draft connections made.
	DraftConnections prometheus.Counter

	// PopulateDuration is the time taken to build all visuals from the model.
	PopulateDuration prometheus.Histogram
}

// NewMetrics returns new [Metrics] registered on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Events: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "nodes_scene_events_total",
				Help: "Total number of model notifications handled by the scene",
			},
			[]string{"event"},
		),
		NodeObjects: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "nodes_scene_node_objects",
				Help: "Current number of node visuals in the scene",
			},
		),
		ConnectionObjects: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "nodes_scene_connection_objects",
				Help: "Current number of connection visuals in the scene",
			},
		),
		DraftConnections: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "nodes_scene_draft_connections_total",
				Help: "Total number of draft connections made",
			},
		),
		PopulateDuration: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nodes_scene_populate_duration_seconds",
				Help:    "Time taken to build all visuals from the model",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
		),
	}
}

// RecordEvent records a handled model notification.
func (m *Metrics) RecordEvent(tp graph.Types) {
	if m == nil {
		return
	}
	m.Events.WithLabelValues(tp.String()).Inc()
}

// SetCounts updates the visual count gauges.
func (m *Metrics) SetCounts(nodes, connections int) {
	if m == nil {
		return
	}
	m.NodeObjects.Set(float64(nodes))
	m.ConnectionObjects.Set(float64(connections))
}

// RecordDraft records a new draft connection.
func (m *Metrics) RecordDraft() {
	if m == nil {
		return
	}
	m.DraftConnections.Inc()
}

// ObservePopulate records the duration of a population.
func (m *Metrics) ObservePopulate(d time.Duration) {
	if m == nil {
		return
	}
	m.PopulateDuration.Observe(d.Seconds())
}
