// Package observability provides Prometheus metrics for the snapshot pipeline.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	SnapshotBuilds        *prometheus.CounterVec
	SnapshotBuildDuration prometheus.Histogram
	SnapshotCacheHits     prometheus.Counter
	UnmatchedTrades       *prometheus.CounterVec
	LastSuccessfulBuild   prometheus.Gauge
}

// NewMetrics creates a Metrics instance registered on its own registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "portfoliotracker"
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		SnapshotBuilds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_builds_total",
			Help:      "Portfolio snapshot builds by result",
		}, []string{"result"}),
		SnapshotBuildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "snapshot_build_duration_seconds",
			Help:      "Time spent loading data and building a snapshot",
			Buckets:   prometheus.DefBuckets,
		}),
		SnapshotCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_cache_hits_total",
			Help:      "Snapshot requests served from the cache",
		}),
		UnmatchedTrades: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unmatched_trades_total",
			Help:      "Buy trades left out of the cost basis because their day is not on the price axis",
		}, []string{"ticker"}),
		LastSuccessfulBuild: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_successful_build_timestamp_seconds",
			Help:      "Unix time of the last successful snapshot build",
		}),
	}
}

func (m *Metrics) RecordBuild(start time.Time, err error) {
	if m == nil {
		return
	}
	m.SnapshotBuildDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		m.SnapshotBuilds.WithLabelValues("error").Inc()
		return
	}
	m.SnapshotBuilds.WithLabelValues("ok").Inc()
	m.LastSuccessfulBuild.SetToCurrentTime()
}

func (m *Metrics) RecordCacheHit() {
	if m == nil {
		return
	}
	m.SnapshotCacheHits.Inc()
}

func (m *Metrics) RecordUnmatched(ticker string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.UnmatchedTrades.WithLabelValues(ticker).Add(float64(n))
}

// Registry exposes the registry for scraping and tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
