package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordBuild(t *testing.T) {
	m := NewMetrics("test")

	m.RecordBuild(time.Now(), nil)
	m.RecordBuild(time.Now(), nil)
	m.RecordBuild(time.Now(), errors.New("boom"))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.SnapshotBuilds.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SnapshotBuilds.WithLabelValues("error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SnapshotBuildDuration))
	assert.Greater(t, testutil.ToFloat64(m.LastSuccessfulBuild), float64(0))
}

func TestMetrics_RecordUnmatched(t *testing.T) {
	m := NewMetrics("test")

	m.RecordUnmatched("AAA", 2)
	m.RecordUnmatched("AAA", 1)
	m.RecordUnmatched("BBB", 0)

	assert.Equal(t, float64(3), testutil.ToFloat64(m.UnmatchedTrades.WithLabelValues("AAA")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.UnmatchedTrades))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordBuild(time.Now(), nil)
		m.RecordCacheHit()
		m.RecordUnmatched("AAA", 1)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics("")
	m.RecordCacheHit()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "portfoliotracker_snapshot_cache_hits_total 1")
}
