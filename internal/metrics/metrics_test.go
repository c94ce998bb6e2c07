package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveDecision(t *testing.T) {
	// Counters cannot be reset in prometheus, so we just test increments
	initialTotal := testutil.ToFloat64(DecisionsTotal.WithLabelValues("dictionary", "approve", "pending"))

	ObserveDecision("dictionary", "approve", "pending", 0.02)

	newTotal := testutil.ToFloat64(DecisionsTotal.WithLabelValues("dictionary", "approve", "pending"))
	assert.Equal(t, initialTotal+1, newTotal, "DecisionsTotal should increment by 1")

	count := testutil.CollectAndCount(DecisionDuration)
	assert.GreaterOrEqual(t, count, 1, "DecisionDuration should have observations")
}

func TestObserveDecisionPublication(t *testing.T) {
	initialPublished := testutil.ToFloat64(EntriesPublishedTotal.WithLabelValues("folklore"))

	ObserveDecision("folklore", "approve", "quorum_approved", 0.01)

	newPublished := testutil.ToFloat64(EntriesPublishedTotal.WithLabelValues("folklore"))
	assert.Equal(t, initialPublished+1, newPublished, "EntriesPublishedTotal should increment on quorum")
}

func TestObserveDecisionNonPublishingOutcomes(t *testing.T) {
	initialPublished := testutil.ToFloat64(EntriesPublishedTotal.WithLabelValues("dictionary"))

	ObserveDecision("dictionary", "reject", "rejected", 0.01)
	ObserveDecision("dictionary", "approve", "pending", 0.01)
	ObserveDecision("dictionary", "flag", "flagged", 0.01)

	newPublished := testutil.ToFloat64(EntriesPublishedTotal.WithLabelValues("dictionary"))
	assert.Equal(t, initialPublished, newPublished, "Only quorum approvals count as publications")
}

func TestObserveSubmission(t *testing.T) {
	initial := testutil.ToFloat64(RevisionsSubmittedTotal.WithLabelValues("dictionary"))

	ObserveSubmission("dictionary")

	after := testutil.ToFloat64(RevisionsSubmittedTotal.WithLabelValues("dictionary"))
	assert.Equal(t, initial+1, after, "RevisionsSubmittedTotal should increment")
}

func TestObserveMediaUpload(t *testing.T) {
	initialTotal := testutil.ToFloat64(MediaUploadsTotal.WithLabelValues("success"))
	initialBytes := testutil.ToFloat64(MediaUploadBytes)

	ObserveMediaUpload("success", 2048)

	newTotal := testutil.ToFloat64(MediaUploadsTotal.WithLabelValues("success"))
	assert.Equal(t, initialTotal+1, newTotal, "MediaUploadsTotal should increment")

	newBytes := testutil.ToFloat64(MediaUploadBytes)
	assert.Equal(t, initialBytes+2048, newBytes, "MediaUploadBytes should increase by upload size")
}

func TestObserveMediaUploadFailureSkipsBytes(t *testing.T) {
	initialBytes := testutil.ToFloat64(MediaUploadBytes)

	ObserveMediaUpload("error", 0)

	newBytes := testutil.ToFloat64(MediaUploadBytes)
	assert.Equal(t, initialBytes, newBytes, "Bytes should not change for a failed upload")
}

func TestHTTPMetricsExist(t *testing.T) {
	// Verify HTTP metrics are properly initialized
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	// Increment and verify
	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	newRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, initialRequests+1, newRequests)
}

func TestDBConnectionPoolSizeMetric(t *testing.T) {
	// Verify DB pool metric exists and can be set
	DBConnectionPoolSize.WithLabelValues("total").Set(10)
	DBConnectionPoolSize.WithLabelValues("idle").Set(5)
	DBConnectionPoolSize.WithLabelValues("in_use").Set(5)

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

func TestTimerObserveDuration(t *testing.T) {
	timer := NewTimer()

	// Sleep a bit to have measurable duration
	time.Sleep(50 * time.Millisecond)

	// Create a test histogram to observe
	testHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_duration_histogram",
		Help:    "Test histogram for timer duration",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})
	prometheus.MustRegister(testHistogram)
	defer prometheus.Unregister(testHistogram)

	timer.ObserveDuration(testHistogram)

	// Verify the histogram received an observation
	count := testutil.CollectAndCount(testHistogram)
	assert.Equal(t, 1, count, "Histogram should have exactly one observation")
}

func TestTimerElapsed(t *testing.T) {
	timer := NewTimer()
	time.Sleep(10 * time.Millisecond)
	assert.Greater(t, timer.Elapsed(), 0.0, "Elapsed should be positive")
}

func TestPoolStatsCollectorStartStop(t *testing.T) {
	// Create a mock pool stats provider
	mockProvider := &mockPoolStatsProvider{
		totalConns:    10,
		idleConns:     5,
		acquiredConns: 5,
	}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)

	// Start the collector with a short interval
	collector.Start(10 * time.Millisecond)

	// Let it run for a bit to collect stats
	time.Sleep(30 * time.Millisecond)

	// Verify stats were collected
	total := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total"))
	idle := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle"))
	inUse := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use"))

	assert.Equal(t, float64(10), total, "Total connections should be 10")
	assert.Equal(t, float64(5), idle, "Idle connections should be 5")
	assert.Equal(t, float64(5), inUse, "In-use connections should be 5")

	// Stop the collector
	collector.Stop()

	// Verify it stopped (no panic, completes in reasonable time)
}

// mockPoolStats implements PoolStats for testing
type mockPoolStats struct {
	total    int32
	idle     int32
	acquired int32
}

func (m *mockPoolStats) TotalConns() int32    { return m.total }
func (m *mockPoolStats) IdleConns() int32     { return m.idle }
func (m *mockPoolStats) AcquiredConns() int32 { return m.acquired }

// mockPoolStatsProvider implements PoolStatsProvider for testing
type mockPoolStatsProvider struct {
	totalConns    int32
	idleConns     int32
	acquiredConns int32
}

func (m *mockPoolStatsProvider) Stat() PoolStats {
	return &mockPoolStats{
		total:    m.totalConns,
		idle:     m.idleConns,
		acquired: m.acquiredConns,
	}
}

func TestPoolStatsCollectorMultipleCollections(t *testing.T) {
	// Create a mock that changes values
	mockProvider := &dynamicMockPoolStatsProvider{
		calls: 0,
	}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)
	collector.Start(5 * time.Millisecond)

	// Let it collect a few times
	time.Sleep(25 * time.Millisecond)

	collector.Stop()

	// Should have collected multiple times
	assert.GreaterOrEqual(t, mockProvider.calls, 2, "Should collect multiple times")
}

type dynamicMockPoolStatsProvider struct {
	calls int
}

func (m *dynamicMockPoolStatsProvider) Stat() PoolStats {
	m.calls++
	return &mockPoolStats{
		total:    int32(10 + m.calls),
		idle:     int32(5),
		acquired: int32(5 + m.calls),
	}
}

func TestDecisionDurationHistogramBuckets(t *testing.T) {
	durations := []float64{0.005, 0.01, 0.1, 0.5, 1.0, 5.0}

	for _, d := range durations {
		DecisionDuration.WithLabelValues("approve").Observe(d)
	}

	count := testutil.CollectAndCount(DecisionDuration)
	assert.GreaterOrEqual(t, count, 1, "DecisionDuration should have observations")
}

func TestHTTPRequestDurationHistogramBuckets(t *testing.T) {
	// Observe various request durations
	durations := []float64{0.005, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0}

	for _, d := range durations {
		HTTPRequestDuration.WithLabelValues("GET", "/test").Observe(d)
	}

	// Verify histogram has observations
	count := testutil.CollectAndCount(HTTPRequestDuration)
	assert.GreaterOrEqual(t, count, 1, "HTTPRequestDuration should have observations")
}

func TestHTTPRequestsInFlightGauge(t *testing.T) {
	initial := testutil.ToFloat64(HTTPRequestsInFlight)

	HTTPRequestsInFlight.Inc()
	HTTPRequestsInFlight.Inc()
	after2 := testutil.ToFloat64(HTTPRequestsInFlight)
	assert.Equal(t, initial+2, after2, "In-flight should be initial+2")

	HTTPRequestsInFlight.Dec()
	after1 := testutil.ToFloat64(HTTPRequestsInFlight)
	assert.Equal(t, initial+1, after1, "In-flight should be initial+1")

	HTTPRequestsInFlight.Dec()
	afterReset := testutil.ToFloat64(HTTPRequestsInFlight)
	assert.Equal(t, initial, afterReset, "In-flight should return to initial")
}

func TestLogHealthCheckMetrics(t *testing.T) {
	// LogHealthCheckMetrics requires a real pgxpool.Pool which we can't easily mock
	// This test just verifies the function signature and that it would be callable
	// The actual integration test would use a real database connection
	t.Run("function exists and is callable", func(t *testing.T) {
		// Verify the function is defined (compile-time check)
		var _ = LogHealthCheckMetrics
	})
}
