package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters_Increment(t *testing.T) {
	before := testutil.ToFloat64(AlertsCreated.WithLabelValues("panic"))
	AlertsCreated.WithLabelValues("panic").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(AlertsCreated.WithLabelValues("panic")))

	before = testutil.ToFloat64(AlertPublishFailures)
	AlertPublishFailures.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(AlertPublishFailures))
}

func TestWebSocketClients_Gauge(t *testing.T) {
	before := testutil.ToFloat64(WebSocketClients)
	WebSocketClients.Inc()
	WebSocketClients.Inc()
	WebSocketClients.Dec()
	assert.Equal(t, before+1, testutil.ToFloat64(WebSocketClients))
	WebSocketClients.Dec()
}

func TestSafetyScores_Observe(t *testing.T) {
	before := testutil.CollectAndCount(SafetyScores)
	SafetyScores.Observe(85)
	assert.Equal(t, before, testutil.CollectAndCount(SafetyScores))
}

func TestRegisterDetectorCache_ReadsCountOnCollect(t *testing.T) {
	reg := prometheus.NewRegistry()
	cached := 0
	gauge := RegisterDetectorCache(reg, func() int { return cached })

	assert.Equal(t, 0.0, testutil.ToFloat64(gauge))

	cached = 3
	assert.Equal(t, 3.0, testutil.ToFloat64(gauge))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "tourist_safety_detector_cached_models"))
}
