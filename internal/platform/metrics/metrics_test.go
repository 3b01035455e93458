package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest(http.MethodGet, "/api/v1/names", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/v1/names", http.StatusOK, 30*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/v1/names", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
	m.IncInFlight()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.InFlight))
	m.DecInFlight()
	assert.Equal(t, float64(0), testutil.ToFloat64(m.InFlight))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Second)
		m.IncInFlight()
		m.DecInFlight()
	})
}
