package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecord(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementLookup("names", true)
	m.IncrementLookup("names", false)
	m.IncrementLookup("names", false)
	m.IncrementOriginsPersisted()
	m.AddCountriesPersisted(3)
	m.AddCountriesPersisted(0)
	m.ObserveProvider("nationalize", "ok", 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("names", ResultHit)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("names", ResultMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OriginsPersisted))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.CountriesPersisted))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ProviderLatency))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementLookup("names", true)
		m.ObserveProvider("p", "ok", time.Second)
		m.ObserveOperation("op", "ok", time.Second)
		m.IncrementOriginsPersisted()
		m.AddCountriesPersisted(1)
	})
}
