package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup results for CacheLookups.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// Metrics provides observability for the name-origin module.
type Metrics struct {
	// Local store lookups by store ("names", "countries", "country_lru") and result
	CacheLookups *prometheus.CounterVec

	// Upstream call latency by provider and outcome ("ok", "empty", "error")
	ProviderLatency *prometheus.HistogramVec

	// End-to-end operation latency by operation and outcome
	OperationLatency *prometheus.HistogramVec

	// Rows written on behalf of provider results
	OriginsPersisted   prometheus.Counter
	CountriesPersisted prometheus.Counter
}

// New registers all name-origin metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nameorigin_cache_lookups_total",
			Help: "Local store lookups by store and result",
		}, []string{"store", "result"}),

		ProviderLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nameorigin_provider_duration_seconds",
			Help:    "Duration of upstream provider calls",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider", "outcome"}),

		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nameorigin_operation_duration_seconds",
			Help:    "Duration of name-origin operations including provider calls",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation", "outcome"}),

		OriginsPersisted: factory.NewCounter(prometheus.CounterOpts{
			Name: "nameorigin_origins_persisted_total",
			Help: "Name origins written after a provider lookup",
		}),

		CountriesPersisted: factory.NewCounter(prometheus.CounterOpts{
			Name: "nameorigin_countries_persisted_total",
			Help: "Countries written after a provider lookup or import",
		}),
	}
}

func (m *Metrics) IncrementLookup(store string, hit bool) {
	if m == nil {
		return
	}
	result := ResultMiss
	if hit {
		result = ResultHit
	}
	m.CacheLookups.WithLabelValues(store, result).Inc()
}

func (m *Metrics) ObserveProvider(provider, outcome string, d time.Duration) {
	if m != nil {
		m.ProviderLatency.WithLabelValues(provider, outcome).Observe(d.Seconds())
	}
}

func (m *Metrics) ObserveOperation(operation, outcome string, d time.Duration) {
	if m != nil {
		m.OperationLatency.WithLabelValues(operation, outcome).Observe(d.Seconds())
	}
}

func (m *Metrics) IncrementOriginsPersisted() {
	if m != nil {
		m.OriginsPersisted.Inc()
	}
}

func (m *Metrics) AddCountriesPersisted(n int) {
	if m != nil && n > 0 {
		m.CountriesPersisted.Add(float64(n))
	}
}
