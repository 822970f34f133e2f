package provider

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments provider traffic and the rate limiter. A nil *Metrics
// is a no-op so unit tests can skip registration.
type Metrics struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     prometheus.Histogram
	retriesTotal        prometheus.Counter
	rateLimitRejections prometheus.Counter
	rateLimitWait       prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flightclaims",
			Subsystem: "provider",
			Name:      "requests_total",
			Help:      "Provider requests by outcome.",
		}, []string{"outcome"}),
		requestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flightclaims",
			Subsystem: "provider",
			Name:      "request_duration_seconds",
			Help:      "Provider request latency.",
			Buckets:   prometheus.DefBuckets,
		}),
		retriesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "flightclaims",
			Subsystem: "provider",
			Name:      "retries_total",
			Help:      "Retried provider requests.",
		}),
		rateLimitRejections: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "flightclaims",
			Subsystem: "ratelimit",
			Name:      "rejections_total",
			Help:      "Requests rejected because the wait queue was full.",
		}),
		rateLimitWait: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flightclaims",
			Subsystem: "ratelimit",
			Name:      "wait_seconds",
			Help:      "Time spent waiting for a provider slot.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) observeRequest(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(outcome).Inc()
	m.requestDuration.Observe(d.Seconds())
}

func (m *Metrics) observeRetry() {
	if m == nil {
		return
	}
	m.retriesTotal.Inc()
}

func (m *Metrics) observeRejection() {
	if m == nil {
		return
	}
	m.rateLimitRejections.Inc()
}

func (m *Metrics) observeWait(d time.Duration) {
	if m == nil {
		return
	}
	m.rateLimitWait.Observe(d.Seconds())
}
