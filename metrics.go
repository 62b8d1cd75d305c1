package jwtattributes

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	directionInbound  = "inbound"
	directionOutbound = "outbound"

	resultFound = "found"
	resultEmpty = "empty"
)

// Metrics holds the Prometheus collectors updated by the middleware.
type Metrics struct {
	// extractions counts extractor runs.
	//
	// Example usage:
	// m.extractions.WithLabelValues("inbound", "found").Inc()
	extractions *prometheus.CounterVec

	// exchangeDuration observes how long the wrapped handler or transport took.
	exchangeDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		extractions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jwt_attributes_extractions_total",
				Help: "Number of attribute extractions, by direction and whether any attribute was found.",
			},
			[]string{"direction", "result"},
		),
		exchangeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jwt_attributes_exchange_duration_seconds",
				Help:    "Duration of HTTP exchanges seen by the middleware.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"direction"},
		),
	}
}

func (m *Metrics) observeExtraction(direction string, attrs Attributes) {
	result := resultFound
	if attrs.IsEmpty() {
		result = resultEmpty
	}
	m.extractions.WithLabelValues(direction, result).Inc()
}

func (m *Metrics) observeExchange(direction string, d time.Duration) {
	m.exchangeDuration.WithLabelValues(direction).Observe(d.Seconds())
}
