package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the server's Prometheus instruments.
type Metrics struct {
	lookups *prometheus.CounterVec
	reloads *prometheus.CounterVec
	pools   prometheus.Gauge
}

// NewMetrics registers the server metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "syndna",
			Name:      "pool_lookups_total",
			Help:      "Pool lookups by outcome (hit or miss).",
		}, []string{"outcome"}),
		reloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "syndna",
			Name:      "document_reloads_total",
			Help:      "Pool document reloads by outcome (ok or error).",
		}, []string{"outcome"}),
		pools: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "syndna",
			Name:      "pools",
			Help:      "Number of pools in the served catalog.",
		}),
	}
}
