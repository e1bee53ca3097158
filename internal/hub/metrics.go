package hub

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Subscribers prometheus.Gauge
	Published   prometheus.Counter
	Delivered   prometheus.Counter
	Dropped     *prometheus.CounterVec
}

// NewMetrics registers the hub collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Subscribers: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "inventory",
			Subsystem: "hub",
			Name:      "subscribers",
			Help:      "Number of connected subscribers.",
		}),
		Published: f.NewCounter(prometheus.CounterOpts{
			Namespace: "inventory",
			Subsystem: "hub",
			Name:      "messages_published_total",
			Help:      "Messages accepted into the hub inbox.",
		}),
		Delivered: f.NewCounter(prometheus.CounterOpts{
			Namespace: "inventory",
			Subsystem: "hub",
			Name:      "messages_delivered_total",
			Help:      "Messages written to a subscriber connection.",
		}),
		Dropped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Subsystem: "hub",
			Name:      "messages_dropped_total",
			Help:      "Messages discarded, by reason.",
		}, []string{"reason"}),
	}
}
