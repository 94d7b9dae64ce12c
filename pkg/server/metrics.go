package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the server runtime.
type Metrics struct {
	// SessionsActive is the number of currently connected sessions.
	SessionsActive prometheus.Gauge

	// EventsTotal counts dispatched client events.
	EventsTotal prometheus.Counter

	// RendersTotal counts full-tree renders.
	RendersTotal prometheus.Counter
}

// NewMetrics registers the server instruments with reg.
// Pass prometheus.DefaultRegisterer for the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "glint",
			Name:      "sessions_active",
			Help:      "Number of currently connected sessions.",
		}),
		EventsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "glint",
			Name:      "events_total",
			Help:      "Total client events dispatched.",
		}),
		RendersTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "glint",
			Name:      "renders_total",
			Help:      "Total full-tree renders.",
		}),
	}
}
