package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ricirt/portfolio-api/internal/db"
	"github.com/ricirt/portfolio-api/internal/service"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	DatabaseConnected prometheus.Gauge
	RecordsCreated    prometheus.Counter
	StoreErrors       *prometheus.CounterVec
	Unavailable       *prometheus.CounterVec
	RateLimited       prometheus.Counter
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
// Using a custom registry (instead of prometheus.DefaultRegisterer) keeps
// tests isolated and avoids global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DatabaseConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "database_connected",
			Help: "1 while the database connection established at startup is held, else 0.",
		}),
		RecordsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "status_records_created_total",
			Help: "Total number of status records persisted.",
		}),
		StoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "status_store_errors_total",
			Help: "Repository failures while connected, by operation.",
		}, []string{"op"}),
		Unavailable: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "status_unavailable_total",
			Help: "Requests rejected with 503 because the database is not connected, by operation.",
		}, []string{"op"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "http_write_rate_limited_total",
			Help: "Write requests rejected with 429 by the rate limiter.",
		}),
	}

	reg.MustRegister(
		m.DatabaseConnected,
		m.RecordsCreated,
		m.StoreErrors,
		m.Unavailable,
		m.RateLimited,
	)

	return m
}

// LifecycleHooks mirrors connectivity transitions into the gauge.
func (m *Metrics) LifecycleHooks() db.Hooks {
	return db.Hooks{
		OnStateChange: func(connected bool) {
			if connected {
				m.DatabaseConnected.Set(1)
				return
			}
			m.DatabaseConnected.Set(0)
		},
	}
}

// ServiceHooks returns the callbacks expected by service.NewStatusService.
// Centralises the prometheus observation calls so the service stays import-free.
func (m *Metrics) ServiceHooks() service.Hooks {
	return service.Hooks{
		OnCreated:     m.RecordsCreated.Inc,
		OnUnavailable: func(op string) { m.Unavailable.WithLabelValues(op).Inc() },
		OnStoreError:  func(op string) { m.StoreErrors.WithLabelValues(op).Inc() },
	}
}
