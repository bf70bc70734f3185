package versioned

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/history/metric"
)

// guardedMetrics holds Prometheus metrics for guarded store operations.
type guardedMetrics struct {
	updates  prometheus.Counter
	removals prometheus.Counter
	peeks    prometheus.Counter

	entries prometheus.Gauge
}

// newGuardedMetrics creates and registers store metrics with the
// provided registry.
func newGuardedMetrics(registry *metric.Registry, prefix string) (*guardedMetrics, error) {
	m := &guardedMetrics{
		updates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "history",
			Subsystem:   "versioned",
			Name:        "updates_total",
			ConstLabels: prometheus.Labels{"owner": prefix},
			Help:        "Total number of versions recorded",
		}),
		removals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "history",
			Subsystem:   "versioned",
			Name:        "removals_total",
			ConstLabels: prometheus.Labels{"owner": prefix},
			Help:        "Total number of versions removed",
		}),
		peeks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "history",
			Subsystem:   "versioned",
			Name:        "peeks_total",
			ConstLabels: prometheus.Labels{"owner": prefix},
			Help:        "Total number of read-only store accesses",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "history",
			Subsystem:   "versioned",
			Name:        "entries",
			ConstLabels: prometheus.Labels{"owner": prefix},
			Help:        "Current number of stored entries",
		}),
	}

	if err := registry.RegisterCounter(prefix, "versioned_updates", m.updates); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "versioned_removals", m.removals); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "versioned_peeks", m.peeks); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "versioned_entries", m.entries); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *guardedMetrics) recordUpdate(entries int) {
	m.updates.Inc()
	m.entries.Set(float64(entries))
}

func (m *guardedMetrics) recordRemoval(entries int) {
	m.removals.Inc()
	m.entries.Set(float64(entries))
}

func (m *guardedMetrics) recordPeek() {
	m.peeks.Inc()
}
