package ringbuf

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/history/metric"
)

// guardedMetrics holds Prometheus metrics for guarded buffer operations.
type guardedMetrics struct {
	// Counter metrics - directly incremented without stats duplication
	pushes    prometheus.Counter
	pops      prometheus.Counter
	peeks     prometheus.Counter
	evictions prometheus.Counter

	// Gauge metrics - updated on operations
	stored      prometheus.Gauge
	utilization prometheus.Gauge
}

// newGuardedMetrics creates and registers buffer metrics with the
// provided registry.
func newGuardedMetrics(registry *metric.Registry, prefix string) (*guardedMetrics, error) {
	m := &guardedMetrics{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "history",
			Subsystem:   "ringbuf",
			Name:        "pushes_total",
			ConstLabels: prometheus.Labels{"owner": prefix},
			Help:        "Total number of buffer push operations",
		}),
		pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "history",
			Subsystem:   "ringbuf",
			Name:        "pops_total",
			ConstLabels: prometheus.Labels{"owner": prefix},
			Help:        "Total number of buffer pop operations",
		}),
		peeks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "history",
			Subsystem:   "ringbuf",
			Name:        "peeks_total",
			ConstLabels: prometheus.Labels{"owner": prefix},
			Help:        "Total number of read-only buffer accesses",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "history",
			Subsystem:   "ringbuf",
			Name:        "evictions_total",
			ConstLabels: prometheus.Labels{"owner": prefix},
			Help:        "Total number of values displaced by pushes into a full buffer",
		}),
		stored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "history",
			Subsystem:   "ringbuf",
			Name:        "stored",
			ConstLabels: prometheus.Labels{"owner": prefix},
			Help:        "Current number of live values in the buffer",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "history",
			Subsystem:   "ringbuf",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"owner": prefix},
			Help:        "Buffer utilization as a fraction (0.0 to 1.0)",
		}),
	}

	if err := registry.RegisterCounter(prefix, "ringbuf_pushes", m.pushes); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ringbuf_pops", m.pops); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ringbuf_peeks", m.peeks); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ringbuf_evictions", m.evictions); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "ringbuf_stored", m.stored); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "ringbuf_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordPush increments the push counter and updates stored/utilization.
func (m *guardedMetrics) recordPush(stored, capacity int) {
	m.pushes.Inc()
	m.updateStored(stored, capacity)
}

// recordPop increments the pop counter and updates stored/utilization.
func (m *guardedMetrics) recordPop(stored, capacity int) {
	m.pops.Inc()
	m.updateStored(stored, capacity)
}

// recordPeek increments the peek counter.
func (m *guardedMetrics) recordPeek() {
	m.peeks.Inc()
}

// recordEviction increments the eviction counter.
func (m *guardedMetrics) recordEviction() {
	m.evictions.Inc()
}

// updateStored sets the current stored count and utilization.
func (m *guardedMetrics) updateStored(stored, capacity int) {
	m.stored.Set(float64(stored))
	m.utilization.Set(float64(stored) / float64(capacity))
}
