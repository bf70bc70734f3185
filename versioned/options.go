package versioned

import "github.com/c360/history/metric"

// Option configures a guarded store.
type Option[T any] func(*guardedOptions[T])

type guardedOptions[T any] struct {
	metricsReg    *metric.Registry
	metricsPrefix string
}

// WithMetrics enables Prometheus metrics registered under the given
// prefix, which becomes the "owner" label.
func WithMetrics[T any](registry *metric.Registry, prefix string) Option[T] {
	return func(o *guardedOptions[T]) {
		o.metricsReg = registry
		o.metricsPrefix = prefix
	}
}

func applyOptions[T any](options ...Option[T]) *guardedOptions[T] {
	opts := &guardedOptions[T]{}
	for _, opt := range options {
		opt(opts)
	}
	return opts
}
