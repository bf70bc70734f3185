package ringbuf

import (
	"github.com/c360/history/metric"
)

// EvictCallback is called with each value a push displaces from a full
// guarded buffer. It runs while the buffer's write lock is held, so it
// must not call back into the buffer.
type EvictCallback[T any] func(evicted T)

// Option configures guarded buffer behavior using the functional options
// pattern.
type Option[T any] func(*guardedOptions[T])

// guardedOptions holds internal configuration for guarded buffers.
// Stats are ALWAYS collected - they are not optional.
// Metrics are optional and exposed via WithMetrics().
type guardedOptions[T any] struct {
	evictCallback EvictCallback[T]

	// metricsReg is optional - if provided, buffer stats are also exposed
	// as Prometheus metrics
	metricsReg *metric.Registry

	// metricsPrefix is used as the owner label for Prometheus metrics
	metricsPrefix string
}

// WithMetrics enables Prometheus metrics export for buffer statistics.
// If registry is nil or prefix is empty, this option is ignored.
func WithMetrics[T any](registry *metric.Registry, prefix string) Option[T] {
	return func(opts *guardedOptions[T]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// WithEvictCallback sets a callback invoked with each value displaced by
// a push into a full buffer.
func WithEvictCallback[T any](callback EvictCallback[T]) Option[T] {
	return func(opts *guardedOptions[T]) {
		opts.evictCallback = callback
	}
}

// applyOptions applies functional options to create final configuration.
func applyOptions[T any](options ...Option[T]) *guardedOptions[T] {
	opts := &guardedOptions[T]{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
