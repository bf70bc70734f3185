// Package metric provides Prometheus-based metrics registration for the
// history containers.
//
// The package offers a centralized registry that namespaces collectors by
// an owner prefix, so multiple container instances can expose the same
// metric names without colliding. The registry detects duplicate
// registration both at its own level and at the Prometheus level, and a
// promhttp handler exposes everything for scraping.
//
// # Basic Usage
//
//	registry := metric.NewRegistry()
//
//	buf, err := ringbuf.NewGuarded[int](100,
//	    ringbuf.WithMetrics[int](registry, "session_history"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	http.Handle("/metrics", metric.Handler(registry))
//
// Registration failures are classified with the errors package: duplicate
// names are invalid (caller bug), Prometheus-level failures are fatal.
package metric
