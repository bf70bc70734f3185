package metric

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/history/errors"
)

func TestRegistryRegisterCounter(t *testing.T) {
	registry := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "history",
		Name:      "test_total",
		Help:      "Test counter",
	})

	require.NoError(t, registry.RegisterCounter("bufA", "test", counter))
}

func TestRegistryDuplicateRegistration(t *testing.T) {
	registry := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "history",
		Name:      "dup_total",
		Help:      "Test counter",
	})

	require.NoError(t, registry.RegisterCounter("bufA", "dup", counter))

	err := registry.RegisterCounter("bufA", "dup", counter)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestRegistrySameNameDifferentOwner(t *testing.T) {
	registry := NewRegistry()

	counterA := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   "history",
		Name:        "pushes_total",
		ConstLabels: prometheus.Labels{"owner": "bufA"},
		Help:        "Test counter",
	})
	counterB := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   "history",
		Name:        "pushes_total",
		ConstLabels: prometheus.Labels{"owner": "bufB"},
		Help:        "Test counter",
	})

	require.NoError(t, registry.RegisterCounter("bufA", "pushes", counterA))
	require.NoError(t, registry.RegisterCounter("bufB", "pushes", counterB))
}

func TestRegistryUnregister(t *testing.T) {
	registry := NewRegistry()

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "history",
		Name:      "stored",
		Help:      "Test gauge",
	})

	require.NoError(t, registry.RegisterGauge("bufA", "stored", gauge))
	assert.True(t, registry.Unregister("bufA", "stored"))
	assert.False(t, registry.Unregister("bufA", "stored"))

	// After unregistering, the same name can be registered again.
	require.NoError(t, registry.RegisterGauge("bufA", "stored", gauge))
}

func TestHandlerServesMetrics(t *testing.T) {
	registry := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "history",
		Name:      "handler_test_total",
		Help:      "Test counter",
	})
	require.NoError(t, registry.RegisterCounter("bufA", "handler_test", counter))
	counter.Add(3)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	Handler(registry).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "history_handler_test_total 3"))
}
