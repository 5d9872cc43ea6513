package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersAllMetrics(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	m := New(registry)
	require.NotNil(t, m)

	m.BackendRequestsTotal.WithLabelValues("success").Inc()
	m.MapsRequestsTotal.WithLabelValues("distancematrix", "success").Inc()
	m.ContactMatchesTotal.WithLabelValues("matched").Inc()
	m.IntentParsesTotal.WithLabelValues("gemini", "success").Inc()
	m.ChatRequestsTotal.WithLabelValues("contact_info", "success").Inc()
	m.BackendDurationSeconds.Observe(0.3)
	m.MapsDurationSeconds.WithLabelValues("geocode").Observe(0.2)
	m.ChatDurationSeconds.Observe(1.2)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.BackendRequestsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ContactMatchesTotal.WithLabelValues("matched")))

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	_ = New(registry)
	assert.Panics(t, func() { _ = New(registry) })
}
