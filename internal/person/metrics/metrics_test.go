package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())

	m.IncrementPersonsCreated(1)
	m.IncrementPersonsCreated(2)
	m.IncrementValidationFailed("invalid")
	m.ObserveOperation("get", time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PersonsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RegistrySize))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailed.WithLabelValues("invalid")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.OperationDuration))
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementPersonsCreated(1)
		m.IncrementValidationFailed("malformed")
		m.ObserveOperation("list", time.Now())
	})
}
