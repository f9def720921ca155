package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the person registry.
type Metrics struct {
	PersonsCreated    prometheus.Counter
	ValidationFailed  *prometheus.CounterVec
	RegistrySize      prometheus.Gauge
	OperationDuration *prometheus.HistogramVec
}

// New creates a new Metrics instance registered on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PersonsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "people_registry_persons_created_total",
			Help: "Total number of persons inserted into the registry",
		}),
		ValidationFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "people_registry_validation_failures_total",
			Help: "Create requests rejected before reaching the registry, by reason",
		}, []string{"reason"}), // reason: "malformed", "invalid"
		RegistrySize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "people_registry_persons",
			Help: "Number of persons currently stored",
		}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "people_registry_operation_duration_seconds",
			Help:    "Duration of registry operations",
			Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"operation"}), // operation: "create", "get", "list", "count"
	}
}

// IncrementPersonsCreated records a successful insert and the new registry size.
func (m *Metrics) IncrementPersonsCreated(size int) {
	if m == nil {
		return
	}
	m.PersonsCreated.Inc()
	m.RegistrySize.Set(float64(size))
}

func (m *Metrics) IncrementValidationFailed(reason string) {
	if m != nil {
		m.ValidationFailed.WithLabelValues(reason).Inc()
	}
}

// ObserveOperation records the duration of a registry operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(operation string, start time.Time) {
	if m != nil {
		m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
