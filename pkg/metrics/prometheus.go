// Package metrics provides Prometheus metrics for the health log skill
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds all Prometheus collectors for the service.
type Manager struct {
	namespace string
	registry  prometheus.Registerer

	// Conversation metrics
	intentsHandled  *prometheus.CounterVec
	intentDuration  *prometheus.HistogramVec
	unknownIntents  prometheus.Counter
	sessionsStarted prometheus.Counter

	// Storage gateway metrics
	storageOpDuration *prometheus.HistogramVec
	storageErrors     *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "healthlog",
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.intentsHandled = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "intents_handled_total",
		Help:      "Skill events handled, by intent and outcome.",
	}, []string{"intent", "outcome"})

	m.intentDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "intent_duration_ms",
		Help:      "Handler latency in milliseconds, by intent.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"intent"})

	m.unknownIntents = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "unknown_intents_total",
		Help:      "Events rejected because the intent name was not recognized.",
	})

	m.sessionsStarted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "sessions_started_total",
		Help:      "Sessions opened, counted from session-opening events.",
	})

	m.storageOpDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "storage_op_duration_ms",
		Help:      "Record store operation latency in milliseconds, by op.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})

	m.storageErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "storage_errors_total",
		Help:      "Record store failures, by op.",
	}, []string{"op"})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests, by endpoint, method and status.",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint", "method", "status"})

	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_memory_bytes",
		Help:      "Current allocated heap memory in bytes.",
	})

	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines.",
	})
}

// GetRegistry returns the custom registry used for exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordIntent counts one handled event by intent and outcome.
func RecordIntent(intent, outcome string) {
	globalManager.intentsHandled.WithLabelValues(intent, outcome).Inc()
}

// RecordIntentDuration records handler latency for an intent.
func RecordIntentDuration(intent string, ms float64) {
	globalManager.intentDuration.WithLabelValues(intent).Observe(ms)
}

// RecordUnknownIntent counts an event with an unrecognized intent name.
func RecordUnknownIntent() {
	globalManager.unknownIntents.Inc()
}

// RecordSessionStarted counts a session-opening event.
func RecordSessionStarted() {
	globalManager.sessionsStarted.Inc()
}

// RecordStorageOp records the latency of a record store operation.
func RecordStorageOp(op string, ms float64) {
	globalManager.storageOpDuration.WithLabelValues(op).Observe(ms)
}

// RecordStorageError counts a record store failure.
func RecordStorageError(op string) {
	globalManager.storageErrors.WithLabelValues(op).Inc()
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records HTTP request latency.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}

// UpdateSystemMemoryUsage sets the current heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) {
	globalManager.systemGoroutineCount.Set(float64(n))
}
