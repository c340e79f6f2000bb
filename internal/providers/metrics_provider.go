package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncLedgerCalls(method, outcome string)
	ObserveLedgerCallDuration(method string, duration time.Duration)
	AddBatchDropped(op string, n int)
}

type MetricsProvider struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	ledgerCallsTotal   *prometheus.CounterVec
	ledgerCallDuration *prometheus.HistogramVec
	batchDroppedTotal  *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncLedgerCalls(method, outcome string) {
	m.ledgerCallsTotal.WithLabelValues(method, outcome).Inc()
}

func (m *MetricsProvider) ObserveLedgerCallDuration(method string, duration time.Duration) {
	m.ledgerCallDuration.WithLabelValues(method).Observe(duration.Seconds())
}

func (m *MetricsProvider) AddBatchDropped(op string, n int) {
	m.batchDroppedTotal.WithLabelValues(op).Add(float64(n))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "neuranft_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "neuranft_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		ledgerCallsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "neuranft_ledger_calls_total",
			Help: "Total number of ledger reads by contract method and outcome",
		}, []string{"method", "outcome"}),

		ledgerCallDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "neuranft_ledger_call_duration_seconds",
			Help:    "Ledger read duration in seconds by contract method",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),

		batchDroppedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "neuranft_batch_dropped_total",
			Help: "Items dropped from batch aggregations after per-item failures",
		}, []string{"operation"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                    {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)    {}
func (n *noopMetrics) IncLedgerCalls(_, _ string)                          {}
func (n *noopMetrics) ObserveLedgerCallDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) AddBatchDropped(_ string, _ int)                     {}
