package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	SlotsGeneratedTotal  *prometheus.CounterVec
	BookingsTotal        *prometheus.CounterVec
	CollaboratorFailures *prometheus.CounterVec
	CacheHitsTotal       *prometheus.CounterVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		SlotsGeneratedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "slots_generated_total",
			Help:        "Total number of slot candidates produced by the generator",
			ConstLabels: constLabels,
		}, []string{"bucket"}),

		BookingsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_total",
			Help:        "Total number of booking submissions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		CollaboratorFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "collaborator_failures_total",
			Help:        "Total number of failed collaborator calls",
			ConstLabels: constLabels,
		}, []string{"collaborator"}),

		CacheHitsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_cache_hits_total",
			Help:        "Schedule cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}
}
