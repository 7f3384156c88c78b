package service

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	downloadsTotal  prometheus.Counter
	deletionsTotal  *prometheus.CounterVec
}

// NewMetricsService registers the API's Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	downloadsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "resource_downloads_total",
		Help: "Total resource file downloads served",
	})

	deletionsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "content_deletions_total",
		Help: "Total moderation deletions by content type",
	}, []string{"content_type", "deletion_type"})

	registry.MustRegister(requestDuration, requestTotal, downloadsTotal, deletionsTotal)
	registry.MustRegister(prometheus.NewGoCollector())

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		downloadsTotal:  downloadsTotal,
		deletionsTotal:  deletionsTotal,
	}
}

// Handler exposes the scrape endpoint handler.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveRequest records one completed HTTP request.
func (s *MetricsService) ObserveRequest(method, path, status string, duration time.Duration) {
	s.requestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(method, path, status).Inc()
}

// CountDownload records one served resource download.
func (s *MetricsService) CountDownload() {
	s.downloadsTotal.Inc()
}

// CountDeletion records one moderation deletion.
func (s *MetricsService) CountDeletion(contentType, deletionType string) {
	s.deletionsTotal.WithLabelValues(contentType, deletionType).Inc()
}
