package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the service's Prometheus registry.
type Metrics struct {
	registry    *prometheus.Registry
	predictions *prometheus.CounterVec
	failures    *prometheus.CounterVec
	latency     prometheus.Histogram
	requests    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "obesity",
			Name:      "predictions_total",
			Help:      "Predictions served, by diagnosis.",
		}, []string{"diagnostico"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "obesity",
			Name:      "prediction_failures_total",
			Help:      "Prediction requests that ended in an error response, by reason.",
		}, []string{"reason"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "obesity",
			Name:      "prediction_duration_seconds",
			Help:      "Time spent deriving, scaling and classifying one record.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "obesity",
			Name:      "http_requests_total",
			Help:      "HTTP requests, by route and status code.",
		}, []string{"route", "code"}),
	}

	m.registry.MustRegister(
		m.predictions,
		m.failures,
		m.latency,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObservePrediction(label string, elapsed time.Duration) {
	m.predictions.WithLabelValues(label).Inc()
	m.latency.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveFailure(reason string) {
	m.failures.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveRequest(route, code string) {
	m.requests.WithLabelValues(route, code).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
