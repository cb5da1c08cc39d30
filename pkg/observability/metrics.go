package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/prettifier/pkg/domain"
)

const namespace = "prettifier"

// Metrics holds the collectors updated by engine hooks.
// It owns its registry so several services can live in one process.
type Metrics struct {
	registry *prometheus.Registry

	attempts        *prometheus.CounterVec
	attemptDuration *prometheus.HistogramVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors, plus the Go runtime and
// process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "renderer_attempts_total",
				Help:      "Total number of renderer attempts by outcome",
			},
			[]string{"kind", "renderer", "outcome"},
		),
		attemptDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "renderer_duration_seconds",
				Help:      "Duration of renderer attempts",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"renderer"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of resolved requests by answering source",
			},
			[]string{"kind", "source"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Duration of a full chain walk",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 15),
			},
			[]string{"kind"},
		),
	}
	m.registry.MustRegister(
		m.attempts,
		m.attemptDuration,
		m.requests,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Hooks returns engine hooks that record every attempt and resolution.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnAttempt: func(ctx context.Context, e *domain.AttemptEvent) {
			outcome := "failure"
			if e.Succeeded {
				outcome = "success"
			}
			m.attempts.WithLabelValues(string(e.Kind), e.Renderer, outcome).Inc()
			m.attemptDuration.WithLabelValues(e.Renderer).Observe(e.Duration.Seconds())
		},
		OnResolve: func(ctx context.Context, e *domain.ResolveEvent) {
			m.requests.WithLabelValues(string(e.Kind), e.Source).Inc()
			m.requestDuration.WithLabelValues(string(e.Kind)).Observe(e.Duration.Seconds())
		},
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
