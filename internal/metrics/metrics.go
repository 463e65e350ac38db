package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus instruments for the generation pipeline.
type Metrics struct {
	registry             *prometheus.Registry
	generationsStarted   prometheus.Counter
	generationsSucceeded prometheus.Counter
	generationFailures   *prometheus.CounterVec
	generationDuration   prometheus.Histogram
	inFlight             prometheus.Gauge
}

// New creates and registers the pipeline metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	generationsStarted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "slideforge_generations_started_total",
		Help: "Total number of pipeline runs started",
	})
	generationsSucceeded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "slideforge_generations_succeeded_total",
		Help: "Total number of pipeline runs that produced a persisted record",
	})
	generationFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "slideforge_generation_failures_total",
		Help: "Total number of failed pipeline runs, labeled by failing stage",
	}, []string{"stage"})
	generationDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "slideforge_generation_duration_seconds",
		Help:    "End-to-end pipeline duration",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})
	inFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "slideforge_generations_in_flight",
		Help: "Number of pipeline runs currently executing",
	})

	registry.MustRegister(
		generationsStarted,
		generationsSucceeded,
		generationFailures,
		generationDuration,
		inFlight,
	)

	return &Metrics{
		registry:             registry,
		generationsStarted:   generationsStarted,
		generationsSucceeded: generationsSucceeded,
		generationFailures:   generationFailures,
		generationDuration:   generationDuration,
		inFlight:             inFlight,
	}
}

// GenerationStarted marks a run as started and returns a done callback that
// records duration and outcome. stage is empty on success.
func (m *Metrics) GenerationStarted() func(stage string) {
	m.generationsStarted.Inc()
	m.inFlight.Inc()
	start := time.Now()

	return func(stage string) {
		m.inFlight.Dec()
		m.generationDuration.Observe(time.Since(start).Seconds())
		if stage == "" {
			m.generationsSucceeded.Inc()
		} else {
			m.generationFailures.WithLabelValues(stage).Inc()
		}
	}
}

// Handler returns an http.Handler that serves the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
