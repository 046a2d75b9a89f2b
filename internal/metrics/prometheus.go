package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the forecast collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	ForecastsTotal   *prometheus.CounterVec
	ForecastDuration prometheus.Histogram
	ViralityScore    prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ForecastsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sonicseer_forecasts_total",
				Help: "Total number of forecast pipeline runs",
			},
			[]string{"genre", "status"}, // status: success|invalid|error
		),
		ForecastDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sonicseer_forecast_duration_seconds",
				Help:    "Forecast pipeline duration in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
		),
		ViralityScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sonicseer_virality_score",
				Help:    "Distribution of virality scores produced by successful forecasts",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
	}

	m.registry.MustRegister(
		m.ForecastsTotal,
		m.ForecastDuration,
		m.ViralityScore,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveForecast records one pipeline run.
func (m *Metrics) ObserveForecast(genre, status string, took time.Duration, viralityScore float64) {
	m.ForecastsTotal.WithLabelValues(genre, status).Inc()
	m.ForecastDuration.Observe(took.Seconds())
	if status == StatusSuccess {
		m.ViralityScore.Observe(viralityScore)
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests and additional collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

const (
	StatusSuccess = "success"
	StatusInvalid = "invalid"
	StatusError   = "error"

	// UnknownGenre labels runs whose genre is not in the catalog.
	UnknownGenre = "unknown"
)
