package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/source"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	registry       *prometheus.Registry
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	fetches        *prometheus.CounterVec
}

// NewMetrics registers the dashboard collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		renders: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trainboard",
			Name:      "renders_total",
			Help:      "Dashboard renders by layout mode and outcome.",
		}, []string{"mode", "outcome"}),
		renderDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "trainboard",
			Name:      "render_duration_seconds",
			Help:      "Time to fetch and render the dashboard.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"mode"}),
		fetches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trainboard",
			Name:      "sheet_fetches_total",
			Help:      "Worksheet fetches by sheet and result.",
		}, []string{"sheet", "result"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Instrument wraps src so each fetch is counted.
func (m *Metrics) Instrument(src source.Source) source.Source {
	return &instrumentedSource{Source: src, fetches: m.fetches}
}

type instrumentedSource struct {
	source.Source
	fetches *prometheus.CounterVec
}

func (s *instrumentedSource) FetchSheet(ctx context.Context, name string) (models.Sheet, error) {
	sheet, err := s.Source.FetchSheet(ctx, name)
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.fetches.WithLabelValues(name, result).Inc()
	return sheet, err
}
