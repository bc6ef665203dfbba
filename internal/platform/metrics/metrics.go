// Package metrics owns the Prometheus collectors of the service and the scrape handler
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector, registered on its own registry
// observation methods are no-ops on a nil *Metrics
type Metrics struct {
	reg *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ExtractionsTotal   *prometheus.CounterVec
	SeriesEmittedTotal *prometheus.CounterVec
	WordsNotFoundTotal *prometheus.CounterVec

	ChartRendersTotal   *prometheus.CounterVec
	ChartRenderDuration *prometheus.HistogramVec
	ChartCacheEntries   prometheus.Gauge

	DatasetLoadedAt    prometheus.Gauge
	DatasetLoadSeconds prometheus.Gauge
	DatasetTableWords  *prometheus.GaugeVec
}

// New creates the collectors under namespace (e.g. "wordtrends") on a fresh registry
// along with the Go runtime and process collectors
func New(namespace string) *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		ExtractionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Series extractions by granularity and metric.",
		}, []string{"granularity", "metric"}),
		SeriesEmittedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "series_emitted_total",
			Help:      "Series produced by extractions, by granularity.",
		}, []string{"granularity"}),
		WordsNotFoundTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "words_not_found_total",
			Help:      "Requested words missing from the table, by granularity.",
		}, []string{"granularity"}),
		ChartRendersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_renders_total",
			Help:      "Chart image requests by format and cache outcome (hit, miss, off).",
		}, []string{"format", "cache"}),
		ChartRenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chart_render_duration_seconds",
			Help:      "Time spent drawing a chart image.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"format"}),
		ChartCacheEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chart_cache_entries",
			Help:      "Rendered charts currently held in the cache.",
		}),
		DatasetLoadedAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_loaded_timestamp_seconds",
			Help:      "Unix time the dataset finished loading.",
		}),
		DatasetLoadSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_load_duration_seconds",
			Help:      "Wall time spent fetching and parsing every source.",
		}),
		DatasetTableWords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_table_words",
			Help:      "Row count of each loaded table.",
		}, []string{"granularity", "metric"}),
	}

	m.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ExtractionsTotal,
		m.SeriesEmittedTotal,
		m.WordsNotFoundTotal,
		m.ChartRendersTotal,
		m.ChartRenderDuration,
		m.ChartCacheEntries,
		m.DatasetLoadedAt,
		m.DatasetLoadSeconds,
		m.DatasetTableWords,
	)
	return m
}

// Registry exposes the registry, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler returns the scrape handler for this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// ObserveHTTP records one finished request; its signature matches middleware.Observer
// unmatched routes are folded into one label to keep cardinality bounded
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveExtraction records one extraction and what it produced
func (m *Metrics) ObserveExtraction(granularity, metric string, series, notFound int) {
	if m == nil {
		return
	}
	m.ExtractionsTotal.WithLabelValues(granularity, metric).Inc()
	m.SeriesEmittedTotal.WithLabelValues(granularity).Add(float64(series))
	m.WordsNotFoundTotal.WithLabelValues(granularity).Add(float64(notFound))
}

// ObserveRender records one chart request; cache is "hit", "miss" or "off"
// elapsed is only observed when something was drawn
func (m *Metrics) ObserveRender(format, cache string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ChartRendersTotal.WithLabelValues(format, cache).Inc()
	if cache != "hit" {
		m.ChartRenderDuration.WithLabelValues(format).Observe(elapsed.Seconds())
	}
}

// SetCacheEntries reports the current chart cache size
func (m *Metrics) SetCacheEntries(n int) {
	if m == nil {
		return
	}
	m.ChartCacheEntries.Set(float64(n))
}

// ObserveDatasetLoad records when the dataset became ready and how long it took
func (m *Metrics) ObserveDatasetLoad(loadedAt time.Time, took time.Duration) {
	if m == nil {
		return
	}
	m.DatasetLoadedAt.Set(float64(loadedAt.Unix()))
	m.DatasetLoadSeconds.Set(took.Seconds())
}

// SetTableWords reports the row count of one loaded table
func (m *Metrics) SetTableWords(granularity, metric string, words int) {
	if m == nil {
		return
	}
	m.DatasetTableWords.WithLabelValues(granularity, metric).Set(float64(words))
}
