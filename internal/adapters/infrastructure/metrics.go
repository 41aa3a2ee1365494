package infrastructure

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"breezy.app/internal/ports"
)

// PrometheusMetrics implements the MetricsRecorder port on its own registry
type PrometheusMetrics struct {
	registry      *prometheus.Registry
	apiCalls      *prometheus.CounterVec
	apiLatency    *prometheus.HistogramVec
	cacheHits     *prometheus.CounterVec
	cacheMisses   *prometheus.CounterVec
	refreshes     *prometheus.CounterVec
	trackedCities prometheus.Gauge
}

// NewPrometheusMetrics registers the breezy collectors plus Go and process collectors
func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &PrometheusMetrics{
		registry: registry,
		apiCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "breezy_weather_api_calls_total",
				Help: "Total OpenWeatherMap API calls",
			},
			[]string{"endpoint", "success"},
		),
		apiLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "breezy_weather_api_latency_seconds",
				Help:    "OpenWeatherMap API call latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "breezy_cache_hits_total",
				Help: "The total number of cache hits",
			},
			[]string{"cache_type"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "breezy_cache_misses_total",
				Help: "The total number of cache misses",
			},
			[]string{"cache_type"},
		),
		refreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "breezy_city_refreshes_total",
				Help: "Total per-city weather refreshes",
			},
			[]string{"success"},
		),
		trackedCities: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "breezy_tracked_cities",
				Help: "Number of cities currently tracked",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordWeatherAPICall(endpoint string, success bool, duration time.Duration) {
	m.apiCalls.WithLabelValues(endpoint, strconv.FormatBool(success)).Inc()
	m.apiLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordCacheHit(cacheType string) {
	m.cacheHits.WithLabelValues(cacheType).Inc()
}

func (m *PrometheusMetrics) RecordCacheMiss(cacheType string) {
	m.cacheMisses.WithLabelValues(cacheType).Inc()
}

func (m *PrometheusMetrics) RecordRefresh(success bool) {
	m.refreshes.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func (m *PrometheusMetrics) SetTrackedCities(count int) {
	m.trackedCities.Set(float64(count))
}

// Registry exposes the underlying registry for tests and custom handlers
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

var _ ports.MetricsRecorder = (*PrometheusMetrics)(nil)
