package infrastructure

import (
	"context"

	"breezy.app/internal/ports"
)

// MetricsCollectorAdapter serves the JSON metrics endpoint from the cache
// statistics and the configured weather settings
type MetricsCollectorAdapter struct {
	cacheMetrics   ports.CacheMetrics
	configProvider ports.ConfigProvider
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	CacheMetrics   ports.CacheMetrics
	ConfigProvider ports.ConfigProvider
}

// NewMetricsCollectorAdapter creates a new metrics collector adapter
func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		cacheMetrics:   config.CacheMetrics,
		configProvider: config.ConfigProvider,
	}
}

// GetMetrics returns cache statistics and weather settings
func (m *MetricsCollectorAdapter) GetMetrics(_ context.Context) (map[string]interface{}, error) {
	metrics := make(map[string]interface{})

	if m.configProvider != nil {
		weather := m.configProvider.GetWeatherSettings()
		refresh := m.configProvider.GetRefreshSettings()
		metrics["weather"] = map[string]interface{}{
			"units":         weather.Units.String(),
			"cache_enabled": weather.EnableCache,
			"cache_ttl":     weather.CacheTTL.String(),
		}
		metrics["refresh"] = map[string]interface{}{
			"poll_interval": refresh.PollInterval.String(),
			"schedule":      refresh.FullRefreshSchedule,
			"concurrency":   refresh.Concurrency,
		}
	}

	if m.cacheMetrics != nil {
		metrics["cache"] = m.cacheMetrics.GetStats()
	}

	return metrics, nil
}
