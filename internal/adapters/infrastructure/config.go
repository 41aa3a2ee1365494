package infrastructure

import (
	"breezy.app/internal/config"
	"breezy.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetWeatherSettings returns the weather client settings used by use cases
func (c *ConfigProviderAdapter) GetWeatherSettings() ports.WeatherSettings {
	return ports.WeatherSettings{
		Units:       c.config.Weather.ParsedUnits(),
		EnableCache: c.config.Weather.EnableCache,
		CacheTTL:    c.config.Weather.CacheTTL,
	}
}

// GetRefreshSettings returns refresh scheduling settings
func (c *ConfigProviderAdapter) GetRefreshSettings() ports.RefreshSettings {
	pollInterval := c.config.Refresh.PollInterval
	if !c.config.Refresh.EnablePolling {
		pollInterval = 0
	}
	return ports.RefreshSettings{
		PollInterval:        pollInterval,
		FullRefreshSchedule: c.config.Refresh.FullRefreshSchedule,
		Concurrency:         c.config.Refresh.Concurrency,
	}
}
