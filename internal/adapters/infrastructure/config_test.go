package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"breezy.app/internal/config"
	"breezy.app/internal/core/weather"
)

func TestConfigProviderAdapter(t *testing.T) {
	cfg := &config.Config{
		Weather: config.WeatherConfig{Units: "Imperial", EnableCache: true, CacheTTL: 5 * time.Minute},
		Refresh: config.RefreshConfig{EnablePolling: true, PollInterval: 30 * time.Second, FullRefreshSchedule: "@hourly", Concurrency: 2},
	}
	provider := NewConfigProviderAdapter(cfg)

	weatherSettings := provider.GetWeatherSettings()
	assert.Equal(t, weather.UnitsImperial, weatherSettings.Units)
	assert.True(t, weatherSettings.EnableCache)
	assert.Equal(t, 5*time.Minute, weatherSettings.CacheTTL)

	refresh := provider.GetRefreshSettings()
	assert.Equal(t, 30*time.Second, refresh.PollInterval)
	assert.Equal(t, "@hourly", refresh.FullRefreshSchedule)
	assert.Equal(t, 2, refresh.Concurrency)

	cfg.Refresh.EnablePolling = false
	assert.Zero(t, provider.GetRefreshSettings().PollInterval)
}
