package ports

import (
	"time"

	"breezy.app/internal/core/weather"
)

// WeatherSettings is the runtime view of weather client configuration
type WeatherSettings struct {
	Units       weather.Units
	EnableCache bool
	CacheTTL    time.Duration
}

// RefreshSettings is the runtime view of refresh scheduling
type RefreshSettings struct {
	PollInterval        time.Duration
	FullRefreshSchedule string
	Concurrency         int
}

// ConfigProvider defines the contract for configuration access from use cases
type ConfigProvider interface {
	GetWeatherSettings() WeatherSettings
	GetRefreshSettings() RefreshSettings
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsRecorder records operational metrics
type MetricsRecorder interface {
	RecordWeatherAPICall(endpoint string, success bool, duration time.Duration)
	RecordCacheHit(cacheType string)
	RecordCacheMiss(cacheType string)
	RecordRefresh(success bool)
	SetTrackedCities(count int)
}
