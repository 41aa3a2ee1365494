package external

import (
	"context"
	"time"

	"breezy.app/internal/core/weather"
	"breezy.app/internal/ports"
)

// InstrumentedWeatherClient records call counts and latencies per endpoint
type InstrumentedWeatherClient struct {
	client  ports.WeatherClient
	metrics ports.MetricsRecorder
}

// NewInstrumentedWeatherClient creates a metrics decorator for a weather client
func NewInstrumentedWeatherClient(client ports.WeatherClient, metrics ports.MetricsRecorder) *InstrumentedWeatherClient {
	return &InstrumentedWeatherClient{
		client:  client,
		metrics: metrics,
	}
}

// FetchCurrent forwards the call and records its outcome
func (i *InstrumentedWeatherClient) FetchCurrent(ctx context.Context, city string, units weather.Units) (*weather.CurrentWeather, error) {
	start := time.Now()
	current, err := i.client.FetchCurrent(ctx, city, units)
	i.metrics.RecordWeatherAPICall(currentEndpoint, err == nil, time.Since(start))
	return current, err
}

// FetchForecast forwards the call and records its outcome
func (i *InstrumentedWeatherClient) FetchForecast(ctx context.Context, city string, units weather.Units) (*weather.Forecast, error) {
	start := time.Now()
	forecast, err := i.client.FetchForecast(ctx, city, units)
	i.metrics.RecordWeatherAPICall(forecastEndpoint, err == nil, time.Since(start))
	return forecast, err
}
