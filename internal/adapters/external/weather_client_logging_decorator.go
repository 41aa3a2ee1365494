package external

import (
	"context"
	"time"

	"breezy.app/internal/core/weather"
	"breezy.app/internal/ports"
)

// WeatherClientLoggingDecorator decorates a weather client with structured logging
type WeatherClientLoggingDecorator struct {
	client ports.WeatherClient
	logger ports.Logger
}

// NewWeatherClientLoggingDecorator creates a new logging decorator for a weather client
func NewWeatherClientLoggingDecorator(client ports.WeatherClient, logger ports.Logger) *WeatherClientLoggingDecorator {
	return &WeatherClientLoggingDecorator{
		client: client,
		logger: logger,
	}
}

// FetchCurrent wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) FetchCurrent(ctx context.Context, city string, units weather.Units) (*weather.CurrentWeather, error) {
	d.logStart(currentEndpoint, city, units)

	startTime := time.Now()
	current, err := d.client.FetchCurrent(ctx, city, units)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure(currentEndpoint, city, duration, err)
		return nil, err
	}

	condition, _ := current.PrimaryCondition()
	d.logger.Info("Weather API request completed",
		ports.F("endpoint", currentEndpoint),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("temperature", current.Temperature),
		ports.F("humidity", current.Humidity),
		ports.F("description", condition.Description))

	return current, nil
}

// FetchForecast wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) FetchForecast(ctx context.Context, city string, units weather.Units) (*weather.Forecast, error) {
	d.logStart(forecastEndpoint, city, units)

	startTime := time.Now()
	forecast, err := d.client.FetchForecast(ctx, city, units)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure(forecastEndpoint, city, duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("endpoint", forecastEndpoint),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("steps", len(forecast.Steps)),
		ports.F("timezone_offset", forecast.City.TimezoneOffset))

	return forecast, nil
}

func (d *WeatherClientLoggingDecorator) logStart(endpoint, city string, units weather.Units) {
	d.logger.Info("Weather API request started",
		ports.F("endpoint", endpoint),
		ports.F("city", city),
		ports.F("units", units.String()),
		ports.F("event", "request"))
}

func (d *WeatherClientLoggingDecorator) logFailure(endpoint, city string, duration time.Duration, err error) {
	d.logger.Error("Weather API request failed",
		ports.F("endpoint", endpoint),
		ports.F("city", city),
		ports.F("event", "error"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("error", err.Error()))
}
