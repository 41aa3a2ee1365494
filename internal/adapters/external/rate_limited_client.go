package external

import (
	"context"

	"golang.org/x/time/rate"

	"breezy.app/internal/core/weather"
	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

// RateLimitedWeatherClient wraps a WeatherClient with a shared token bucket.
// Current and forecast calls draw from the same limiter since the upstream
// quota is per API key.
type RateLimitedWeatherClient struct {
	client  ports.WeatherClient
	limiter *rate.Limiter
}

// NewRateLimitedWeatherClient creates a rate limited client.
// rps may be fractional; burst is the maximum burst size.
func NewRateLimitedWeatherClient(client ports.WeatherClient, rps float64, burst int) *RateLimitedWeatherClient {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedWeatherClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// FetchCurrent waits for limiter permission, then forwards the call
func (r *RateLimitedWeatherClient) FetchCurrent(ctx context.Context, city string, units weather.Units) (*weather.CurrentWeather, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewTransportError("rate limit wait canceled", err)
	}
	return r.client.FetchCurrent(ctx, city, units)
}

// FetchForecast waits for limiter permission, then forwards the call
func (r *RateLimitedWeatherClient) FetchForecast(ctx context.Context, city string, units weather.Units) (*weather.Forecast, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewTransportError("rate limit wait canceled", err)
	}
	return r.client.FetchForecast(ctx, city, units)
}

var _ ports.WeatherClient = (*RateLimitedWeatherClient)(nil)
