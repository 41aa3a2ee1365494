package external

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"breezy.app/internal/core/weather"
	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

const weatherCacheType = "weather"

// CachedWeatherClient serves repeated requests from a CacheProvider.
// Cache failures never fail a request; they are logged and the upstream
// client is called instead.
type CachedWeatherClient struct {
	client  ports.WeatherClient
	cache   ports.CacheProvider
	ttl     time.Duration
	metrics ports.MetricsRecorder
	logger  ports.Logger
}

// CachedWeatherClientParams holds parameters for creating the caching decorator
type CachedWeatherClientParams struct {
	Client  ports.WeatherClient
	Cache   ports.CacheProvider
	TTL     time.Duration
	Metrics ports.MetricsRecorder
	Logger  ports.Logger
}

// NewCachedWeatherClient creates a caching decorator for a weather client
func NewCachedWeatherClient(params CachedWeatherClientParams) (*CachedWeatherClient, error) {
	if params.Client == nil {
		return nil, errors.NewValidationError("weather client is required")
	}
	if params.Cache == nil {
		return nil, errors.NewValidationError("cache provider is required")
	}
	if params.TTL <= 0 {
		return nil, errors.NewValidationError("cache TTL must be positive")
	}
	if params.Metrics == nil {
		return nil, errors.NewValidationError("metrics recorder is required")
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &CachedWeatherClient{
		client:  params.Client,
		cache:   params.Cache,
		ttl:     params.TTL,
		metrics: params.Metrics,
		logger:  params.Logger,
	}, nil
}

// FetchCurrent returns cached current conditions or fetches and stores them
func (c *CachedWeatherClient) FetchCurrent(ctx context.Context, city string, units weather.Units) (*weather.CurrentWeather, error) {
	return cachedFetch(ctx, c, currentEndpoint, city, units, c.client.FetchCurrent)
}

// FetchForecast returns a cached forecast or fetches and stores it
func (c *CachedWeatherClient) FetchForecast(ctx context.Context, city string, units weather.Units) (*weather.Forecast, error) {
	return cachedFetch(ctx, c, forecastEndpoint, city, units, c.client.FetchForecast)
}

// CacheKey builds the cache key for an endpoint, unit system and city
func CacheKey(endpoint string, units weather.Units, city string) string {
	return fmt.Sprintf("weather:%s:%s:%s", endpoint, units, strings.ToLower(strings.TrimSpace(city)))
}

func cachedFetch[T any](
	ctx context.Context,
	c *CachedWeatherClient,
	endpoint, city string,
	units weather.Units,
	fetch func(context.Context, string, weather.Units) (*T, error),
) (*T, error) {
	key := CacheKey(endpoint, units, city)

	if cached, ok := lookup[T](ctx, c, key); ok {
		c.metrics.RecordCacheHit(weatherCacheType)
		return cached, nil
	}
	c.metrics.RecordCacheMiss(weatherCacheType)

	value, err := fetch(ctx, city, units)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Failed to serialize weather data for cache", ports.F("key", key), ports.F("error", err.Error()))
		return value, nil
	}
	if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to store weather data in cache", ports.F("key", key), ports.F("error", err.Error()))
	}
	return value, nil
}

func lookup[T any](ctx context.Context, c *CachedWeatherClient, key string) (*T, bool) {
	data, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			c.logger.Warn("Weather cache lookup failed", ports.F("key", key), ports.F("error", err.Error()))
		}
		return nil, false
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		c.logger.Warn("Discarding unreadable weather cache entry", ports.F("key", key), ports.F("error", err.Error()))
		if delErr := c.cache.Delete(ctx, key); delErr != nil {
			c.logger.Warn("Failed to delete weather cache entry", ports.F("key", key), ports.F("error", delErr.Error()))
		}
		return nil, false
	}
	return &value, true
}
