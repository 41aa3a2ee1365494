package ports

import (
	"context"

	"breezy.app/internal/core/weather"
)

// WeatherClient fetches and decodes weather records for a city.
// Implementations return pkg/errors transport, remote or decode errors.
type WeatherClient interface {
	FetchCurrent(ctx context.Context, city string, units weather.Units) (*weather.CurrentWeather, error)
	FetchForecast(ctx context.Context, city string, units weather.Units) (*weather.Forecast, error)
}
