package external

import (
	"fmt"

	"breezy.app/internal/core/weather"
	"breezy.app/pkg/errors"
)

// Wire shapes of the OpenWeatherMap responses. Pointers mark fields that are
// required; a missing one turns into a decode error.

type conditionResponse struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type coordResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type windResponse struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

type currentMainResponse struct {
	Temp      *float64 `json:"temp"`
	FeelsLike float64  `json:"feels_like"`
	TempMin   *float64 `json:"temp_min"`
	TempMax   *float64 `json:"temp_max"`
	Pressure  *int     `json:"pressure"`
	Humidity  int      `json:"humidity"`
}

type currentWeatherResponse struct {
	Coord   coordResponse        `json:"coord"`
	Weather []conditionResponse  `json:"weather"`
	Main    *currentMainResponse `json:"main"`
	Wind    *windResponse        `json:"wind"`
	Dt      int64                `json:"dt"`
	Name    string               `json:"name"`
}

type forecastMainResponse struct {
	Temp      *float64 `json:"temp"`
	FeelsLike float64  `json:"feels_like"`
	TempMin   float64  `json:"temp_min"`
	TempMax   float64  `json:"temp_max"`
	Pressure  int      `json:"pressure"`
	Humidity  int      `json:"humidity"`
}

type cloudsResponse struct {
	All int `json:"all"`
}

type forecastItemResponse struct {
	Dt      *int64                `json:"dt"`
	Main    *forecastMainResponse `json:"main"`
	Weather []conditionResponse   `json:"weather"`
	Clouds  cloudsResponse        `json:"clouds"`
	Wind    windResponse          `json:"wind"`
	Pop     *float64              `json:"pop"`
	DtTxt   string                `json:"dt_txt"`
}

type forecastCityResponse struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Coord      coordResponse `json:"coord"`
	Country    string        `json:"country"`
	Population *int          `json:"population"`
	Timezone   int           `json:"timezone"`
	Sunrise    int64         `json:"sunrise"`
	Sunset     int64         `json:"sunset"`
}

type forecastResponse struct {
	List []forecastItemResponse `json:"list"`
	City *forecastCityResponse  `json:"city"`
}

func toConditions(items []conditionResponse) []weather.Condition {
	conditions := make([]weather.Condition, 0, len(items))
	for _, item := range items {
		conditions = append(conditions, weather.Condition{
			ID:          item.ID,
			Main:        item.Main,
			Description: item.Description,
			Icon:        item.Icon,
		})
	}
	return conditions
}

func (r currentWeatherResponse) toDomain() (*weather.CurrentWeather, error) {
	if r.Main == nil || r.Main.Temp == nil {
		return nil, errors.NewDecodeError("current weather response is missing main.temp", nil)
	}
	if len(r.Weather) == 0 {
		return nil, errors.NewDecodeError("current weather response is missing weather conditions", nil)
	}

	current := &weather.CurrentWeather{
		Timestamp:   r.Dt,
		Temperature: *r.Main.Temp,
		FeelsLike:   r.Main.FeelsLike,
		TempMin:     r.Main.TempMin,
		TempMax:     r.Main.TempMax,
		Humidity:    r.Main.Humidity,
		Pressure:    r.Main.Pressure,
		Conditions:  toConditions(r.Weather),
		CityName:    r.Name,
		Coordinates: weather.Coordinates{Lat: r.Coord.Lat, Lon: r.Coord.Lon},
	}
	if r.Wind != nil {
		current.Wind = &weather.Wind{Speed: r.Wind.Speed, Degree: r.Wind.Deg}
	}
	return current, nil
}

func (r forecastResponse) toDomain() (*weather.Forecast, error) {
	if r.List == nil {
		return nil, errors.NewDecodeError("forecast response is missing list", nil)
	}

	forecast := &weather.Forecast{Steps: make([]weather.ForecastStep, 0, len(r.List))}
	for i, item := range r.List {
		if item.Dt == nil {
			return nil, errors.NewDecodeError(fmt.Sprintf("forecast entry %d is missing dt", i), nil)
		}
		if item.Main == nil || item.Main.Temp == nil {
			return nil, errors.NewDecodeError(fmt.Sprintf("forecast entry %d is missing main.temp", i), nil)
		}

		forecast.Steps = append(forecast.Steps, weather.ForecastStep{
			Timestamp:           *item.Dt,
			Temperature:         *item.Main.Temp,
			FeelsLike:           item.Main.FeelsLike,
			TempMin:             item.Main.TempMin,
			TempMax:             item.Main.TempMax,
			Humidity:            item.Main.Humidity,
			Pressure:            item.Main.Pressure,
			Clouds:              item.Clouds.All,
			Wind:                weather.Wind{Speed: item.Wind.Speed, Degree: item.Wind.Deg},
			Conditions:          toConditions(item.Weather),
			PrecipitationChance: item.Pop,
			TimestampText:       item.DtTxt,
		})
	}

	if r.City == nil {
		return nil, errors.NewDecodeError("forecast response is missing city", nil)
	}
	forecast.City = weather.ForecastCity{
		ID:             r.City.ID,
		Name:           r.City.Name,
		Country:        r.City.Country,
		Coordinates:    weather.Coordinates{Lat: r.City.Coord.Lat, Lon: r.City.Coord.Lon},
		Population:     r.City.Population,
		TimezoneOffset: r.City.Timezone,
		Sunrise:        r.City.Sunrise,
		Sunset:         r.City.Sunset,
	}
	return forecast, nil
}
