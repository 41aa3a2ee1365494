package weather

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxHourlyEntries is one day of 3-hour forecast steps
	MaxHourlyEntries = 8
	// MaxDailyEntries caps the daily summary
	MaxDailyEntries = 7

	noConditionPlaceholder = "—"
	noHighLowPlaceholder   = "-- / --"

	hourLabelLayout = "3PM"
	dayLabelLayout  = "Mon"
)

// HourlyView is one hourly display entry
type HourlyView struct {
	HourLabel   string `json:"hour_label"`
	Temperature string `json:"temperature"`
	Icon        string `json:"icon"`
}

// DailyView is one per-day display entry
type DailyView struct {
	DayLabel string `json:"day_label"`
	Min      string `json:"min"`
	Max      string `json:"max"`
	Icon     string `json:"icon"`
}

// CityWeatherView is the aggregated display model of one city
type CityWeatherView struct {
	City        string       `json:"city"`
	Temperature string       `json:"temperature"`
	Condition   string       `json:"condition"`
	HighLow     string       `json:"high_low"`
	Icon        string       `json:"icon"`
	Hourly      []HourlyView `json:"hourly"`
	Daily       []DailyView  `json:"daily"`
	ObservedAt  int64        `json:"observed_at"`
}

// Aggregate builds the display model for city from a current-weather record
// and a forecast bundle. Local time is the forecast city's UTC offset.
func Aggregate(city string, current *CurrentWeather, forecast *Forecast) CityWeatherView {
	return AggregateIn(city, current, forecast, forecast.Location())
}

// AggregateIn is Aggregate with an explicit location for hour and day labels
// and day grouping. It is pure: same inputs, same output.
func AggregateIn(city string, current *CurrentWeather, forecast *Forecast, loc *time.Location) CityWeatherView {
	if loc == nil {
		loc = time.UTC
	}
	if current == nil {
		current = &CurrentWeather{}
	}
	if forecast == nil {
		forecast = &Forecast{}
	}

	view := CityWeatherView{
		City:        city,
		Temperature: TemperatureLabel(current.Temperature),
		Condition:   headerCondition(current, forecast),
		HighLow:     headerHighLow(current, forecast),
		Icon:        IconFor(headerIconCode(current, forecast)),
		Hourly:      hourlyViews(forecast.Steps, loc),
		Daily:       dailyViews(forecast.Steps, loc),
		ObservedAt:  current.Timestamp,
	}
	return view
}

// TemperatureLabel renders a temperature truncated toward zero with a degree mark
func TemperatureLabel(value float64) string {
	return fmt.Sprintf("%d°", int(value))
}

// Capitalize upper-cases the first letter of s and lower-cases the rest
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

func hourlyViews(steps []ForecastStep, loc *time.Location) []HourlyView {
	count := len(steps)
	if count > MaxHourlyEntries {
		count = MaxHourlyEntries
	}

	hourly := make([]HourlyView, 0, count)
	for _, step := range steps[:count] {
		hourly = append(hourly, HourlyView{
			HourLabel:   step.Time().In(loc).Format(hourLabelLayout),
			Temperature: TemperatureLabel(step.Temperature),
			Icon:        IconFor(step.PrimaryIcon()),
		})
	}
	return hourly
}

func dailyViews(steps []ForecastStep, loc *time.Location) []DailyView {
	groups := make(map[int64][]ForecastStep)
	for _, step := range steps {
		day := startOfDay(step.Time(), loc)
		groups[day.Unix()] = append(groups[day.Unix()], step)
	}

	days := make([]int64, 0, len(groups))
	for day := range groups {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	if len(days) > MaxDailyEntries {
		days = days[:MaxDailyEntries]
	}

	daily := make([]DailyView, 0, len(days))
	for _, day := range days {
		items := groups[day]
		minTemp, maxTemp := items[0].TempMin, items[0].TempMax
		for _, item := range items[1:] {
			if item.TempMin < minTemp {
				minTemp = item.TempMin
			}
			if item.TempMax > maxTemp {
				maxTemp = item.TempMax
			}
		}

		daily = append(daily, DailyView{
			DayLabel: time.Unix(day, 0).In(loc).Format(dayLabelLayout),
			Min:      TemperatureLabel(minTemp),
			Max:      TemperatureLabel(maxTemp),
			Icon:     IconFor(items[0].PrimaryIcon()),
		})
	}
	return daily
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

func headerCondition(current *CurrentWeather, forecast *Forecast) string {
	if condition, ok := current.PrimaryCondition(); ok {
		return Capitalize(condition.Description)
	}
	if step, ok := forecast.FirstStep(); ok {
		if condition, ok := step.PrimaryCondition(); ok {
			return Capitalize(condition.Description)
		}
	}
	return noConditionPlaceholder
}

func headerIconCode(current *CurrentWeather, forecast *Forecast) string {
	if condition, ok := current.PrimaryCondition(); ok {
		return condition.Icon
	}
	if step, ok := forecast.FirstStep(); ok {
		return step.PrimaryIcon()
	}
	return ""
}

func headerHighLow(current *CurrentWeather, forecast *Forecast) string {
	if current.TempMin != nil && current.TempMax != nil {
		return fmt.Sprintf("%s / %s", TemperatureLabel(*current.TempMin), TemperatureLabel(*current.TempMax))
	}
	if step, ok := forecast.FirstStep(); ok {
		return fmt.Sprintf("%s / %s", TemperatureLabel(step.TempMin), TemperatureLabel(step.TempMax))
	}
	return noHighLowPlaceholder
}
