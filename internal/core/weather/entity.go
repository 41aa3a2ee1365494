package weather

import (
	"fmt"
	"strings"
	"time"
)

// Units selects the unit system the upstream API reports temperatures in
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
	UnitsStandard Units = "standard"
)

// ParseUnits normalizes a units string. Empty input selects metric.
func ParseUnits(value string) (Units, error) {
	normalized := Units(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return UnitsMetric, nil
	}
	if !normalized.IsValid() {
		return "", fmt.Errorf("unsupported units %q", value)
	}
	return normalized, nil
}

// IsValid reports whether u is a supported unit system
func (u Units) IsValid() bool {
	switch u {
	case UnitsMetric, UnitsImperial, UnitsStandard:
		return true
	default:
		return false
	}
}

func (u Units) String() string {
	return string(u)
}

// Condition is one entry of the upstream "weather" array
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Coordinates of a city
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Wind measurements
type Wind struct {
	Speed  float64 `json:"speed"`
	Degree int     `json:"deg"`
}

// CurrentWeather is the decoded current-conditions record
type CurrentWeather struct {
	Timestamp   int64       `json:"dt"`
	Temperature float64     `json:"temp"`
	FeelsLike   float64     `json:"feels_like"`
	TempMin     *float64    `json:"temp_min,omitempty"`
	TempMax     *float64    `json:"temp_max,omitempty"`
	Humidity    int         `json:"humidity"`
	Pressure    *int        `json:"pressure,omitempty"`
	Wind        *Wind       `json:"wind,omitempty"`
	Conditions  []Condition `json:"weather"`
	CityName    string      `json:"name"`
	Coordinates Coordinates `json:"coord"`
}

// PrimaryCondition returns the first condition, if any
func (c *CurrentWeather) PrimaryCondition() (Condition, bool) {
	if c == nil || len(c.Conditions) == 0 {
		return Condition{}, false
	}
	return c.Conditions[0], true
}

// ForecastStep is one 3-hour forecast entry
type ForecastStep struct {
	Timestamp           int64       `json:"dt"`
	Temperature         float64     `json:"temp"`
	FeelsLike           float64     `json:"feels_like"`
	TempMin             float64     `json:"temp_min"`
	TempMax             float64     `json:"temp_max"`
	Humidity            int         `json:"humidity"`
	Pressure            int         `json:"pressure"`
	Clouds              int         `json:"clouds"`
	Wind                Wind        `json:"wind"`
	Conditions          []Condition `json:"weather"`
	PrecipitationChance *float64    `json:"pop,omitempty"`
	TimestampText       string      `json:"dt_txt,omitempty"`
}

// PrimaryCondition returns the first condition, if any
func (s ForecastStep) PrimaryCondition() (Condition, bool) {
	if len(s.Conditions) == 0 {
		return Condition{}, false
	}
	return s.Conditions[0], true
}

// PrimaryIcon returns the first condition's icon code or ""
func (s ForecastStep) PrimaryIcon() string {
	condition, _ := s.PrimaryCondition()
	return condition.Icon
}

// Time returns the step instant
func (s ForecastStep) Time() time.Time {
	return time.Unix(s.Timestamp, 0)
}

// ForecastCity describes the forecast location
type ForecastCity struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	Country        string      `json:"country"`
	Coordinates    Coordinates `json:"coord"`
	Population     *int        `json:"population,omitempty"`
	TimezoneOffset int         `json:"timezone"`
	Sunrise        int64       `json:"sunrise"`
	Sunset         int64       `json:"sunset"`
}

// Forecast is the decoded forecast bundle, steps in ascending time order
type Forecast struct {
	Steps []ForecastStep `json:"list"`
	City  ForecastCity   `json:"city"`
}

// Location returns the fixed zone of the forecast city, derived from the
// upstream UTC offset in seconds
func (f *Forecast) Location() *time.Location {
	if f == nil {
		return time.UTC
	}
	name := f.City.Name
	if name == "" {
		name = "UTC"
	}
	return time.FixedZone(name, f.City.TimezoneOffset)
}

// FirstStep returns the earliest forecast step, if any
func (f *Forecast) FirstStep() (ForecastStep, bool) {
	if f == nil || len(f.Steps) == 0 {
		return ForecastStep{}, false
	}
	return f.Steps[0], true
}
