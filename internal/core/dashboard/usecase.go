package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"breezy.app/internal/core/city"
	"breezy.app/internal/core/weather"
	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

// CityDirectory is the tracked city list the dashboard renders
type CityDirectory interface {
	List() []string
	Find(name string) (string, bool)
	Add(ctx context.Context, name string) (string, error)
	Remove(ctx context.Context, name string) (string, error)
}

// CityResult is the outcome of refreshing one city
type CityResult struct {
	City    string `json:"city"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// RefreshReport summarizes one multi-city refresh
type RefreshReport struct {
	BatchID   string        `json:"batch_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Results   []CityResult  `json:"results"`
}

// Failed returns the number of cities whose refresh failed
func (r RefreshReport) Failed() int {
	failed := 0
	for _, result := range r.Results {
		if !result.Success {
			failed++
		}
	}
	return failed
}

// AddResult is the outcome of adding a city. Error carries the refresh
// failure message when the city was added but its weather could not be loaded.
type AddResult struct {
	City  string                   `json:"city"`
	View  *weather.CityWeatherView `json:"view,omitempty"`
	Error string                   `json:"error,omitempty"`
}

// Snapshot is the whole dashboard at one instant
type Snapshot struct {
	Cities  []string                  `json:"cities"`
	Focused string                    `json:"focused"`
	Loading bool                      `json:"loading"`
	Views   []weather.CityWeatherView `json:"views"`
	Errors  map[string]string         `json:"errors"`
}

type UseCase struct {
	client  ports.WeatherClient
	cities  CityDirectory
	config  ports.ConfigProvider
	logger  ports.Logger
	metrics ports.MetricsRecorder
	store   *ViewStore

	focusMu sync.RWMutex
	focused string
	loading atomic.Int32
}

type UseCaseDependencies struct {
	Client  ports.WeatherClient
	Cities  CityDirectory
	Config  ports.ConfigProvider
	Logger  ports.Logger
	Metrics ports.MetricsRecorder
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Client == nil {
		return nil, errors.NewValidationError("weather client is required")
	}
	if deps.Cities == nil {
		return nil, errors.NewValidationError("city directory is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		client:  deps.Client,
		cities:  deps.Cities,
		config:  deps.Config,
		logger:  deps.Logger,
		metrics: deps.Metrics,
		store:   NewViewStore(),
	}, nil
}

// Preview fetches and aggregates weather for any city without tracking it
func (uc *UseCase) Preview(ctx context.Context, name string, units string) (weather.CityWeatherView, error) {
	name = city.Normalize(name)
	if name == "" {
		return weather.CityWeatherView{}, errors.NewValidationError("city name cannot be empty")
	}

	parsed := uc.config.GetWeatherSettings().Units
	if units != "" {
		var err error
		if parsed, err = weather.ParseUnits(units); err != nil {
			return weather.CityWeatherView{}, errors.NewValidationError(err.Error())
		}
	}

	view, err := uc.fetch(ctx, name, parsed)
	if err != nil {
		return weather.CityWeatherView{}, fmt.Errorf("preview weather for %s: %w", name, err)
	}
	return view, nil
}

// RefreshCity fetches a tracked city and replaces its view. On failure the
// previous view is kept and the error is recorded for the city.
func (uc *UseCase) RefreshCity(ctx context.Context, name string) (weather.CityWeatherView, error) {
	stored, ok := uc.cities.Find(name)
	if !ok {
		return weather.CityWeatherView{}, errors.NewNotFoundError(fmt.Sprintf("city %q is not tracked", city.Normalize(name)))
	}

	units := uc.config.GetWeatherSettings().Units
	uc.logger.Debug("Refreshing city weather", ports.F("city", stored), ports.F("units", units.String()))

	view, err := uc.fetch(ctx, stored, units)
	if err != nil {
		// An abandoned refresh keeps the city's last outcome
		if ctx.Err() != nil {
			return weather.CityWeatherView{}, fmt.Errorf("refresh weather for %s: %w", stored, err)
		}
		if _, ok := uc.cities.Find(stored); !ok {
			return weather.CityWeatherView{}, fmt.Errorf("refresh weather for %s: %w", stored, err)
		}
		uc.metrics.RecordRefresh(false)
		uc.store.Fail(stored, errors.Message(err))
		uc.logger.Warn("City weather refresh failed", ports.F("city", stored), ports.F("error", err))
		return weather.CityWeatherView{}, fmt.Errorf("refresh weather for %s: %w", stored, err)
	}

	// The city may have been removed while the request was in flight
	if _, ok := uc.cities.Find(stored); !ok {
		return view, nil
	}

	uc.store.Put(view)
	uc.metrics.RecordRefresh(true)
	uc.logger.Debug("City weather refreshed", ports.F("city", stored), ports.F("temperature", view.Temperature))
	return view, nil
}

// RefreshAll refreshes every tracked city with bounded concurrency. One
// city's failure never affects the others.
func (uc *UseCase) RefreshAll(ctx context.Context) RefreshReport {
	uc.loading.Add(1)
	defer uc.loading.Add(-1)

	cities := uc.cities.List()
	report := RefreshReport{
		BatchID:   uuid.NewString(),
		StartedAt: time.Now(),
		Results:   make([]CityResult, len(cities)),
	}
	if len(cities) == 0 {
		return report
	}

	limit := uc.config.GetRefreshSettings().Concurrency
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i, name := range cities {
		g.Go(func() error {
			result := CityResult{City: name, Success: true}
			if _, err := uc.RefreshCity(ctx, name); err != nil {
				result.Success = false
				result.Error = errors.Message(err)
			}
			report.Results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	report.Duration = time.Since(report.StartedAt)
	uc.logger.Info("Refreshed all cities",
		ports.F("batch_id", report.BatchID),
		ports.F("cities", len(cities)),
		ports.F("failed", report.Failed()),
		ports.F("duration", report.Duration.String()))
	return report
}

// RefreshFocused refreshes the focused city, if any
func (uc *UseCase) RefreshFocused(ctx context.Context) error {
	focused := uc.Focused()
	if focused == "" {
		return nil
	}
	_, err := uc.RefreshCity(ctx, focused)
	return err
}

// AddCity tracks a city and loads its weather. A refresh failure does not
// undo the add; it is reported in the result.
func (uc *UseCase) AddCity(ctx context.Context, name string) (AddResult, error) {
	stored, err := uc.cities.Add(ctx, name)
	if err != nil {
		return AddResult{}, err
	}
	uc.metrics.SetTrackedCities(len(uc.cities.List()))

	result := AddResult{City: stored}
	view, err := uc.RefreshCity(ctx, stored)
	if err != nil {
		result.Error = errors.Message(err)
		return result, nil
	}
	result.View = &view
	return result, nil
}

// RemoveCity stops tracking a city and drops its view. When the focused city
// is removed, focus moves to the city now at its position, or the last one.
func (uc *UseCase) RemoveCity(ctx context.Context, name string) error {
	before := uc.cities.List()
	stored, err := uc.cities.Remove(ctx, name)
	if err != nil {
		return err
	}
	uc.store.Delete(stored)

	after := uc.cities.List()
	uc.metrics.SetTrackedCities(len(after))

	uc.focusMu.Lock()
	defer uc.focusMu.Unlock()
	if !strings.EqualFold(uc.focused, stored) {
		return nil
	}

	uc.focused = ""
	if len(after) == 0 {
		return nil
	}
	idx := indexFold(before, stored)
	if idx >= len(after) || idx < 0 {
		idx = len(after) - 1
	}
	uc.focused = after[idx]
	return nil
}

// Focus selects the city the poller keeps fresh
func (uc *UseCase) Focus(name string) (string, error) {
	stored, ok := uc.cities.Find(name)
	if !ok {
		return "", errors.NewNotFoundError(fmt.Sprintf("city %q is not tracked", city.Normalize(name)))
	}

	uc.focusMu.Lock()
	uc.focused = stored
	uc.focusMu.Unlock()
	return stored, nil
}

// Focused returns the focused city, defaulting to the first tracked one
func (uc *UseCase) Focused() string {
	uc.focusMu.RLock()
	focused := uc.focused
	uc.focusMu.RUnlock()

	if focused != "" {
		if stored, ok := uc.cities.Find(focused); ok {
			return stored
		}
	}

	cities := uc.cities.List()
	if len(cities) == 0 {
		return ""
	}
	return cities[0]
}

// TrackLocatedCity adds the device city when it is new and focuses it
func (uc *UseCase) TrackLocatedCity(ctx context.Context, name string) error {
	stored, ok := uc.cities.Find(name)
	if !ok {
		result, err := uc.AddCity(ctx, name)
		switch {
		case err == nil:
			stored = result.City
		case errors.IsAlreadyExistsError(err):
			stored, _ = uc.cities.Find(name)
		default:
			return err
		}
	}

	uc.focusMu.Lock()
	uc.focused = stored
	uc.focusMu.Unlock()
	return nil
}

// View returns the latest view of a tracked city
func (uc *UseCase) View(name string) (weather.CityWeatherView, error) {
	stored, ok := uc.cities.Find(name)
	if !ok {
		return weather.CityWeatherView{}, errors.NewNotFoundError(fmt.Sprintf("city %q is not tracked", city.Normalize(name)))
	}

	view, ok := uc.store.Get(stored)
	if !ok {
		if message, failed := uc.store.LastError(stored); failed {
			return weather.CityWeatherView{}, errors.NewNotFoundError(fmt.Sprintf("no weather for %s yet: %s", stored, message))
		}
		return weather.CityWeatherView{}, errors.NewNotFoundError(fmt.Sprintf("no weather for %s yet", stored))
	}
	return view, nil
}

// Snapshot returns the dashboard state
func (uc *UseCase) Snapshot() Snapshot {
	cities := uc.cities.List()
	views, errs := uc.store.Collect(cities)

	return Snapshot{
		Cities:  cities,
		Focused: uc.Focused(),
		Loading: uc.loading.Load() > 0,
		Views:   views,
		Errors:  errs,
	}
}

func (uc *UseCase) fetch(ctx context.Context, name string, units weather.Units) (weather.CityWeatherView, error) {
	var (
		current  *weather.CurrentWeather
		forecast *weather.Forecast
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = uc.client.FetchCurrent(gctx, name, units)
		return err
	})
	g.Go(func() error {
		var err error
		forecast, err = uc.client.FetchForecast(gctx, name, units)
		return err
	})
	if err := g.Wait(); err != nil {
		return weather.CityWeatherView{}, err
	}

	return weather.Aggregate(name, current, forecast), nil
}

func indexFold(names []string, name string) int {
	for i, existing := range names {
		if strings.EqualFold(existing, name) {
			return i
		}
	}
	return -1
}
