package dashboard

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"breezy.app/internal/core/city"
	"breezy.app/internal/core/weather"
	"breezy.app/internal/mocks"
	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

type testDeps struct {
	client  *mocks.WeatherClient
	config  *mocks.ConfigProvider
	metrics *mocks.MetricsRecorder
}

func newTestDashboard(t *testing.T, concurrency int, cities ...string) (*UseCase, testDeps) {
	t.Helper()

	store := mocks.NewCityStore(t)
	store.EXPECT().Load(mock.Anything).Return(cities, nil)
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Maybe()

	logger := mocks.NewPermissiveLogger(t)
	cityUseCase, err := city.NewUseCase(city.UseCaseDependencies{Store: store, Logger: logger})
	require.NoError(t, err)
	require.NoError(t, cityUseCase.Load(context.Background()))

	deps := testDeps{
		client:  mocks.NewWeatherClient(t),
		config:  mocks.NewConfigProvider(t),
		metrics: mocks.NewMetricsRecorder(t),
	}
	deps.config.EXPECT().GetWeatherSettings().Return(ports.WeatherSettings{Units: weather.UnitsMetric}).Maybe()
	deps.config.EXPECT().GetRefreshSettings().Return(ports.RefreshSettings{Concurrency: concurrency}).Maybe()
	deps.metrics.EXPECT().RecordRefresh(mock.Anything).Maybe()
	deps.metrics.EXPECT().SetTrackedCities(mock.Anything).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Client:  deps.client,
		Cities:  cityUseCase,
		Config:  deps.config,
		Logger:  logger,
		Metrics: deps.metrics,
	})
	require.NoError(t, err)
	return uc, deps
}

func currentFor(name string, temp float64) *weather.CurrentWeather {
	tempMin, tempMax := temp-2, temp+3
	return &weather.CurrentWeather{
		Timestamp:   1714521600,
		Temperature: temp,
		TempMin:     &tempMin,
		TempMax:     &tempMax,
		Conditions:  []weather.Condition{{Main: "Clear", Description: "clear sky", Icon: "01d"}},
		CityName:    name,
	}
}

func forecastFor(temp float64) *weather.Forecast {
	steps := make([]weather.ForecastStep, 0, 16)
	for i := 0; i < 16; i++ {
		steps = append(steps, weather.ForecastStep{
			Timestamp:   1714521600 + int64(i)*3*3600,
			Temperature: temp,
			TempMin:     temp - 1,
			TempMax:     temp + 1,
			Conditions:  []weather.Condition{{Description: "clear sky", Icon: "01d"}},
		})
	}
	return &weather.Forecast{Steps: steps}
}

func expectWeather(client *mocks.WeatherClient, name string, temp float64) {
	client.EXPECT().FetchCurrent(mock.Anything, name, weather.UnitsMetric).Return(currentFor(name, temp), nil)
	client.EXPECT().FetchForecast(mock.Anything, name, weather.UnitsMetric).Return(forecastFor(temp), nil)
}

func TestNewUseCase_Validation(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "weather client is required")
}

func TestUseCase_RefreshCity_Success(t *testing.T) {
	uc, deps := newTestDashboard(t, 2, "London")
	expectWeather(deps.client, "London", 22.7)

	view, err := uc.RefreshCity(context.Background(), "london")

	require.NoError(t, err)
	assert.Equal(t, "London", view.City)
	assert.Equal(t, "22°", view.Temperature)
	assert.Equal(t, "Clear sky", view.Condition)
	assert.Len(t, view.Hourly, 8)

	stored, err := uc.View("LONDON")
	require.NoError(t, err)
	assert.Equal(t, view, stored)
}

func TestUseCase_RefreshCity_FailureKeepsPreviousView(t *testing.T) {
	uc, deps := newTestDashboard(t, 2, "London")
	deps.client.EXPECT().FetchCurrent(mock.Anything, "London", weather.UnitsMetric).Return(currentFor("London", 10), nil).Once()
	deps.client.EXPECT().FetchForecast(mock.Anything, "London", weather.UnitsMetric).Return(forecastFor(10), nil).Once()

	first, err := uc.RefreshCity(context.Background(), "London")
	require.NoError(t, err)

	deps.client.EXPECT().FetchCurrent(mock.Anything, "London", weather.UnitsMetric).
		Return(nil, errors.NewRemoteError(500, "")).Once()
	deps.client.EXPECT().FetchForecast(mock.Anything, "London", weather.UnitsMetric).
		Return(forecastFor(30), nil).Maybe()

	_, err = uc.RefreshCity(context.Background(), "London")

	assert.True(t, errors.IsRemoteError(err))
	view, viewErr := uc.View("London")
	require.NoError(t, viewErr)
	assert.Equal(t, first, view)

	snapshot := uc.Snapshot()
	assert.Equal(t, map[string]string{"London": "HTTP Error - status 500"}, snapshot.Errors)
	assert.Len(t, snapshot.Views, 1)
}

func TestUseCase_RefreshCity_NotTracked(t *testing.T) {
	uc, _ := newTestDashboard(t, 2)

	_, err := uc.RefreshCity(context.Background(), "Atlantis")

	assert.True(t, errors.IsNotFoundError(err))
}

func TestUseCase_RefreshAll_IsolatesFailures(t *testing.T) {
	uc, deps := newTestDashboard(t, 3, "London", "Paris", "Rome")
	expectWeather(deps.client, "London", 15)
	expectWeather(deps.client, "Rome", 25)
	deps.client.EXPECT().FetchCurrent(mock.Anything, "Paris", weather.UnitsMetric).
		Return(nil, errors.NewRemoteError(404, "city not found"))
	deps.client.EXPECT().FetchForecast(mock.Anything, "Paris", weather.UnitsMetric).
		Return(forecastFor(20), nil).Maybe()

	report := uc.RefreshAll(context.Background())

	assert.NotEmpty(t, report.BatchID)
	assert.Equal(t, []CityResult{
		{City: "London", Success: true},
		{City: "Paris", Success: false, Error: "city not found"},
		{City: "Rome", Success: true},
	}, report.Results)
	assert.Equal(t, 1, report.Failed())

	snapshot := uc.Snapshot()
	require.Len(t, snapshot.Views, 2)
	assert.Equal(t, "London", snapshot.Views[0].City)
	assert.Equal(t, "Rome", snapshot.Views[1].City)
	assert.Equal(t, "city not found", snapshot.Errors["Paris"])
	assert.False(t, snapshot.Loading)
}

func TestUseCase_RefreshAll_EmptyRegistry(t *testing.T) {
	uc, _ := newTestDashboard(t, 2)

	report := uc.RefreshAll(context.Background())

	assert.Empty(t, report.Results)
	assert.Empty(t, uc.Snapshot().Views)
}

func TestUseCase_RefreshAll_BoundedConcurrency(t *testing.T) {
	cities := []string{"A", "B", "C", "D", "E", "F"}
	uc, deps := newTestDashboard(t, 2, cities...)

	var inFlight, maxInFlight atomic.Int32
	deps.client.EXPECT().FetchCurrent(mock.Anything, mock.Anything, weather.UnitsMetric).
		RunAndReturn(func(_ context.Context, name string, _ weather.Units) (*weather.CurrentWeather, error) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				seen := maxInFlight.Load()
				if n <= seen || maxInFlight.CompareAndSwap(seen, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			return currentFor(name, 5), nil
		})
	deps.client.EXPECT().FetchForecast(mock.Anything, mock.Anything, weather.UnitsMetric).Return(forecastFor(5), nil)

	report := uc.RefreshAll(context.Background())

	assert.Equal(t, 0, report.Failed())
	assert.LessOrEqual(t, maxInFlight.Load(), int32(2))
	assert.Len(t, uc.Snapshot().Views, len(cities))
}

func TestUseCase_RefreshAll_ReportsLoading(t *testing.T) {
	uc, deps := newTestDashboard(t, 1, "Oslo")

	var loadingSeen atomic.Bool
	deps.client.EXPECT().FetchCurrent(mock.Anything, "Oslo", weather.UnitsMetric).
		RunAndReturn(func(context.Context, string, weather.Units) (*weather.CurrentWeather, error) {
			loadingSeen.Store(uc.Snapshot().Loading)
			return currentFor("Oslo", 1), nil
		})
	deps.client.EXPECT().FetchForecast(mock.Anything, "Oslo", weather.UnitsMetric).Return(forecastFor(1), nil)

	uc.RefreshAll(context.Background())

	assert.True(t, loadingSeen.Load())
	assert.False(t, uc.Snapshot().Loading)
}

func TestUseCase_AddCity(t *testing.T) {
	uc, deps := newTestDashboard(t, 2)
	expectWeather(deps.client, "Kyiv", 18)

	result, err := uc.AddCity(context.Background(), " Kyiv ")

	require.NoError(t, err)
	assert.Equal(t, "Kyiv", result.City)
	require.NotNil(t, result.View)
	assert.Equal(t, "18°", result.View.Temperature)
	assert.Empty(t, result.Error)
	assert.Equal(t, "Kyiv", uc.Focused())
}

func TestUseCase_AddCity_RefreshFailureStillAdds(t *testing.T) {
	uc, deps := newTestDashboard(t, 2)
	deps.client.EXPECT().FetchCurrent(mock.Anything, "Nowhere", weather.UnitsMetric).
		Return(nil, errors.NewRemoteError(404, "city not found"))
	deps.client.EXPECT().FetchForecast(mock.Anything, "Nowhere", weather.UnitsMetric).
		Return(nil, errors.NewRemoteError(404, "city not found")).Maybe()

	result, err := uc.AddCity(context.Background(), "Nowhere")

	require.NoError(t, err)
	assert.Nil(t, result.View)
	assert.Equal(t, "city not found", result.Error)
	assert.Equal(t, []string{"Nowhere"}, uc.Snapshot().Cities)
}

func TestUseCase_AddCity_Duplicate(t *testing.T) {
	uc, _ := newTestDashboard(t, 2, "London")

	_, err := uc.AddCity(context.Background(), "LONDON")

	assert.True(t, errors.IsAlreadyExistsError(err))
}

func TestUseCase_RemoveCity_MovesFocus(t *testing.T) {
	uc, _ := newTestDashboard(t, 2, "London", "Paris", "Rome")

	_, err := uc.Focus("paris")
	require.NoError(t, err)
	require.NoError(t, uc.RemoveCity(context.Background(), "Paris"))
	assert.Equal(t, "Rome", uc.Focused())

	require.NoError(t, uc.RemoveCity(context.Background(), "Rome"))
	assert.Equal(t, "London", uc.Focused())

	require.NoError(t, uc.RemoveCity(context.Background(), "London"))
	assert.Equal(t, "", uc.Focused())

	err = uc.RemoveCity(context.Background(), "London")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUseCase_RemoveCity_DropsView(t *testing.T) {
	uc, deps := newTestDashboard(t, 2, "London", "Paris")
	expectWeather(deps.client, "Paris", 12)
	_, err := uc.RefreshCity(context.Background(), "Paris")
	require.NoError(t, err)

	require.NoError(t, uc.RemoveCity(context.Background(), "paris"))

	_, ok := uc.store.Get("Paris")
	assert.False(t, ok)
	assert.Empty(t, uc.Snapshot().Views)
}

func TestUseCase_RefreshCity_RemovedWhileInFlight(t *testing.T) {
	uc, deps := newTestDashboard(t, 2, "Oslo")
	deps.client.EXPECT().FetchCurrent(mock.Anything, "Oslo", weather.UnitsMetric).
		RunAndReturn(func(ctx context.Context, name string, _ weather.Units) (*weather.CurrentWeather, error) {
			assert.NoError(t, uc.RemoveCity(ctx, name))
			return currentFor(name, 3), nil
		})
	deps.client.EXPECT().FetchForecast(mock.Anything, "Oslo", weather.UnitsMetric).Return(forecastFor(3), nil)

	_, err := uc.RefreshCity(context.Background(), "Oslo")

	require.NoError(t, err)
	_, ok := uc.store.Get("Oslo")
	assert.False(t, ok)
}

func TestUseCase_RefreshCity_FailsAfterRemoval(t *testing.T) {
	uc, deps := newTestDashboard(t, 2, "Oslo")
	deps.client.EXPECT().FetchCurrent(mock.Anything, "Oslo", weather.UnitsMetric).
		RunAndReturn(func(ctx context.Context, name string, _ weather.Units) (*weather.CurrentWeather, error) {
			assert.NoError(t, uc.RemoveCity(ctx, name))
			return nil, errors.NewRemoteError(500, "")
		})
	deps.client.EXPECT().FetchForecast(mock.Anything, "Oslo", weather.UnitsMetric).Return(forecastFor(3), nil).Maybe()

	_, err := uc.RefreshCity(context.Background(), "Oslo")

	assert.True(t, errors.IsRemoteError(err))
	assert.Empty(t, uc.Snapshot().Errors)
	deps.metrics.AssertNotCalled(t, "RecordRefresh", false)
}

func TestUseCase_RefreshFocused_CancelledKeepsLastOutcome(t *testing.T) {
	uc, deps := newTestDashboard(t, 2, "London")
	deps.client.EXPECT().FetchCurrent(mock.Anything, "London", weather.UnitsMetric).Return(currentFor("London", 12), nil).Once()
	deps.client.EXPECT().FetchForecast(mock.Anything, "London", weather.UnitsMetric).Return(forecastFor(12), nil).Once()

	first, err := uc.RefreshCity(context.Background(), "London")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	deps.client.EXPECT().FetchCurrent(mock.Anything, "London", weather.UnitsMetric).
		Return(nil, errors.NewTransportError("failed to call OpenWeatherMap weather", context.Canceled)).Once()
	deps.client.EXPECT().FetchForecast(mock.Anything, "London", weather.UnitsMetric).
		Return(nil, errors.NewTransportError("failed to call OpenWeatherMap forecast", context.Canceled)).Maybe()

	err = uc.RefreshFocused(ctx)

	assert.True(t, errors.IsTransportError(err))
	assert.Empty(t, uc.Snapshot().Errors)
	view, viewErr := uc.View("London")
	require.NoError(t, viewErr)
	assert.Equal(t, first, view)
	deps.metrics.AssertNotCalled(t, "RecordRefresh", false)
}

func TestUseCase_Focus(t *testing.T) {
	uc, _ := newTestDashboard(t, 2, "London", "Paris")

	assert.Equal(t, "London", uc.Focused())

	stored, err := uc.Focus("PARIS")
	require.NoError(t, err)
	assert.Equal(t, "Paris", stored)
	assert.Equal(t, "Paris", uc.Focused())

	_, err = uc.Focus("Rome")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUseCase_RefreshFocused(t *testing.T) {
	uc, deps := newTestDashboard(t, 2, "London", "Paris")
	_, err := uc.Focus("Paris")
	require.NoError(t, err)
	expectWeather(deps.client, "Paris", 9)

	require.NoError(t, uc.RefreshFocused(context.Background()))

	_, err = uc.View("Paris")
	assert.NoError(t, err)
}

func TestUseCase_RefreshFocused_NoCities(t *testing.T) {
	uc, _ := newTestDashboard(t, 2)

	assert.NoError(t, uc.RefreshFocused(context.Background()))
}

func TestUseCase_TrackLocatedCity(t *testing.T) {
	t.Run("new_city_is_added_and_focused", func(t *testing.T) {
		uc, deps := newTestDashboard(t, 2, "London")
		expectWeather(deps.client, "Lisbon", 21)

		require.NoError(t, uc.TrackLocatedCity(context.Background(), "Lisbon"))

		assert.Equal(t, []string{"London", "Lisbon"}, uc.Snapshot().Cities)
		assert.Equal(t, "Lisbon", uc.Focused())
	})

	t.Run("known_city_is_focused", func(t *testing.T) {
		uc, _ := newTestDashboard(t, 2, "London", "Lisbon")

		require.NoError(t, uc.TrackLocatedCity(context.Background(), "lisbon"))

		assert.Equal(t, []string{"London", "Lisbon"}, uc.Snapshot().Cities)
		assert.Equal(t, "Lisbon", uc.Focused())
	})
}

func TestUseCase_Preview(t *testing.T) {
	uc, deps := newTestDashboard(t, 2)
	deps.client.EXPECT().FetchCurrent(mock.Anything, "Denver", weather.UnitsImperial).Return(currentFor("Denver", 71.6), nil)
	deps.client.EXPECT().FetchForecast(mock.Anything, "Denver", weather.UnitsImperial).Return(forecastFor(70), nil)

	view, err := uc.Preview(context.Background(), "Denver", "imperial")

	require.NoError(t, err)
	assert.Equal(t, "71°", view.Temperature)
	assert.Empty(t, uc.Snapshot().Cities)
}

func TestUseCase_Preview_Validation(t *testing.T) {
	uc, _ := newTestDashboard(t, 2)

	_, err := uc.Preview(context.Background(), "  ", "")
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Preview(context.Background(), "Denver", "kelvin")
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_View_NotYetLoaded(t *testing.T) {
	uc, _ := newTestDashboard(t, 2, "London")

	_, err := uc.View("London")

	assert.True(t, errors.IsNotFoundError(err))
}
