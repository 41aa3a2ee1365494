// Package external provides adapters for external services: the
// OpenWeatherMap client, its decorators and the cache providers behind them.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"breezy.app/internal/core/weather"
	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

const (
	// DefaultOpenWeatherMapBaseURL is the public 2.5 API root
	DefaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"

	defaultRequestTimeout = 30 * time.Second
	defaultRetryInterval  = 500 * time.Millisecond
	maxResponseBytes      = 4 << 20

	currentEndpoint  = "weather"
	forecastEndpoint = "forecast"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapClient implements the WeatherClient port against the
// OpenWeatherMap /weather and /forecast endpoints
type OpenWeatherMapClient struct {
	apiKey        string
	baseURL       string
	client        HTTPClient
	maxRetries    int
	retryInterval time.Duration
	logger        ports.Logger
}

// OpenWeatherMapClientParams holds parameters for creating the client
type OpenWeatherMapClientParams struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	MaxRetries    int
	RetryInterval time.Duration
	HTTPClient    HTTPClient
	Logger        ports.Logger
}

// NewOpenWeatherMapClient creates a new OpenWeatherMap client
func NewOpenWeatherMapClient(params OpenWeatherMapClientParams) (*OpenWeatherMapClient, error) {
	if strings.TrimSpace(params.APIKey) == "" {
		return nil, errors.NewConfigurationError("OpenWeatherMap API key is required", nil)
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultOpenWeatherMapBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errors.NewConfigurationError("invalid OpenWeatherMap base URL", err)
	}

	client := params.HTTPClient
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = defaultRequestTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	retryInterval := params.RetryInterval
	if retryInterval <= 0 {
		retryInterval = defaultRetryInterval
	}
	maxRetries := params.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &OpenWeatherMapClient{
		apiKey:        params.APIKey,
		baseURL:       baseURL,
		client:        client,
		maxRetries:    maxRetries,
		retryInterval: retryInterval,
		logger:        params.Logger,
	}, nil
}

// FetchCurrent retrieves current conditions for a city
func (c *OpenWeatherMapClient) FetchCurrent(ctx context.Context, city string, units weather.Units) (*weather.CurrentWeather, error) {
	city, err := validateRequest(city, units)
	if err != nil {
		return nil, err
	}

	var resp currentWeatherResponse
	if err := c.get(ctx, currentEndpoint, city, units, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain()
}

// FetchForecast retrieves the 5 day / 3 hour forecast for a city
func (c *OpenWeatherMapClient) FetchForecast(ctx context.Context, city string, units weather.Units) (*weather.Forecast, error) {
	city, err := validateRequest(city, units)
	if err != nil {
		return nil, err
	}

	var resp forecastResponse
	if err := c.get(ctx, forecastEndpoint, city, units, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain()
}

func validateRequest(city string, units weather.Units) (string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return "", errors.NewValidationError("city cannot be empty")
	}
	if !units.IsValid() {
		return "", errors.NewValidationError(fmt.Sprintf("unsupported units %q", units))
	}
	return city, nil
}

func (c *OpenWeatherMapClient) endpointURL(endpoint, city string, units weather.Units) string {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", units.String())
	return c.baseURL + "/" + endpoint + "?" + query.Encode()
}

// get performs the request, retrying transport failures and 429/5xx
// responses, and decodes a 2xx body into target
func (c *OpenWeatherMapClient) get(ctx context.Context, endpoint, city string, units weather.Units, target interface{}) error {
	requestURL := c.endpointURL(endpoint, city, units)

	var body []byte
	attempt := 0
	operation := func() error {
		attempt++
		data, err := c.do(ctx, endpoint, requestURL)
		if err != nil {
			if attempt <= c.maxRetries && isRetryable(ctx, err) {
				c.logger.Debug("Retrying OpenWeatherMap request",
					ports.F("endpoint", endpoint),
					ports.F("city", city),
					ports.F("attempt", attempt),
					ports.F("error", err.Error()))
				return err
			}
			return backoff.Permanent(err)
		}
		body = data
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryInterval
	policy.MaxElapsedTime = 0
	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(c.maxRetries)), ctx)); err != nil {
		if _, ok := errors.AsAppError(err); ok {
			return err
		}
		return errors.NewTransportError(fmt.Sprintf("OpenWeatherMap %s request aborted", endpoint), err)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.NewDecodeError(fmt.Sprintf("malformed OpenWeatherMap %s response", endpoint), err)
	}
	return nil
}

func (c *OpenWeatherMapClient) do(ctx context.Context, endpoint, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.NewTransportError("failed to build OpenWeatherMap request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewTransportError(fmt.Sprintf("failed to call OpenWeatherMap %s", endpoint), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.NewTransportError(fmt.Sprintf("failed to read OpenWeatherMap %s response", endpoint), err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.NewRemoteError(resp.StatusCode, remoteMessage(data))
	}
	return data, nil
}

func isRetryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		return false
	}
	switch appErr.Type {
	case errors.ErrorTypeTransport:
		return true
	case errors.ErrorTypeRemote:
		return appErr.StatusCode == http.StatusTooManyRequests || appErr.StatusCode >= http.StatusInternalServerError
	default:
		return false
	}
}

// remoteMessage extracts the server message from an error body. Both
// "message" and "error" keys are used by the API; numbers are accepted too.
func remoteMessage(body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, key := range []string{"message", "error"} {
		switch value := payload[key].(type) {
		case string:
			if strings.TrimSpace(value) != "" {
				return value
			}
		case float64:
			return fmt.Sprintf("%v", value)
		}
	}
	return ""
}
