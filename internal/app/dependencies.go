package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	"breezy.app/internal/adapters/database"
	"breezy.app/internal/adapters/external"
	"breezy.app/internal/adapters/infrastructure"
	"breezy.app/internal/config"
	"breezy.app/internal/core/credentials"
	"breezy.app/internal/ports"
	"breezy.app/pkg/logger"
)

// DependencyContainer builds and owns the adapters behind the ports
type DependencyContainer struct {
	config     *config.Config
	httpClient external.HTTPClient

	db         *gorm.DB
	logger     *infrastructure.SlogLoggerAdapter
	fileLogger *infrastructure.FileLoggerAdapter
	metrics    *infrastructure.PrometheusMetrics
	cache      external.CacheProvider
	keySource  credentials.Source
	ports      *ports.ApplicationPorts
}

// DependencyOptions tune how the container builds its adapters
type DependencyOptions struct {
	// HTTPClient replaces the weather client's transport when set
	HTTPClient external.HTTPClient
}

func NewDependencyContainer(ctx context.Context, cfg *config.Config, log *slog.Logger, opts DependencyOptions) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:     cfg,
		httpClient: opts.HTTPClient,
		logger:     infrastructure.NewSlogLoggerAdapter(log),
		metrics:    infrastructure.NewPrometheusMetrics(),
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(ctx); err != nil {
		container.Close()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	c.logger.Info("Initializing database connection...", ports.F("driver", string(c.config.Database.Driver)))

	db, err := database.Open(c.config.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	c.db = db
	c.logger.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts(ctx context.Context) error {
	cityStore := database.NewCityRepositoryAdapter(c.db)
	credentialStore := database.NewCredentialRepositoryAdapter(c.db)
	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	var cacheProvider ports.CacheProvider
	var cacheMetrics ports.CacheMetrics
	if c.config.Weather.EnableCache {
		cache, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache)
		if err != nil {
			return fmt.Errorf("create cache provider: %w", err)
		}
		c.cache = cache
		cacheProvider, cacheMetrics = cache, cache
		c.logger.Info("Cache provider initialized", ports.F("type", c.config.Cache.Type.String()))
	}

	client, err := c.initializeWeatherClient(ctx, credentialStore, cacheProvider)
	if err != nil {
		return err
	}

	c.ports = &ports.ApplicationPorts{
		WeatherClient:   client,
		CityStore:       cityStore,
		CredentialStore: credentialStore,
		CacheProvider:   cacheProvider,
		CacheMetrics:    cacheMetrics,
		ConfigProvider:  configProvider,
		Logger:          c.logger,
		Metrics:         c.metrics,
	}
	return nil
}

// initializeWeatherClient resolves the API key and assembles the decorator
// chain: rate limit, metrics, cache and request logging, innermost first.
func (c *DependencyContainer) initializeWeatherClient(ctx context.Context, store ports.CredentialStore, cache ports.CacheProvider) (ports.WeatherClient, error) {
	weatherCfg := c.config.Weather

	keys, err := credentials.NewUseCase(credentials.UseCaseDependencies{
		Store:         store,
		ConfiguredKey: weatherCfg.APIKey,
		DefaultKey:    weatherCfg.DefaultAPIKey,
		Logger:        c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create credentials use case: %w", err)
	}

	apiKey, source, err := keys.ResolveAPIKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve API key: %w", err)
	}
	c.keySource = source
	c.logger.Info("Weather API key resolved", ports.F("source", string(source)))

	owm, err := external.NewOpenWeatherMapClient(external.OpenWeatherMapClientParams{
		APIKey:        apiKey,
		BaseURL:       weatherCfg.BaseURL,
		Timeout:       weatherCfg.Timeout,
		MaxRetries:    weatherCfg.RetryMaxAttempts,
		RetryInterval: weatherCfg.RetryInterval,
		HTTPClient:    c.httpClient,
		Logger:        c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create weather client: %w", err)
	}

	var client ports.WeatherClient = owm
	if weatherCfg.RateLimitPerSecond > 0 {
		client = external.NewRateLimitedWeatherClient(client, weatherCfg.RateLimitPerSecond, weatherCfg.RateLimitBurst)
		c.logger.Info("Weather API rate limit enabled",
			ports.F("per_second", weatherCfg.RateLimitPerSecond),
			ports.F("burst", weatherCfg.RateLimitBurst))
	}

	client = external.NewInstrumentedWeatherClient(client, c.metrics)

	if cache != nil {
		client, err = external.NewCachedWeatherClient(external.CachedWeatherClientParams{
			Client:  client,
			Cache:   cache,
			TTL:     weatherCfg.CacheTTL,
			Metrics: c.metrics,
			Logger:  c.logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create cached weather client: %w", err)
		}
	}

	if weatherCfg.EnableLogging && weatherCfg.LogFilePath != "" {
		level, err := logger.ParseLevel(c.config.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		fileLogger, err := infrastructure.NewFileLoggerAdapter(weatherCfg.LogFilePath, level)
		if err != nil {
			c.logger.Warn("Failed to create file logger, weather requests will not be logged", ports.F("error", err))
		} else {
			c.fileLogger = fileLogger
			client = external.NewWeatherClientLoggingDecorator(client, fileLogger)
			c.logger.Info("Weather client logging enabled", ports.F("path", weatherCfg.LogFilePath))
		}
	}

	return client, nil
}

// HealthCheckers returns the per-component checkers for the health endpoint
func (c *DependencyContainer) HealthCheckers() map[string]ports.HealthChecker {
	return map[string]ports.HealthChecker{
		"database":   infrastructure.NewDatabaseHealthChecker(c.db),
		"cache":      infrastructure.NewCacheHealthChecker(c.ports.CacheMetrics, c.config.Weather.EnableCache),
		"weatherAPI": infrastructure.NewWeatherClientHealthChecker(c.ports.WeatherClient, c.config.Weather.BaseURL, string(c.keySource)),
	}
}

// ApplicationPorts returns the assembled ports
func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// MetricsHandler serves the Prometheus registry
func (c *DependencyContainer) MetricsHandler() http.Handler {
	return c.metrics.Handler()
}

// Close releases the file logger, the cache connection and the database
func (c *DependencyContainer) Close() {
	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil {
			c.logger.Warn("Failed to close weather client log", ports.F("error", err))
		}
	}
	if closer, ok := c.cache.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			c.logger.Warn("Failed to close cache provider", ports.F("error", err))
		}
	}
	if c.db != nil {
		if err := database.Close(c.db); err != nil {
			c.logger.Warn("Failed to close database", ports.F("error", err))
		}
	}
}
