// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"breezy.app/internal/core/dashboard"
	"breezy.app/internal/core/session"
	"breezy.app/internal/core/weather"
	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	dashboardUseCase DashboardUseCase
	sessionUseCase   SessionUseCase
	metricsCollector MetricsCollector
	healthChecker    ports.SystemHealthChecker
	metricsHandler   http.Handler
	logger           ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type DashboardUseCase interface {
	Snapshot() dashboard.Snapshot
	View(name string) (weather.CityWeatherView, error)
	Preview(ctx context.Context, name string, units string) (weather.CityWeatherView, error)
	RefreshCity(ctx context.Context, name string) (weather.CityWeatherView, error)
	RefreshAll(ctx context.Context) dashboard.RefreshReport
	AddCity(ctx context.Context, name string) (dashboard.AddResult, error)
	RemoveCity(ctx context.Context, name string) error
	Focus(name string) (string, error)
}

type SessionUseCase interface {
	HandleLocation(ctx context.Context, signal session.LocationSignal) (session.Snapshot, error)
	Snapshot() session.Snapshot
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	DashboardUseCase DashboardUseCase
	SessionUseCase   SessionUseCase
	MetricsCollector MetricsCollector
	HealthChecker    ports.SystemHealthChecker
	MetricsHandler   http.Handler
	Logger           ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(opts.Logger))

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		dashboardUseCase: opts.DashboardUseCase,
		sessionUseCase:   opts.SessionUseCase,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.HealthChecker,
		metricsHandler:   opts.MetricsHandler,
		logger:           opts.Logger,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.DashboardUseCase == nil {
		return errors.NewValidationError("dashboard use case is required")
	}
	if opts.SessionUseCase == nil {
		return errors.NewValidationError("session use case is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/cities", s.listCities)
		api.POST("/cities", s.addCity)
		api.DELETE("/cities/:city", s.removeCity)

		api.GET("/weather", s.getDashboard)
		api.POST("/weather/refresh", s.refreshAll)
		api.GET("/weather/:city", s.getCityWeather)
		api.POST("/weather/:city/refresh", s.refreshCity)
		api.GET("/preview", s.previewWeather)

		api.PUT("/focus", s.setFocus)

		api.GET("/session", s.getSession)
		api.POST("/session/location", s.reportLocation)

		api.GET("/metrics", s.getMetrics)
		api.GET("/health", s.getHealth)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// GetRouter returns the router for serving and testing
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// Addr returns the listen address for the configured port
func (s *HTTPServerAdapter) Addr() string {
	return fmt.Sprintf(":%d", s.config.Port)
}
