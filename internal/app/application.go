package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"breezy.app/internal/adapters/api"
	"breezy.app/internal/adapters/infrastructure"
	"breezy.app/internal/config"
	"breezy.app/internal/core/city"
	"breezy.app/internal/core/dashboard"
	"breezy.app/internal/core/session"
	"breezy.app/internal/ports"
)

const (
	fullRefreshTask    = "full-refresh"
	fullRefreshTimeout = 2 * time.Minute
)

type Application struct {
	config *config.Config
	logger *slog.Logger

	// Use Cases
	cityUseCase      *city.UseCase
	dashboardUseCase *dashboard.UseCase
	sessionUseCase   *session.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Background refresh
	poller    *dashboard.Poller
	scheduler *infrastructure.CronScheduler
	workers   sync.WaitGroup

	// Infrastructure
	deps         *DependencyContainer
	ports        *ports.ApplicationPorts
	shutdownOnce sync.Once
}

// NewApplication wires every adapter and use case. The tracked cities are
// loaded from the database before it returns.
func NewApplication(ctx context.Context, cfg *config.Config, log *slog.Logger, opts DependencyOptions) (*Application, error) {
	if log == nil {
		log = slog.Default()
	}

	app := &Application{
		config: cfg,
		logger: log,
	}

	if err := app.initializePorts(ctx, opts); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	if err := app.initializeUseCases(ctx); err != nil {
		app.deps.Close()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		app.deps.Close()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializePorts(ctx context.Context, opts DependencyOptions) error {
	a.logger.Info("Initializing application ports...")

	deps, err := NewDependencyContainer(ctx, a.config, a.logger, opts)
	if err != nil {
		return fmt.Errorf("create dependency container: %w", err)
	}

	a.deps = deps
	a.ports = deps.ApplicationPorts()
	a.logger.Info("Application ports initialized successfully")
	return nil
}

func (a *Application) initializeUseCases(ctx context.Context) error {
	a.logger.Info("Initializing use cases...")

	cityUseCase, err := city.NewUseCase(city.UseCaseDependencies{
		Store:  a.ports.CityStore,
		Logger: a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create city use case: %w", err)
	}
	if err := cityUseCase.Load(ctx); err != nil {
		return fmt.Errorf("load saved cities: %w", err)
	}
	a.cityUseCase = cityUseCase

	dashboardUseCase, err := dashboard.NewUseCase(dashboard.UseCaseDependencies{
		Client:  a.ports.WeatherClient,
		Cities:  cityUseCase,
		Config:  a.ports.ConfigProvider,
		Logger:  a.ports.Logger,
		Metrics: a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create dashboard use case: %w", err)
	}
	a.dashboardUseCase = dashboardUseCase
	a.ports.Metrics.SetTrackedCities(len(cityUseCase.List()))

	sessionUseCase, err := session.NewUseCase(session.UseCaseDependencies{
		Tracker: dashboardUseCase,
		Logger:  a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create session use case: %w", err)
	}
	a.sessionUseCase = sessionUseCase

	refresh := a.ports.ConfigProvider.GetRefreshSettings()
	a.poller = dashboard.NewPoller(dashboardUseCase, refresh.PollInterval, a.ports.Logger)

	a.scheduler = infrastructure.NewCronScheduler(fullRefreshTimeout, a.ports.Logger)
	if refresh.FullRefreshSchedule != "" {
		if err := a.scheduler.Schedule(fullRefreshTask, refresh.FullRefreshSchedule, a.refreshAll); err != nil {
			return fmt.Errorf("schedule full refresh: %w", err)
		}
	}

	a.logger.Info("Use cases initialized successfully", "cities", len(cityUseCase.List()))
	return nil
}

func (a *Application) initializeAdapters() error {
	a.logger.Info("Initializing adapters...")

	if err := api.RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		CacheMetrics:   a.ports.CacheMetrics,
		ConfigProvider: a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config:           api.ServerConfig{Port: a.config.Server.Port},
		DashboardUseCase: a.dashboardUseCase,
		SessionUseCase:   a.sessionUseCase,
		MetricsCollector: metricsCollector,
		HealthChecker:    infrastructure.NewSystemHealthChecker(a.deps.HealthCheckers()),
		MetricsHandler:   a.deps.MetricsHandler(),
		Logger:           a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         httpAdapter.Addr(),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("Adapters initialized successfully")
	return nil
}

// Start runs the initial refresh and the background refreshers, then serves
// HTTP until Shutdown is called
func (a *Application) Start(ctx context.Context) error {
	a.logger.Info("Starting application...")

	a.StartBackground(ctx)

	a.logger.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// StartBackground loads every tracked city once and starts the poller and
// the cron scheduler
func (a *Application) StartBackground(ctx context.Context) {
	a.workers.Add(2)
	go func() {
		defer a.workers.Done()
		if err := a.refreshAll(ctx); err != nil {
			a.logger.Warn("Initial refresh incomplete", "error", err)
		}
	}()
	go func() {
		defer a.workers.Done()
		a.poller.Run(ctx)
	}()

	a.scheduler.Start()
}

func (a *Application) refreshAll(ctx context.Context) error {
	report := a.dashboardUseCase.RefreshAll(ctx)
	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d cities failed to refresh (batch %s)", failed, len(report.Results), report.BatchID)
	}
	return nil
}

// Shutdown stops the background refreshers, drains the HTTP server and
// releases adapters
func (a *Application) Shutdown(ctx context.Context) error {
	var shutdownErr error

	a.shutdownOnce.Do(func() {
		a.logger.Info("Shutting down application...")

		a.poller.Stop()
		a.scheduler.Stop()

		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.logger.Error("Error shutting down HTTP server", "error", err)
			shutdownErr = fmt.Errorf("shutdown HTTP server: %w", err)
		}

		a.workers.Wait()
		a.deps.Close()
		a.logger.Info("Application shutdown completed")
	})

	return shutdownErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// Router returns the HTTP router for testing
func (a *Application) Router() *gin.Engine {
	return a.router
}

// Dashboard returns the dashboard use case
func (a *Application) Dashboard() *dashboard.UseCase {
	return a.dashboardUseCase
}
