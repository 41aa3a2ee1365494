package infrastructure

import (
	"context"

	"gorm.io/gorm"

	"breezy.app/internal/ports"
)

// DatabaseHealthChecker implements database health checking
type DatabaseHealthChecker struct {
	db *gorm.DB
}

// NewDatabaseHealthChecker creates a new database health checker
func NewDatabaseHealthChecker(db *gorm.DB) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db}
}

// Check verifies database connectivity
func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Details:   make(map[string]interface{}),
	}

	if d.db == nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "database instance is nil"
		return status
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "failed to get underlying database connection"
		return status
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = ports.HealthStatusHealthy
	status.Details["dialect"] = d.db.Dialector.Name()
	status.Details["open_connections"] = sqlDB.Stats().OpenConnections
	return status
}

// Pinger is implemented by cache backends that hold a connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker reports cache reachability and hit statistics
type CacheHealthChecker struct {
	cache   ports.CacheMetrics
	enabled bool
}

// NewCacheHealthChecker creates a cache health checker; cache may be nil
// when caching is disabled
func NewCacheHealthChecker(cache ports.CacheMetrics, enabled bool) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache, enabled: enabled && cache != nil}
}

// Check pings the cache when it supports it
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    ports.HealthStatusDisabled,
		Details:   make(map[string]interface{}),
	}
	if !c.enabled {
		return status
	}

	if pinger, ok := c.cache.(Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = ports.HealthStatusUnhealthy
			status.Error = err.Error()
			return status
		}
	}

	stats := c.cache.GetStats()
	status.Status = ports.HealthStatusHealthy
	status.Details["hits"] = stats.Hits
	status.Details["misses"] = stats.Misses
	status.Details["hit_ratio"] = stats.HitRatio
	return status
}

// WeatherClientHealthChecker reports how the weather client is configured.
// It never calls the upstream API so health probes do not spend quota.
type WeatherClientHealthChecker struct {
	client    ports.WeatherClient
	keySource string
	baseURL   string
}

// NewWeatherClientHealthChecker creates a weather client health checker
func NewWeatherClientHealthChecker(client ports.WeatherClient, baseURL, keySource string) *WeatherClientHealthChecker {
	return &WeatherClientHealthChecker{client: client, baseURL: baseURL, keySource: keySource}
}

// Check verifies the client has been constructed
func (w *WeatherClientHealthChecker) Check(_ context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    ports.HealthStatusHealthy,
		Details: map[string]interface{}{
			"base_url":   w.baseURL,
			"key_source": w.keySource,
		},
	}

	if w.client == nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "weather client is not available"
	}
	return status
}
