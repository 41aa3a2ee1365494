package ports

import "context"

// Component health states reported by the health endpoint
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
	HealthStatusDisabled  = "disabled"
)

// HealthChecker probes one backing component: the database, the response
// cache or the OpenWeatherMap client configuration. Checks never spend API quota.
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

// HealthStatus is one component's entry in the health report
type HealthStatus struct {
	Component string                 `json:"component"`
	Status    string                 `json:"status"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// SystemHealthChecker runs every component check and keys the results by component
type SystemHealthChecker interface {
	CheckAll(ctx context.Context) map[string]HealthStatus
}
