package infrastructure

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"breezy.app/internal/ports"
)

// SystemHealthChecker runs all component checks concurrently
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
}

// NewSystemHealthChecker creates a system health checker. Nil checkers are skipped.
func NewSystemHealthChecker(checkers map[string]ports.HealthChecker) *SystemHealthChecker {
	active := make(map[string]ports.HealthChecker, len(checkers))
	for name, checker := range checkers {
		if checker != nil {
			active[name] = checker
		}
	}
	return &SystemHealthChecker{checkers: active}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	var (
		mu      sync.Mutex
		results = make(map[string]ports.HealthStatus, len(s.checkers))
		group   errgroup.Group
	)

	for name, checker := range s.checkers {
		group.Go(func() error {
			status := checker.Check(ctx)
			mu.Lock()
			results[name] = status
			mu.Unlock()
			return nil
		})
	}
	_ = group.Wait()

	return results
}

// Healthy reports whether no component is unhealthy
func Healthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status == ports.HealthStatusUnhealthy {
			return false
		}
	}
	return true
}
