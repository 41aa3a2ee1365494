package external

import (
	"context"
	"sync"
	"time"

	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

// MemoryCacheProvider is a process-local CacheProvider with per-key expiry.
// Expired entries are dropped when they are next read.
type MemoryCacheProvider struct {
	mu      sync.RWMutex
	entries map[string]memoryCacheEntry
	now     func() time.Time
	stats   hitCounter
}

type memoryCacheEntry struct {
	value     []byte
	expiresAt time.Time
}

func NewMemoryCacheProvider() *MemoryCacheProvider {
	return &MemoryCacheProvider{
		entries: make(map[string]memoryCacheEntry),
		now:     time.Now,
	}
}

func (c *MemoryCacheProvider) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.expired(entry) {
		if ok {
			c.evict(key, entry)
		}
		c.stats.miss()
		return nil, errors.NewNotFoundError("cache miss")
	}

	c.stats.hit()
	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, nil
}

func (c *MemoryCacheProvider) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	c.entries[key] = memoryCacheEntry{value: stored, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCacheProvider) Delete(_ context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCacheProvider) Exists(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	return ok && !c.expired(entry), nil
}

func (c *MemoryCacheProvider) Clear(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]memoryCacheEntry)
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryCacheProvider) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	return c.stats.snapshot()
}

func (c *MemoryCacheProvider) expired(entry memoryCacheEntry) bool {
	return !c.now().Before(entry.expiresAt)
}

// evict removes key unless it was rewritten since it was read
func (c *MemoryCacheProvider) evict(key string, seen memoryCacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if current, ok := c.entries[key]; ok && current.expiresAt.Equal(seen.expiresAt) {
		delete(c.entries, key)
	}
}

var (
	_ ports.CacheProvider = (*MemoryCacheProvider)(nil)
	_ ports.CacheMetrics  = (*MemoryCacheProvider)(nil)
)
