package external

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/go-redis/redis/v8"

	"breezy.app/internal/config"
	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

const (
	redisConnectTimeout = 5 * time.Second
	redisScanBatch      = 100
)

// RedisCacheProvider implements the CacheProvider port on Redis. All keys are
// namespaced with the configured prefix so Clear never touches foreign data.
type RedisCacheProvider struct {
	client *redis.Client
	prefix string
	stats  hitCounter
}

// NewRedisCacheProvider connects to Redis and verifies the connection
func NewRedisCacheProvider(cfg *config.RedisConfig) (*RedisCacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewCacheError("failed to connect to Redis", err)
	}

	return &RedisCacheProvider{
		client: client,
		prefix: cfg.KeyPrefix,
	}, nil
}

func (r *RedisCacheProvider) key(key string) string {
	return r.prefix + key
}

// Get retrieves a value from Redis
func (r *RedisCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			r.stats.miss()
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewCacheError("redis get operation failed", err)
	}

	r.stats.hit()
	return val, nil
}

// Set stores a value with TTL
func (r *RedisCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return errors.NewCacheError("redis set operation failed", err)
	}
	return nil
}

// Delete removes a value
func (r *RedisCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return errors.NewCacheError("redis delete operation failed", err)
	}
	return nil
}

// Exists checks if a key is present
func (r *RedisCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	count, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, errors.NewCacheError("redis exists operation failed", err)
	}
	return count > 0, nil
}

// Clear removes every key under the provider's prefix
func (r *RedisCacheProvider) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", redisScanBatch).Iterator()

	batch := make([]string, 0, redisScanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == redisScanBatch {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return errors.NewCacheError("redis clear operation failed", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.NewCacheError("redis scan failed", err)
	}
	if len(batch) > 0 {
		if err := r.client.Del(ctx, batch...).Err(); err != nil {
			return errors.NewCacheError("redis clear operation failed", err)
		}
	}
	return nil
}

// GetStats returns hit/miss counters
func (r *RedisCacheProvider) GetStats() ports.CacheStats {
	return r.stats.snapshot()
}

// Ping checks if the Redis connection is alive
func (r *RedisCacheProvider) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewCacheError("redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisCacheProvider) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewCacheError("failed to close Redis connection", err)
	}
	return nil
}

var (
	_ ports.CacheProvider = (*RedisCacheProvider)(nil)
	_ ports.CacheMetrics  = (*RedisCacheProvider)(nil)
)
