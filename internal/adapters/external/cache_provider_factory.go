package external

import (
	"fmt"

	"breezy.app/internal/config"
	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

// CacheProvider is what the factory hands out: storage plus hit/miss stats
type CacheProvider interface {
	ports.CacheProvider
	ports.CacheMetrics
}

type CacheProviderFactory struct{}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{}
}

// CreateCacheProvider builds the backend selected by CACHE_TYPE
func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig) (CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCacheProvider(), nil
	case config.CacheTypeRedis:
		return NewRedisCacheProvider(&cfg.Redis)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
