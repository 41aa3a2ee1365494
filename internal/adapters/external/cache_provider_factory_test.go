package external

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breezy.app/internal/config"
	"breezy.app/pkg/errors"
)

func TestCacheProviderFactory_CreateCacheProvider(t *testing.T) {
	factory := NewCacheProviderFactory()
	server := miniredis.RunT(t)

	tests := []struct {
		name         string
		config       *config.CacheConfig
		expectedType string
		errorCheck   func(error) bool
	}{
		{
			name:       "NilConfig",
			config:     nil,
			errorCheck: errors.IsConfigurationError,
		},
		{
			name:         "MemoryCache",
			config:       &config.CacheConfig{Type: config.CacheTypeMemory},
			expectedType: "*external.MemoryCacheProvider",
		},
		{
			name: "RedisCache",
			config: &config.CacheConfig{
				Type:  config.CacheTypeRedis,
				Redis: config.RedisConfig{Addr: server.Addr(), DialTimeout: time.Second, ReadTimeout: time.Second, WriteTimeout: time.Second},
			},
			expectedType: "*external.RedisCacheProvider",
		},
		{
			name: "RedisUnreachable",
			config: &config.CacheConfig{
				Type:  config.CacheTypeRedis,
				Redis: config.RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, ReadTimeout: time.Second, WriteTimeout: time.Second},
			},
			errorCheck: errors.IsCacheError,
		},
		{
			name:       "UnknownType",
			config:     &config.CacheConfig{Type: config.CacheTypeUnknown},
			errorCheck: errors.IsConfigurationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := factory.CreateCacheProvider(tt.config)

			if tt.errorCheck != nil {
				assert.Nil(t, provider)
				assert.True(t, tt.errorCheck(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedType, typeName(provider))
		})
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *MemoryCacheProvider:
		return "*external.MemoryCacheProvider"
	case *RedisCacheProvider:
		return "*external.RedisCacheProvider"
	default:
		return "unknown"
	}
}
