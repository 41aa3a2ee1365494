package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"

	"breezy.app/internal/core/weather"
	"breezy.app/pkg/errors"
)

const (
	maxRedisDB        = 15
	maxCacheTTL       = 24 * time.Hour
	maxPortNumber     = 65535
	maxRetryAttempts  = 10
	maxConcurrency    = 64
	minPollInterval   = time.Second
	defaultSQLitePath = "breezy.db"
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Weather  WeatherConfig  `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	Refresh  RefreshConfig  `split_words:"true"`
	Log      LogConfig      `split_words:"true"`
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

// DatabaseDriver selects the GORM dialector
type DatabaseDriver string

const (
	DatabaseDriverPostgres DatabaseDriver = "postgres"
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"
)

// IsValid checks if the driver is supported
func (d DatabaseDriver) IsValid() bool {
	return d == DatabaseDriverPostgres || d == DatabaseDriverSQLite
}

type DatabaseConfig struct {
	Driver     DatabaseDriver `envconfig:"DB_DRIVER" default:"sqlite"`
	Host       string         `envconfig:"DB_HOST" default:"localhost"`
	Port       int            `envconfig:"DB_PORT" default:"5432"`
	User       string         `envconfig:"DB_USER" default:"postgres"`
	Password   string         `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string         `envconfig:"DB_NAME" default:"breezy"`
	SSLMode    string         `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string         `envconfig:"DB_SQLITE_PATH" default:"breezy.db"`
}

func (c DatabaseConfig) GetDSN() string {
	if c.Driver == DatabaseDriverSQLite {
		if c.SQLitePath == "" {
			return defaultSQLitePath
		}
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type WeatherConfig struct {
	APIKey             string        `envconfig:"OPENWEATHERMAP_API_KEY"`
	DefaultAPIKey      string        `envconfig:"OPENWEATHERMAP_DEFAULT_API_KEY"`
	BaseURL            string        `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	Units              string        `envconfig:"WEATHER_UNITS" default:"metric"`
	Timeout            time.Duration `envconfig:"WEATHER_TIMEOUT" default:"30s"`
	RetryMaxAttempts   int           `envconfig:"WEATHER_RETRY_MAX_ATTEMPTS" default:"2"`
	RetryInterval      time.Duration `envconfig:"WEATHER_RETRY_INTERVAL" default:"500ms"`
	RateLimitPerSecond float64       `envconfig:"WEATHER_RATE_LIMIT_PER_SECOND" default:"0"`
	RateLimitBurst     int           `envconfig:"WEATHER_RATE_LIMIT_BURST" default:"5"`
	EnableCache        bool          `envconfig:"WEATHER_ENABLE_CACHE" default:"false"`
	CacheTTL           time.Duration `envconfig:"WEATHER_CACHE_TTL" default:"10m"`
	EnableLogging      bool          `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath        string        `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_client.log"`
}

// ParsedUnits returns the configured unit system
func (w WeatherConfig) ParsedUnits() weather.Units {
	units, err := weather.ParseUnits(w.Units)
	if err != nil {
		return weather.UnitsMetric
	}
	return units
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"REDIS_PASSWORD" default:""`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
	KeyPrefix    string        `envconfig:"REDIS_KEY_PREFIX" default:"breezy:"`
}

type RefreshConfig struct {
	EnablePolling       bool          `envconfig:"REFRESH_ENABLE_POLLING" default:"true"`
	PollInterval        time.Duration `envconfig:"REFRESH_POLL_INTERVAL" default:"60s"`
	FullRefreshSchedule string        `envconfig:"REFRESH_FULL_SCHEDULE" default:"@every 15m"`
	Concurrency         int           `envconfig:"REFRESH_CONCURRENCY" default:"4"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Refresh.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if s.ShutdownTimeout <= 0 {
		return errors.NewConfigurationError("SERVER_SHUTDOWN_TIMEOUT must be positive", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if !d.Driver.IsValid() {
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}
	if d.Driver == DatabaseDriverSQLite {
		if strings.TrimSpace(d.SQLitePath) == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty", nil)
		}
		return nil
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

// Validate checks weather client settings. A missing API key is not an error
// here: the key may come from the credential store at startup.
func (w *WeatherConfig) Validate() error {
	if w.BaseURL == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if _, err := weather.ParseUnits(w.Units); err != nil {
		return errors.NewConfigurationError("WEATHER_UNITS must be one of: metric, imperial, standard", err)
	}
	if w.Timeout <= 0 {
		return errors.NewConfigurationError("WEATHER_TIMEOUT must be positive", nil)
	}
	if w.RetryMaxAttempts < 0 || w.RetryMaxAttempts > maxRetryAttempts {
		return errors.NewConfigurationError("WEATHER_RETRY_MAX_ATTEMPTS must be between 0 and 10", nil)
	}
	if w.RetryInterval <= 0 {
		return errors.NewConfigurationError("WEATHER_RETRY_INTERVAL must be positive", nil)
	}
	if w.RateLimitPerSecond < 0 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_PER_SECOND cannot be negative", nil)
	}
	if w.RateLimitPerSecond > 0 && w.RateLimitBurst < 1 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_BURST must be at least 1", nil)
	}
	if w.EnableCache && (w.CacheTTL <= 0 || w.CacheTTL > maxCacheTTL) {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL must be between 1ns and 24h", nil)
	}
	if w.EnableLogging && strings.TrimSpace(w.LogFilePath) == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when logging is enabled", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < time.Millisecond {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1ms", nil)
	}
	if r.ReadTimeout < time.Millisecond {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1ms", nil)
	}
	if r.WriteTimeout < time.Millisecond {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1ms", nil)
	}
	return nil
}

func (r *RefreshConfig) Validate() error {
	if r.EnablePolling && r.PollInterval < minPollInterval {
		return errors.NewConfigurationError("REFRESH_POLL_INTERVAL must be at least 1s", nil)
	}
	if r.Concurrency < 1 || r.Concurrency > maxConcurrency {
		return errors.NewConfigurationError("REFRESH_CONCURRENCY must be between 1 and 64", nil)
	}
	if strings.TrimSpace(r.FullRefreshSchedule) == "" {
		return nil
	}
	if _, err := cron.ParseStandard(r.FullRefreshSchedule); err != nil {
		return errors.NewConfigurationError(
			fmt.Sprintf("REFRESH_FULL_SCHEDULE %q is not a valid cron spec", r.FullRefreshSchedule), err)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
}
