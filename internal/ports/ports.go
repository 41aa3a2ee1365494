package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherClient WeatherClient

	// Storage
	CityStore       CityStore
	CredentialStore CredentialStore

	// Cache
	CacheProvider CacheProvider
	CacheMetrics  CacheMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsRecorder
}
