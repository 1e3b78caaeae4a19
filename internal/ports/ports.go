package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Location
	Geocoder     Geocoder
	GeocodeCache GeocodeCache

	// Climate
	HistoricalProvider HistoricalClimateProvider
	RealTimeProvider   RealTimeWeatherProvider

	// Analysis
	LanguageModel LanguageModel

	// Cache
	CacheProvider CacheProvider

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
	Health         SystemHealthChecker
}
