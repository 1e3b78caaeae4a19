package app

import (
	"context"
	"fmt"

	"geoclima.app/internal/config"
	"geoclima.app/internal/core/analysis"
	"geoclima.app/internal/core/climate"
	"geoclima.app/internal/core/location"
	"geoclima.app/internal/core/pipeline"
	"geoclima.app/internal/ports"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	locationUseCase *location.UseCase
	climateUseCase  *climate.UseCase
	analysisUseCase *analysis.UseCase
	pipeline        *pipeline.Pipeline

	ports *ports.ApplicationPorts
}

// NewApplication loads configuration from the environment and wires every upstream
func NewApplication(ctx context.Context) (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(ctx, cfg, DependencyOverrides{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application over an existing container
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	a := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := a.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	return a, nil
}

func (a *Application) initializeUseCases() error {
	a.ports.Logger.Debug("Initializing use cases")

	locationUseCase, err := location.NewUseCase(location.UseCaseDependencies{
		Geocoder: a.ports.Geocoder,
		Cache:    a.ports.GeocodeCache,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create location use case: %w", err)
	}
	a.locationUseCase = locationUseCase

	climateUseCase, err := climate.NewUseCase(climate.UseCaseDependencies{
		Historical: a.ports.HistoricalProvider,
		RealTime:   a.ports.RealTimeProvider,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create climate use case: %w", err)
	}
	a.climateUseCase = climateUseCase

	analysisUseCase, err := analysis.NewUseCase(analysis.UseCaseDependencies{
		LanguageModel: a.ports.LanguageModel,
		Logger:        a.ports.Logger,
		Metrics:       a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create analysis use case: %w", err)
	}
	a.analysisUseCase = analysisUseCase

	geocoding := a.ports.ConfigProvider.GetGeocodingConfig()
	fallback := location.Coordinates{
		Latitude:  geocoding.FallbackLatitude,
		Longitude: geocoding.FallbackLongitude,
	}

	p, err := pipeline.New(pipeline.Dependencies{
		Resolver: a.locationUseCase,
		Climate:  a.climateUseCase,
		Composer: a.analysisUseCase,
		Fallback: &fallback,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}
	a.pipeline = p

	return nil
}

// Analyze validates the request and runs it through the pipeline. Only invalid input returns an error.
func (a *Application) Analyze(ctx context.Context, req pipeline.Request) (analysis.Result, error) {
	if err := req.Validate(); err != nil {
		return analysis.Result{}, err
	}
	return a.pipeline.Run(ctx, req), nil
}

// Health runs every component health check
func (a *Application) Health(ctx context.Context) map[string]ports.HealthStatus {
	return a.ports.Health.CheckAll(ctx)
}

// WriteMetrics dumps the metrics registry when a textfile path is configured
func (a *Application) WriteMetrics() error {
	path := a.config.Metrics.TextfilePath
	if path == "" {
		return nil
	}
	if err := a.deps.Metrics().WriteToTextfile(path); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	a.ports.Logger.Debug("Metrics written", ports.F("path", path))
	return nil
}

// Shutdown flushes metrics and releases network resources
func (a *Application) Shutdown(ctx context.Context) error {
	a.ports.Logger.Debug("Shutting down application")

	metricsErr := a.WriteMetrics()
	if metricsErr != nil {
		a.ports.Logger.Warn("Failed to write metrics", ports.F("error", metricsErr.Error()))
	}

	if err := a.deps.Cleanup(); err != nil {
		a.ports.Logger.Error("Error releasing resources", ports.F("error", err.Error()))
		return fmt.Errorf("cleanup dependencies: %w", err)
	}

	return metricsErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// Ports returns the wired ports
func (a *Application) Ports() *ports.ApplicationPorts {
	return a.ports
}
