package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"geoclima.app/internal/core/analysis"
	"geoclima.app/internal/core/climate"
	"geoclima.app/internal/core/location"
	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

// Resolver turns a place query into coordinates
type Resolver interface {
	Resolve(ctx context.Context, query location.PlaceQuery) location.ResolvedLocation
}

// ClimateFetcher gathers climate evidence for coordinates and a date expression
type ClimateFetcher interface {
	Fetch(ctx context.Context, coords location.Coordinates, dateText string) climate.Report
}

// Composer writes the analysis for a resolved location
type Composer interface {
	Compose(ctx context.Context, in analysis.ComposeInput) analysis.Result
}

type Pipeline struct {
	resolver Resolver
	climate  ClimateFetcher
	composer Composer
	fallback location.Coordinates
	logger   ports.Logger
	metrics  ports.MetricsCollector
	clock    func() time.Time
}

type Dependencies struct {
	Resolver Resolver
	Climate  ClimateFetcher
	Composer Composer
	Fallback *location.Coordinates // defaults to location.DefaultFallback
	Logger   ports.Logger
	Metrics  ports.MetricsCollector // optional
	Clock    func() time.Time
}

func New(deps Dependencies) (*Pipeline, error) {
	if deps.Resolver == nil {
		return nil, errors.NewValidationError("resolver is required")
	}
	if deps.Climate == nil {
		return nil, errors.NewValidationError("climate fetcher is required")
	}
	if deps.Composer == nil {
		return nil, errors.NewValidationError("composer is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	fallback := location.DefaultFallback
	if deps.Fallback != nil {
		fallback = *deps.Fallback
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Pipeline{
		resolver: deps.Resolver,
		climate:  deps.Climate,
		composer: deps.Composer,
		fallback: fallback,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		clock:    clock,
	}, nil
}

// Run takes one request from Idle to NotFound or Done. It never fails: upstream
// problems surface as a not-found result or a degraded analysis.
func (p *Pipeline) Run(ctx context.Context, req Request) analysis.Result {
	started := p.clock()
	run := &runState{
		requestID: uuid.NewString(),
		state:     analysis.StateIdle,
	}

	p.advance(run, analysis.StateResolving)
	query, err := location.ParsePlaceQuery(req.Place)
	if err != nil {
		p.logger.Warn("Place rejected before resolution",
			ports.F("request_id", run.requestID),
			ports.F("error", err))
		return p.finishNotFound(ctx, run, req.Place, p.fallback, started)
	}

	resolved := p.resolver.Resolve(ctx, query)
	if !resolved.Found {
		return p.finishNotFound(ctx, run, req.Place, resolved.Coordinates, started)
	}

	p.advance(run, analysis.StateFetching)
	report := p.climate.Fetch(ctx, resolved.Coordinates, req.Date)

	p.advance(run, analysis.StateComposing)
	result := p.composer.Compose(ctx, analysis.ComposeInput{
		Location: resolved,
		DateText: req.Date,
		Plans:    req.Plans,
		Climate:  report,
	})

	p.advance(run, analysis.StateDone)
	result.RequestID = run.requestID
	result.State = run.state

	p.logger.Info("Analysis completed",
		ports.F("request_id", run.requestID),
		ports.F("location", resolved.Name()),
		ports.F("synthetic", report.Sample.Synthetic),
		ports.F("duration", p.clock().Sub(started)))
	p.recordRun(ctx, run.state, started)
	return result
}

type runState struct {
	requestID string
	state     analysis.State
}

func (p *Pipeline) advance(run *runState, next analysis.State) {
	p.logger.Debug("Pipeline state change",
		ports.F("request_id", run.requestID),
		ports.F("from", run.state.String()),
		ports.F("to", next.String()))
	run.state = next
}

func (p *Pipeline) finishNotFound(ctx context.Context, run *runState, place string, fallback location.Coordinates, started time.Time) analysis.Result {
	p.advance(run, analysis.StateNotFound)

	p.logger.Info("Location not found",
		ports.F("request_id", run.requestID),
		ports.F("place", place))
	p.recordRun(ctx, run.state, started)

	return analysis.Result{
		RequestID:    run.requestID,
		State:        run.state,
		AnalysisText: NotFoundMessage(place, fallback),
		Coordinates:  fallback,
	}
}

func (p *Pipeline) recordRun(ctx context.Context, state analysis.State, started time.Time) {
	if p.metrics != nil {
		p.metrics.RecordPipelineRun(ctx, state.String(), p.clock().Sub(started))
	}
}

// NotFoundMessage explains the fallback to the user
func NotFoundMessage(place string, fallback location.Coordinates) string {
	return fmt.Sprintf(
		"Could not find a location matching \"%s\". Showing the default location (%s) instead. "+
			"Try a more specific place name, such as a city with its region or country, or enter coordinates as \"lat, lon\".",
		place, fallback.String())
}
