package climate

import (
	"context"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"geoclima.app/internal/core/location"
	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

type UseCase struct {
	historical ports.HistoricalClimateProvider
	realTime   ports.RealTimeWeatherProvider
	logger     ports.Logger
	metrics    ports.MetricsCollector
	clock      func() time.Time

	randMu sync.Mutex
	rand   *rand.Rand
}

type UseCaseDependencies struct {
	Historical ports.HistoricalClimateProvider
	RealTime   ports.RealTimeWeatherProvider // optional
	Logger     ports.Logger
	Metrics    ports.MetricsCollector // optional
	Clock      func() time.Time       // defaults to time.Now
	Rand       *rand.Rand             // source for placeholder probabilities
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Historical == nil {
		return nil, errors.NewValidationError("historical climate provider is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	rng := deps.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	return &UseCase{
		historical: deps.Historical,
		realTime:   deps.RealTime,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		clock:      clock,
		rand:       rng,
	}, nil
}

// Fetch gathers the historical window and current conditions for a location.
// Upstream failures degrade the report, they are never returned.
func (uc *UseCase) Fetch(ctx context.Context, coords location.Coordinates, dateText string) Report {
	dateRange := ParseDateRange(dateText)
	if dateRange.MonthDefaulted || dateRange.DaysDefaulted {
		uc.logger.Debug("Date text partially unrecognized, using defaults",
			ports.F("date_text", dateText),
			ports.F("range", dateRange.String()))
	}

	start, end := dateRange.HistoricalWindow(uc.clock())

	var (
		records    []ports.DailyClimateRecord
		historyErr error
		current    *ports.CurrentConditions
		currentErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		records, historyErr = uc.historical.GetDailyRecords(ctx, coords.Latitude, coords.Longitude, start, end)
		return nil
	})
	if uc.realTime != nil {
		g.Go(func() error {
			current, currentErr = uc.realTime.GetCurrentConditions(ctx, coords.Latitude, coords.Longitude)
			return nil
		})
	}
	_ = g.Wait()

	report := Report{
		Range:       dateRange,
		WindowStart: start,
		WindowEnd:   end,
	}

	if historyErr != nil {
		uc.logger.Warn("Historical climate unavailable, substituting synthetic sample",
			ports.F("provider", uc.historical.GetProviderName()),
			ports.F("window_start", start.Format(time.DateOnly)),
			ports.F("window_end", end.Format(time.DateOnly)),
			ports.F("error", historyErr))
		uc.recordDegradation(ctx, "historical")
		uc.fillSynthetic(&report)
	} else {
		report.Sample = Sample{
			Days:   toReadings(records),
			Source: uc.historical.GetProviderName(),
		}
		report.Risks = ComputeRisks(report.Sample.Days)
		report.Trend = ComputeTrend(report.Sample.Days)
		report.Summary = Summarize(report.Sample.Days)
		report.Comfort = ComputeComfort(report.Summary)
	}

	switch {
	case currentErr != nil:
		uc.logger.Warn("Real-time conditions unavailable",
			ports.F("provider", uc.realTime.GetProviderName()),
			ports.F("error", currentErr))
		uc.recordDegradation(ctx, "realtime")
	case current != nil:
		report.RealTime = &RealTimeConditions{
			Temperature: current.Temperature,
			Humidity:    current.Humidity,
			WindSpeed:   current.WindSpeed,
			Description: current.Description,
			ObservedAt:  current.Timestamp,
		}
	}

	uc.logger.Debug("Climate report assembled",
		ports.F("days", report.Sample.TotalDays()),
		ports.F("synthetic", report.Sample.Synthetic),
		ports.F("real_time", report.RealTime != nil))
	return report
}

func (uc *UseCase) fillSynthetic(report *Report) {
	uc.randMu.Lock()
	heat := uc.rand.Float64() * syntheticHeatCeiling
	rain := uc.rand.Float64() * syntheticRainCeiling
	wind := uc.rand.Float64() * syntheticWindCeiling
	trend := uc.rand.Float64() * syntheticTrendCeiling
	uc.randMu.Unlock()

	report.Sample = Sample{Days: []DailyReading{}, Source: SourceSynthetic, Synthetic: true}
	report.Risks = RiskProbabilities{ExtremeHeat: heat, HeavyRain: rain, HighWinds: wind}
	report.Trend = TrendSummary{TempChangePercent: round2(trend), Available: true}
	report.Summary = DataSummary{}
	report.Comfort = ComfortIndex{}
}

func (uc *UseCase) recordDegradation(ctx context.Context, stage string) {
	if uc.metrics != nil {
		uc.metrics.RecordDegradation(ctx, stage)
	}
}

func toReadings(records []ports.DailyClimateRecord) []DailyReading {
	days := make([]DailyReading, 0, len(records))
	for _, r := range records {
		days = append(days, DailyReading{
			Date:            r.Date,
			TemperatureC:    r.TemperatureC,
			HumidityPct:     r.HumidityPct,
			WindSpeedMS:     r.WindSpeedMS,
			PrecipitationMM: r.PrecipitationMM,
		})
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days
}
