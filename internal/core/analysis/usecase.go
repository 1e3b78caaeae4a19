package analysis

import (
	"context"
	"strings"

	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

type UseCase struct {
	model   ports.LanguageModel
	logger  ports.Logger
	metrics ports.MetricsCollector
}

type UseCaseDependencies struct {
	LanguageModel ports.LanguageModel // optional, template only when nil
	Logger        ports.Logger
	Metrics       ports.MetricsCollector // optional
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		model:   deps.LanguageModel,
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}, nil
}

// Compose produces the analysis text for a resolved location and its climate report.
// The result carries no request ID or state; the pipeline owns those.
func (uc *UseCase) Compose(ctx context.Context, in ComposeInput) Result {
	return Result{
		AnalysisText: uc.analysisText(ctx, in),
		Coordinates:  in.Location.Coordinates,
		LocationName: in.Location.Name(),
		WeatherData:  NewWeatherData(in.Climate),
	}
}

func (uc *UseCase) analysisText(ctx context.Context, in ComposeInput) string {
	if uc.model == nil {
		return RenderTemplate(in)
	}

	completion, err := uc.model.Complete(ctx, BuildPrompt(in))
	if err != nil {
		uc.logger.Warn("Language model failed, using template analysis",
			ports.F("model", uc.model.GetModelName()),
			ports.F("error", err))
		uc.recordDegradation(ctx)
		return RenderTemplate(in)
	}
	if strings.TrimSpace(completion) == "" {
		uc.logger.Warn("Language model returned empty completion, using template analysis",
			ports.F("model", uc.model.GetModelName()))
		uc.recordDegradation(ctx)
		return RenderTemplate(in)
	}

	uc.logger.Debug("Analysis composed by language model",
		ports.F("model", uc.model.GetModelName()),
		ports.F("length", len(completion)))
	return completion
}

func (uc *UseCase) recordDegradation(ctx context.Context) {
	if uc.metrics != nil {
		uc.metrics.RecordDegradation(ctx, "language_model")
	}
}
