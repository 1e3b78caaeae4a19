package external

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"

	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

const (
	defaultLLMBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	defaultLLMModel   = "gemini-2.0-flash"
	llmSystemPrompt   = "You write concise, practical weather and outdoor-activity advice in markdown."
)

// chatGenerator is the part of an eino chat model the adapter needs
type chatGenerator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// LLMProviderAdapter implements LanguageModel port on an OpenAI-compatible chat endpoint
type LLMProviderAdapter struct {
	chat    chatGenerator
	model   string
	limiter *rate.Limiter
	logger  ports.Logger
}

// LLMProviderParams holds parameters for creating the language model adapter
type LLMProviderParams struct {
	APIKey            string
	BaseURL           string
	Model             string
	RequestsPerMinute int
	Timeout           time.Duration
	Logger            ports.Logger
}

// NewLLMProviderAdapter creates a chat model client and a request rate limiter
func NewLLMProviderAdapter(ctx context.Context, params LLMProviderParams) (*LLMProviderAdapter, error) {
	if params.APIKey == "" {
		return nil, errors.NewConfigurationError("language model api key is not configured", nil)
	}

	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultLLMBaseURL
	}
	modelName := params.Model
	if modelName == "" {
		modelName = defaultLLMModel
	}

	chat, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  params.APIKey,
		BaseURL: baseURL,
		Model:   modelName,
		Timeout: params.Timeout,
	})
	if err != nil {
		return nil, errors.NewConfigurationError("failed to initialize chat model", err)
	}

	return newLLMProviderAdapter(chat, modelName, params.RequestsPerMinute, params.Logger), nil
}

func newLLMProviderAdapter(chat chatGenerator, modelName string, requestsPerMinute int, logger ports.Logger) *LLMProviderAdapter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 15
	}

	return &LLMProviderAdapter{
		chat:    chat,
		model:   modelName,
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1),
		logger:  logger,
	}
}

// Complete sends a single prompt and returns the assistant text. There are no retries.
func (a *LLMProviderAdapter) Complete(ctx context.Context, prompt string) (string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return "", errors.NewRateLimitError("language model rate limit wait aborted", err)
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: llmSystemPrompt},
		{Role: schema.User, Content: prompt},
	}

	resp, err := a.chat.Generate(ctx, messages)
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "429") || strings.Contains(msg, "too many requests") {
			return "", errors.NewRateLimitError("language model rate limited", err)
		}
		return "", errors.NewExternalAPIError("language model request failed", err)
	}
	if resp == nil {
		return "", errors.NewExternalAPIError("language model returned no message", nil)
	}

	return resp.Content, nil
}

// GetModelName returns the configured model identifier
func (a *LLMProviderAdapter) GetModelName() string {
	return a.model
}
