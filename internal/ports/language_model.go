package ports

import "context"

// LanguageModel defines the contract for a text completion backend.
// The completion is treated as opaque markdown.
type LanguageModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
	GetModelName() string
}
