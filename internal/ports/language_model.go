package ports

import (
	"context"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
)

type CompletionOptions struct {
	Temperature float64
	MaxTokens   int
}

// LanguageModel returns the raw completion text. Any returned error is a transport failure.
type LanguageModel interface {
	Complete(ctx context.Context, prompt domain.Prompt, opts CompletionOptions) (string, error)
}
