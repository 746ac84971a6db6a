package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/ports"
	"go.uber.org/zap"
)

var errEmptySummary = errors.New("model returned empty guidance")

type FeedbackSummarizer struct {
	model       ports.LanguageModel
	composer    Composer
	temperature float64
	maxTokens   int
	logger      *zap.Logger
}

func NewFeedbackSummarizer(model ports.LanguageModel, temperature float64, maxTokens int, logger *zap.Logger) *FeedbackSummarizer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FeedbackSummarizer{
		model:       model,
		composer:    NewComposer(),
		temperature: temperature,
		maxTokens:   maxTokens,
		logger:      logger,
	}
}

func (s *FeedbackSummarizer) Summarize(ctx context.Context, entries []domain.FeedbackEntry, priorGuidance string) (string, error) {
	prompt := s.composer.ComposeSummary(entries, priorGuidance)

	raw, err := s.model.Complete(ctx, prompt, ports.CompletionOptions{
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrSummarizationUnavailable, err)
	}

	guidance := strings.TrimSpace(raw)
	if guidance == "" {
		return "", fmt.Errorf("%w: %w", domain.ErrSummarizationUnavailable, errEmptySummary)
	}

	if guidance == strings.TrimSpace(priorGuidance) {
		guidance = appendComments(guidance, entries)
	}

	s.logger.Info("feedback summarized", zap.Int("entries", len(entries)), zap.Int("guidance_bytes", len(guidance)))

	return guidance, nil
}

// appendComments keeps new feedback visible when the model echoes the prior guidance unchanged.
func appendComments(guidance string, entries []domain.FeedbackEntry) string {
	var b strings.Builder
	b.WriteString(guidance)
	for _, entry := range entries {
		comment := strings.TrimSpace(entry.Comment)
		if comment == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(comment)
	}

	return b.String()
}
