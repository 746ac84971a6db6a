package application

import (
	"context"
	"fmt"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/ports"
	"go.uber.org/zap"
)

const DefaultTemperature = 0.0

type GeneratorOptions struct {
	Temperature float64
	MaxTokens   int
}

type TaskGenerator struct {
	model  ports.LanguageModel
	opts   GeneratorOptions
	logger *zap.Logger
}

func NewTaskGenerator(model ports.LanguageModel, opts GeneratorOptions, logger *zap.Logger) *TaskGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TaskGenerator{model: model, opts: opts, logger: logger}
}

// Generate returns ErrGenerationUnavailable when the model call fails and
// ErrGenerationMalformed when the reply holds no recognizable task.
func (g *TaskGenerator) Generate(ctx context.Context, prompt domain.Prompt, iteration int) (domain.TaskDraft, error) {
	raw, err := g.model.Complete(ctx, prompt, ports.CompletionOptions{
		Temperature: g.opts.Temperature,
		MaxTokens:   g.opts.MaxTokens,
	})
	if err != nil {
		g.logger.Warn("task generation call failed", zap.Int("iteration", iteration), zap.Error(err))
		return domain.TaskDraft{}, fmt.Errorf("%w: %w", domain.ErrGenerationUnavailable, err)
	}

	title, tasks, ok := ParseTaskDraft(raw)
	if !ok {
		g.logger.Warn("task generation returned no tasks", zap.Int("iteration", iteration), zap.Int("response_bytes", len(raw)))
		return domain.TaskDraft{}, fmt.Errorf("%w: no task items in %d-byte response", domain.ErrGenerationMalformed, len(raw))
	}

	g.logger.Debug("task draft generated", zap.Int("iteration", iteration), zap.Int("tasks", len(tasks)))

	return domain.TaskDraft{
		Title:     title,
		Tasks:     tasks,
		Iteration: iteration,
		Prompt:    prompt,
	}, nil
}
