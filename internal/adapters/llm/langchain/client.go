// Package langchain adapts langchaingo chat models to the LanguageModel port.
package langchain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/ports"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// placeholderToken lets keyless OpenAI-compatible gateways work; langchaingo refuses an empty token.
const placeholderToken = "placeholder"

var errNoChoices = errors.New("model returned no choices")

type Config struct {
	BaseURL string
	Model   string
	Token   string
	// Timeout bounds a single completion call. Zero disables it.
	Timeout time.Duration
}

type Client struct {
	model   llms.Model
	timeout time.Duration
	logger  *zap.Logger
}

var _ ports.LanguageModel = (*Client)(nil)

// New builds a client for an OpenAI-compatible chat completions endpoint.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	token := cfg.Token
	if token == "" {
		token = placeholderToken
	}

	opts := []openai.Option{
		openai.WithModel(cfg.Model),
		openai.WithToken(token),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}

	return NewWithModel(llm, cfg.Timeout, logger), nil
}

func NewWithModel(model llms.Model, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{model: model, timeout: timeout, logger: logger}
}

func (c *Client) Complete(ctx context.Context, prompt domain.Prompt, opts ports.CompletionOptions) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	messages := make([]llms.MessageContent, 0, 2)
	if prompt.System != "" {
		messages = append(messages, llms.TextParts(schema.ChatMessageTypeSystem, prompt.System))
	}
	messages = append(messages, llms.TextParts(schema.ChatMessageTypeHuman, prompt.User))

	callOpts := []llms.CallOption{llms.WithTemperature(opts.Temperature)}
	if opts.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(opts.MaxTokens))
	}

	started := time.Now()
	resp, err := c.model.GenerateContent(ctx, messages, callOpts...)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return "", errNoChoices
	}

	choice := resp.Choices[0]
	c.logger.Debug("completion received",
		zap.Duration("elapsed", time.Since(started)),
		zap.String("stop_reason", choice.StopReason),
		zap.Int("chars", len(choice.Content)),
	)

	return choice.Content, nil
}
