package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/bnema/meeting-prep-assistant/internal/adapters/llm/langchain"
	tomlrepo "github.com/bnema/meeting-prep-assistant/internal/adapters/repo/toml"
	chainstore "github.com/bnema/meeting-prep-assistant/internal/adapters/secrets/chain"
	"github.com/bnema/meeting-prep-assistant/internal/application"
	"github.com/bnema/meeting-prep-assistant/internal/config"
	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/logging"
	"github.com/bnema/meeting-prep-assistant/internal/ports"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// apiKeyEnvVars are read before any stored secret.
var apiKeyEnvVars = []string{"MPA_MODEL_API_KEY", "OPENAI_API_KEY", "DATABRICKS_TOKEN"}

type app struct {
	cfg         config.Config
	logger      *zap.Logger
	store       *tomlrepo.PreferenceRepository
	secretStore ports.SecretStore
	model       ports.LanguageModel
	preferences *application.PreferenceService
	now         func() time.Time
}

func (a *app) wire(cmd *cobra.Command, settings *viper.Viper, configFile string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(settings, configFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	store, err := tomlrepo.NewPreferenceRepository(settings)
	if err != nil {
		return fmt.Errorf("wire preference store: %w", err)
	}

	secretStore, err := chainstore.NewDefault(map[string][]string{cfg.Model.APIKeyRef: apiKeyEnvVars}, cfg.Secrets.Dir)
	if err != nil {
		return fmt.Errorf("wire secret store chain: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.store = store
	a.secretStore = secretStore
	a.now = time.Now
	a.model = &lazyModel{build: func(ctx context.Context) (ports.LanguageModel, error) {
		return newLanguageModel(ctx, cfg.Model, secretStore, logger)
	}}
	a.preferences = application.NewPreferenceService(store, a.newSummarizer(a.model), ports.SystemClock{}, logger)

	logger.Debug("configuration loaded",
		zap.String("config_file", cfg.File),
		zap.String("store", store.Path()),
		zap.String("endpoint", cfg.Model.Endpoint),
	)

	return nil
}

func (a *app) newGenerator(model ports.LanguageModel) *application.TaskGenerator {
	return application.NewTaskGenerator(model, application.GeneratorOptions{
		Temperature: a.cfg.Model.Temperature,
		MaxTokens:   a.cfg.Model.MaxTokens,
	}, a.logger)
}

func (a *app) newSummarizer(model ports.LanguageModel) *application.FeedbackSummarizer {
	return application.NewFeedbackSummarizer(model, a.cfg.Model.SummaryTemperature, a.cfg.Model.MaxTokens, a.logger)
}

func newLanguageModel(ctx context.Context, cfg config.ModelConfig, secrets ports.SecretStore, logger *zap.Logger) (ports.LanguageModel, error) {
	token, err := secrets.Get(ctx, cfg.APIKeyRef)
	if err != nil {
		if !errors.Is(err, domain.ErrSecretNotFound) {
			return nil, fmt.Errorf("resolve model api key: %w", err)
		}
		logger.Warn("no model api key configured", zap.String("secret_key", cfg.APIKeyRef))
		token = ""
	}

	client, err := langchain.New(langchain.Config{
		BaseURL: cfg.BaseURL,
		Model:   cfg.Endpoint,
		Token:   token,
		Timeout: cfg.Timeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("wire language model: %w", err)
	}

	return client, nil
}

// lazyModel defers secret lookup and client setup to the first completion.
type lazyModel struct {
	build func(context.Context) (ports.LanguageModel, error)

	once  sync.Once
	model ports.LanguageModel
	err   error
}

func (m *lazyModel) Complete(ctx context.Context, prompt domain.Prompt, opts ports.CompletionOptions) (string, error) {
	m.once.Do(func() {
		m.model, m.err = m.build(ctx)
	})
	if m.err != nil {
		return "", m.err
	}

	return m.model.Complete(ctx, prompt, opts)
}
