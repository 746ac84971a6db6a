// Package config resolves mpa settings from defaults, the config file and MPA_* variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/logging"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "MPA"
	configName = "config"
	configType = "toml"
	configDir  = ".config/mpa"
	stateDir   = ".local/state/mpa"
	dataDir    = ".local/share/mpa"

	ProviderOpenAI = "openai"
)

const (
	KeyModelProvider           = "model.provider"
	KeyModelEndpoint           = "model.endpoint"
	KeyModelBaseURL            = "model.base_url"
	KeyModelTemperature        = "model.temperature"
	KeyModelSummaryTemperature = "model.summary_temperature"
	KeyModelMaxTokens          = "model.max_tokens"
	KeyModelTimeout            = "model.timeout"
	KeyModelAPIKeyRef          = "model.api_key_ref"
	KeyLoopMaxIterations       = "loop.max_iterations"
	KeyLoopSummaryThreshold    = "loop.summary_threshold"
	KeyStorePath               = "store.path"
	KeySecretsDir              = "secrets.dir"
	KeyLogLevel                = "log.level"
	KeyLogFormat               = "log.format"
)

type Config struct {
	Model   ModelConfig
	Loop    LoopConfig
	Store   StoreConfig
	Secrets SecretsConfig
	Log     logging.Config
	// File is the config file that was read, empty when defaults and env were enough.
	File string
}

type ModelConfig struct {
	Provider           string
	Endpoint           string
	BaseURL            string
	Temperature        float64
	SummaryTemperature float64
	MaxTokens          int
	Timeout            time.Duration
	APIKeyRef          string
}

type LoopConfig struct {
	MaxIterations    int
	SummaryThreshold int
}

type StoreConfig struct {
	Path string
}

type SecretsConfig struct {
	Dir string
}

// Load reads configFile when given, otherwise ~/.config/mpa/config.toml if it exists.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	SetDefaults(v, homeDir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Join(homeDir, configDir))
		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	cfg := Config{
		Model: ModelConfig{
			Provider:           strings.ToLower(strings.TrimSpace(v.GetString(KeyModelProvider))),
			Endpoint:           strings.TrimSpace(v.GetString(KeyModelEndpoint)),
			BaseURL:            strings.TrimSpace(v.GetString(KeyModelBaseURL)),
			Temperature:        v.GetFloat64(KeyModelTemperature),
			SummaryTemperature: v.GetFloat64(KeyModelSummaryTemperature),
			MaxTokens:          v.GetInt(KeyModelMaxTokens),
			Timeout:            v.GetDuration(KeyModelTimeout),
			APIKeyRef:          strings.TrimSpace(v.GetString(KeyModelAPIKeyRef)),
		},
		Loop: LoopConfig{
			MaxIterations:    v.GetInt(KeyLoopMaxIterations),
			SummaryThreshold: v.GetInt(KeyLoopSummaryThreshold),
		},
		Store:   StoreConfig{Path: expandHome(v.GetString(KeyStorePath), homeDir)},
		Secrets: SecretsConfig{Dir: expandHome(v.GetString(KeySecretsDir), homeDir)},
		Log: logging.Config{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		File: v.ConfigFileUsed(),
	}
	// Adapters that read viper directly see the expanded path.
	v.Set(KeyStorePath, cfg.Store.Path)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func SetDefaults(v *viper.Viper, homeDir string) {
	v.SetDefault(KeyModelProvider, ProviderOpenAI)
	v.SetDefault(KeyModelEndpoint, "databricks-dbrx-instruct")
	v.SetDefault(KeyModelBaseURL, "")
	v.SetDefault(KeyModelTemperature, 0.0)
	v.SetDefault(KeyModelSummaryTemperature, 0.0)
	v.SetDefault(KeyModelMaxTokens, 0)
	v.SetDefault(KeyModelTimeout, 60*time.Second)
	v.SetDefault(KeyModelAPIKeyRef, "mpa/model/api_key")
	v.SetDefault(KeyLoopMaxIterations, 3)
	v.SetDefault(KeyLoopSummaryThreshold, 2)
	v.SetDefault(KeyStorePath, filepath.Join(homeDir, stateDir, "preferences.toml"))
	v.SetDefault(KeySecretsDir, filepath.Join(homeDir, dataDir, "secrets"))
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, logging.FormatConsole)
}

func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", domain.ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if c.Model.Provider != ProviderOpenAI {
		invalid("%s %q is not supported (want %q)", KeyModelProvider, c.Model.Provider, ProviderOpenAI)
	}
	if c.Model.Endpoint == "" {
		invalid("%s is empty", KeyModelEndpoint)
	}
	if c.Model.Temperature < 0 || c.Model.Temperature > 1 {
		invalid("%s must be within [0, 1], got %v", KeyModelTemperature, c.Model.Temperature)
	}
	if c.Model.SummaryTemperature < 0 || c.Model.SummaryTemperature > 1 {
		invalid("%s must be within [0, 1], got %v", KeyModelSummaryTemperature, c.Model.SummaryTemperature)
	}
	if c.Model.MaxTokens < 0 {
		invalid("%s must be >= 0, got %d", KeyModelMaxTokens, c.Model.MaxTokens)
	}
	if c.Model.Timeout < 0 {
		invalid("%s must be >= 0, got %s", KeyModelTimeout, c.Model.Timeout)
	}
	if c.Model.APIKeyRef == "" {
		invalid("%s is empty", KeyModelAPIKeyRef)
	}
	if c.Loop.MaxIterations < 0 {
		invalid("%s must be >= 0, got %d", KeyLoopMaxIterations, c.Loop.MaxIterations)
	}
	if c.Loop.SummaryThreshold < 1 {
		invalid("%s must be >= 1, got %d", KeyLoopSummaryThreshold, c.Loop.SummaryThreshold)
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		invalid("%s is empty", KeyStorePath)
	}
	if strings.TrimSpace(c.Secrets.Dir) == "" {
		invalid("%s is empty", KeySecretsDir)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		invalid("%s: %v", KeyLogLevel, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		invalid("%s %q is not supported", KeyLogFormat, c.Log.Format)
	}

	return errors.Join(errs...)
}

func expandHome(path, homeDir string) string {
	path = strings.TrimSpace(path)
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
