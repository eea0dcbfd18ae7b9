package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/mcdev12/gamestats/go/clients"
	gamestats "github.com/mcdev12/gamestats/go/clients/game_stats_client"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "GAMESTATS"

// Config holds the settings for the gamestats command.
type Config struct {
	APIKey     string  `yaml:"api_key" envconfig:"API_KEY"`
	BaseURL    string  `yaml:"base_url" envconfig:"BASE_URL"`
	APIVersion string  `yaml:"api_version" envconfig:"API_VERSION"`
	LogLevel   string  `yaml:"log_level" envconfig:"LOG_LEVEL"`
	RateLimit  float64 `yaml:"rate_limit" envconfig:"RATE_LIMIT"` // requests per second, 0 disables
	RateBurst  int     `yaml:"rate_burst" envconfig:"RATE_BURST"`
}

// Default returns the configuration used when neither file nor env set a value.
func Default() Config {
	return Config{
		BaseURL:    gamestats.BaseURL,
		APIVersion: string(clients.DefaultAPIVersion),
		LogLevel:   "info",
		RateBurst:  1,
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then GAMESTATS_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail silently in the client.
func (c Config) Validate() error {
	var errs []error
	if c.APIVersion != "" && !clients.ValidateAPIVersion(clients.APIVersion(c.APIVersion)) {
		errs = append(errs, fmt.Errorf("unknown api version %q", c.APIVersion))
	}
	if c.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("rate_limit must be >= 0, got %v", c.RateLimit))
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		errs = append(errs, fmt.Errorf("rate_burst must be >= 1, got %d", c.RateBurst))
	}
	return errors.Join(errs...)
}

// ClientOptions maps the config onto the client's options.
func (c Config) ClientOptions() gamestats.Options {
	return gamestats.Options{
		APIKey:  c.APIKey,
		BaseURL: c.BaseURL,
		Version: clients.APIVersion(c.APIVersion),
	}
}
