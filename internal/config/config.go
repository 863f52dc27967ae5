// Package config loads server configuration from CALORIE_* environment
// variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/genai"
)

// Prefix is the environment variable prefix, e.g. CALORIE_PORT.
const Prefix = "CALORIE"

// Config holds the configuration for the tracker server.
type Config struct {
	// HTTP Configuration
	Port     int    `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Gemini Configuration. An empty API key disables recognition and makes
	// onboarding use the default plan.
	GeminiAPIKey     string        `envconfig:"GEMINI_API_KEY" default:""`
	GeminiBaseURL    string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	GeminiModel      string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	GeminiTimeout    time.Duration `envconfig:"GEMINI_TIMEOUT" default:"60s"`
	GeminiMaxRetries int           `envconfig:"GEMINI_MAX_RETRIES" default:"2"`
}

// New creates a Config by parsing CALORIE_* environment variables.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges. It also normalizes LogLevel to lower case.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %q", c.LogLevel)
	}

	if c.GeminiTimeout <= 0 {
		return fmt.Errorf("invalid GEMINI_TIMEOUT: %s", c.GeminiTimeout)
	}
	if c.GeminiMaxRetries < 0 {
		return fmt.Errorf("invalid GEMINI_MAX_RETRIES: %d", c.GeminiMaxRetries)
	}
	return nil
}

// Gemini returns the Gemini client settings.
func (c *Config) Gemini() genai.Config {
	return genai.Config{
		APIKey:     c.GeminiAPIKey,
		BaseURL:    c.GeminiBaseURL,
		Model:      c.GeminiModel,
		Timeout:    c.GeminiTimeout,
		MaxRetries: c.GeminiMaxRetries,
	}
}

// LogValue keeps the API key out of logs.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("port", c.Port),
		slog.String("log_level", c.LogLevel),
		slog.Bool("gemini_key_present", c.GeminiAPIKey != ""),
		slog.String("gemini_base_url", c.GeminiBaseURL),
		slog.String("gemini_model", c.GeminiModel),
		slog.Duration("gemini_timeout", c.GeminiTimeout),
		slog.Int("gemini_max_retries", c.GeminiMaxRetries),
	)
}
