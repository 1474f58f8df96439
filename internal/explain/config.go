package explain

import (
	"os"
	"time"
)

// Config holds explanation provider configuration.
type Config struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.

	Retry RetryConfig

	// Timeout is the maximum duration for a single request. Default: 30s.
	Timeout time.Duration
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults and no API key.
func DefaultConfig() Config {
	return Config{
		Model: "gpt-4o-mini",
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables. The dedicated
// EXAMTRAINER_OPENAI_API_KEY wins over the conventional OPENAI_API_KEY.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if k := os.Getenv("EXAMTRAINER_OPENAI_API_KEY"); k != "" {
		cfg.APIKey = k
	} else if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if m := os.Getenv("EXAMTRAINER_OPENAI_MODEL"); m != "" {
		cfg.Model = m
	}
	if u := os.Getenv("EXAMTRAINER_OPENAI_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}

	return cfg
}

// Enabled reports whether explanations can be requested at all.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}
