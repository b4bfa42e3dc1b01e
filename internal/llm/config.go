package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and configures the provider that writes lesson content.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter"
	// or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	// Timeout bounds a single request. Requests are never retried; the
	// lesson engine falls back to built-in passages instead.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // OpenAI-compatible endpoint, if not api.openai.com
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// DefaultConfig picks small, fast models. Session passages are a few
// short lines and an outline is a handful of objectives.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Timeout:    30 * time.Second,
	}
}

// ConfigFromEnv reads KEYPALS_* variables over DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	vars := []struct {
		key string
		dst *string
	}{
		{"KEYPALS_LLM_PROVIDER", &cfg.Provider},
		{"KEYPALS_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{"KEYPALS_ANTHROPIC_MODEL", &cfg.Anthropic.Model},
		{"KEYPALS_ANTHROPIC_BASE_URL", &cfg.Anthropic.BaseURL},
		{"KEYPALS_OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{"KEYPALS_OPENAI_MODEL", &cfg.OpenAI.Model},
		{"KEYPALS_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL},
		{"KEYPALS_GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{"KEYPALS_GEMINI_MODEL", &cfg.Gemini.Model},
		{"KEYPALS_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
		{"KEYPALS_OPENROUTER_MODEL", &cfg.OpenRouter.Model},
		{"KEYPALS_OPENROUTER_BASE_URL", &cfg.OpenRouter.BaseURL},
	}
	for _, v := range vars {
		if s := os.Getenv(v.key); s != "" {
			*v.dst = s
		}
	}

	if t := os.Getenv("KEYPALS_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// DiscoverConfig looks for the vendors' own API key variables, in the order
// Gemini, OpenAI, Anthropic, OpenRouter, and selects the first one set.
// It reports false when none is.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	switch {
	case os.Getenv("GEMINI_API_KEY") != "":
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case os.Getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	default:
		return Config{}, false
	}
	return cfg, true
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case "anthropic":
		key = c.Anthropic.APIKey
	case "openai":
		key = c.OpenAI.APIKey
	case "gemini":
		key = c.Gemini.APIKey
	case "openrouter":
		key = c.OpenRouter.APIKey
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("KEYPALS_%s_API_KEY is required for the %s provider", strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
