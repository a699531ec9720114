// Package config loads process configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the API binary needs. Two variable names are
// accepted for the Gemini credential; the Vite-prefixed one wins because
// local deployments share a single .env.local with the frontend.
type Config struct {
	Port string `env:"PORT" envDefault:"8000"`

	ViteGeminiAPIKey string `env:"VITE_GEMINI_API_KEY"`
	GeminiAPIKey     string `env:"GEMINI_API_KEY"`

	PreferredModels []string      `env:"PREFERRED_MODELS" envSeparator:"," envDefault:"gemini-1.5-flash,gemini-1.5-pro,gemini-pro"`
	FallbackModel   string        `env:"FALLBACK_MODEL" envDefault:"gemini-1.5-flash"`
	HistoryWindow   int           `env:"HISTORY_WINDOW" envDefault:"10"`
	CallTimeout     time.Duration `env:"AI_CALL_TIMEOUT" envDefault:"30s"`
}

// Load reads .env.local then .env (both optional) and parses the process
// environment. A missing API key is not an error here: the server starts
// with AI disabled and serves fallbacks.
func Load() (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// APIKey returns the first non-empty credential, or "" when none is set.
func (c *Config) APIKey() string {
	if c.ViteGeminiAPIKey != "" {
		return c.ViteGeminiAPIKey
	}
	return c.GeminiAPIKey
}
