// Package config loads server configuration from environment variables.
// The chat API key is deliberately config-only: credentials never ship in
// source or client-distributed assets.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port   int    `env:"PORT" envDefault:"8080"`
	DBPath string `env:"SQLITE_DB_PATH" envDefault:"./hariyo.db"`

	CacheDir      string   `env:"CACHE_DIR" envDefault:"./asset-cache"`
	CacheVersion  string   `env:"CACHE_VERSION" envDefault:"hariyo-v1"`
	CacheManifest []string `env:"CACHE_MANIFEST" envSeparator:","`
	AssetOrigin   string   `env:"ASSET_ORIGIN"`

	// Chat is disabled when the URL is unset.
	ChatAPIURL          string  `env:"CHAT_API_URL"`
	ChatAPIKey          string  `env:"CHAT_API_KEY"`
	ChatModel           string  `env:"CHAT_MODEL" envDefault:"gpt-4o-mini"`
	ChatMaxOutputTokens int     `env:"CHAT_MAX_OUTPUT_TOKENS" envDefault:"512"`
	ChatTemperature     float64 `env:"CHAT_TEMPERATURE" envDefault:"0.7"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
