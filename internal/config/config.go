// Package config loads the server configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	StoreBolt   = "bolt"
	StoreSQLite = "sqlite"
)

// Config holds the server settings.
type Config struct {
	Addr       string `env:"TAL3A_ADDR" envDefault:":8080"`
	Store      string `env:"TAL3A_STORE" envDefault:"bolt"`
	DBPath     string `env:"TAL3A_DB_PATH" envDefault:"./data/tal3a.db"`
	GroupsPath string `env:"TAL3A_GROUPS_PATH" envDefault:"./data/groups.yaml"`
	JWTSecret  string `env:"TAL3A_JWT_SECRET,required,notEmpty"`

	// CORSOrigins lists the browser origins allowed to call the API.
	CORSOrigins []string `env:"TAL3A_CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// Requests per minute allowed for each caller, and the burst on top.
	RateLimitRPM   int `env:"TAL3A_RATE_LIMIT_RPM" envDefault:"600"`
	RateLimitBurst int `env:"TAL3A_RATE_LIMIT_BURST" envDefault:"60"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the env tags cannot express.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreBolt, StoreSQLite:
	default:
		return fmt.Errorf("TAL3A_STORE must be %q or %q, got %q", StoreBolt, StoreSQLite, c.Store)
	}
	if c.DBPath == "" {
		return fmt.Errorf("TAL3A_DB_PATH is required")
	}
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("TAL3A_JWT_SECRET must be at least 16 characters")
	}
	if c.RateLimitRPM < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit settings cannot be negative")
	}
	return nil
}
