// Package config loads service settings from environment variables, with an
// optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Cross-request fallback cache.
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	CacheMaxEntries int           `env:"CACHE_MAX_ENTRIES" envDefault:"1000"`

	// Signal source endpoints. Each adapter bounds its own request timeout.
	CrimeBaseURL       string        `env:"CRIME_BASE_URL" envDefault:"http://localhost:9001"`
	CrimeTimeout       time.Duration `env:"CRIME_TIMEOUT" envDefault:"3s"`
	DeprivationBaseURL string        `env:"DEPRIVATION_BASE_URL" envDefault:"http://localhost:9002"`
	DeprivationTimeout time.Duration `env:"DEPRIVATION_TIMEOUT" envDefault:"3s"`
	HousePriceBaseURL  string        `env:"HOUSE_PRICE_BASE_URL" envDefault:"http://localhost:9003"`
	HousePriceTimeout  time.Duration `env:"HOUSE_PRICE_TIMEOUT" envDefault:"3s"`
	CouncilBaseURL     string        `env:"COUNCIL_BASE_URL" envDefault:"https://api.postcodes.io"`
	CouncilTimeout     time.Duration `env:"COUNCIL_TIMEOUT" envDefault:"5s"`

	// Gemini generation and classification.
	GeminiAPIKey    string        `env:"GEMINI_API_KEY"`
	GeminiModel     string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiTimeout   time.Duration `env:"GEMINI_TIMEOUT" envDefault:"10s"`
	GeminiEnabled   bool          `env:"-"`
	ClassifyTimeout time.Duration `env:"CLASSIFY_TIMEOUT" envDefault:"15s"`
}

// Load reads configuration from the environment, applying defaults where
// unset. A .env file in the working directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	// Gemini is on whenever a key is present, with an explicit override.
	cfg.GeminiEnabled = cfg.GeminiAPIKey != ""
	if v := os.Getenv("GEMINI_ENABLED"); v != "" {
		cfg.GeminiEnabled = v == "true"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.CacheTTL <= 0 {
		return errors.New("CACHE_TTL must be positive")
	}
	if c.CacheMaxEntries <= 0 {
		return errors.New("CACHE_MAX_ENTRIES must be positive")
	}
	for name, d := range map[string]time.Duration{
		"CRIME_TIMEOUT":       c.CrimeTimeout,
		"DEPRIVATION_TIMEOUT": c.DeprivationTimeout,
		"HOUSE_PRICE_TIMEOUT": c.HousePriceTimeout,
		"COUNCIL_TIMEOUT":     c.CouncilTimeout,
		"GEMINI_TIMEOUT":      c.GeminiTimeout,
		"CLASSIFY_TIMEOUT":    c.ClassifyTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	if c.GeminiEnabled && c.GeminiAPIKey == "" {
		return errors.New("GEMINI_ENABLED is true but GEMINI_API_KEY is not set")
	}
	return nil
}
