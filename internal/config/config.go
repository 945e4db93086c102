package config

import (
	"errors"
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port            string   `env:"PORT" envDefault:"5000"`
	DatabaseURL     string   `env:"DATABASE_URL"`
	TokenSecret     string   `env:"ACCESS_TOKEN_SECRET"`
	PaymentSecret   string   `env:"PAYMENT_SECRET_KEY"`
	TokenTTLMinutes int      `env:"TOKEN_TTL_MINUTES" envDefault:"60"`
	CORSOrigins     []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
	LogLevel        string   `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.TokenSecret == "" {
		return Config{}, errors.New("ACCESS_TOKEN_SECRET is required")
	}
	if cfg.TokenTTLMinutes <= 0 {
		cfg.TokenTTLMinutes = 60
	}
	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// TokenTTL returns the bearer token lifetime.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}
