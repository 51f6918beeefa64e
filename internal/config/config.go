// internal/config/config.go
//
// Process configuration loaded from the environment.
// A .env file in the working directory is read first (development only);
// real environment variables take precedence over it.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Score backends accepted by SCORE_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds every tunable of the server.
type Config struct {
	Port         string        `env:"PORT" envDefault:"5175"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	ScoreBackend string        `env:"SCORE_BACKEND" envDefault:"sqlite"`
	DBPath       string        `env:"DB_PATH" envDefault:"./data/pairs.db"`
	ScoreKey     string        `env:"SCORE_KEY" envDefault:"memorygame.high_scores"`
	Pairs        int           `env:"PAIRS" envDefault:"6"`
	FacesFile    string        `env:"FACES_FILE"`
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	DailySalt    string        `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	ClientOrigin string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env.Parse cannot express.
func (c Config) Validate() error {
	if c.Pairs < 1 {
		return fmt.Errorf("config: PAIRS must be at least 1, got %d", c.Pairs)
	}
	switch c.ScoreBackend {
	case BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("config: unknown SCORE_BACKEND %q", c.ScoreBackend)
	}
	if n := len(c.DailySalt); n < 1 || n > 64 {
		return fmt.Errorf("config: DAILY_SALT must be 1-64 bytes, got %d", n)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("config: TOKEN_TTL must be positive")
	}
	return nil
}
