package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings, loaded from environment variables.
type Config struct {
	// --- Server ---
	Port         string        `envconfig:"PORT" default:"8080"`
	Env          string        `envconfig:"APP_ENV" default:"development"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`

	// --- Database ---
	DatabaseDSN     string        `envconfig:"DATABASE_DSN" default:"tamapet:tamapet@tcp(localhost:3306)/tamapet?charset=utf8mb4&parseTime=True&loc=Local"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"50"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`

	// --- Session tokens ---
	JWTSecret string        `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	JWTExpiry time.Duration `envconfig:"JWT_EXPIRY" default:"720h"`
	JWTIssuer string        `envconfig:"JWT_ISSUER" default:"tamapet"`

	// --- Game rules ---
	// The calendar day (attendance, same-day action counts, the midnight batch)
	// is evaluated in this timezone.
	Timezone          string  `envconfig:"GAME_TIMEZONE" default:"Asia/Seoul"`
	BiasTransferRate  float64 `envconfig:"BIAS_TRANSFER_RATE" default:"0.3"`
	RunawayReturnCost int64   `envconfig:"RUNAWAY_RETURN_COST" default:"500"`
	BirthdayReward    int64   `envconfig:"BIRTHDAY_REWARD" default:"300"`
	MinigameScoreRate int64   `envconfig:"MINIGAME_SCORE_RATE" default:"1"`

	// --- Emotion model service ---
	ModelBaseURL string        `envconfig:"MODEL_BASE_URL" default:"http://localhost:8001"`
	ModelTimeout time.Duration `envconfig:"MODEL_TIMEOUT" default:"5s"`

	// --- Rate limiting ---
	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"100"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

// Load reads the environment into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.BiasTransferRate < 0 || c.BiasTransferRate >= 1 {
		return fmt.Errorf("BIAS_TRANSFER_RATE must be in [0, 1), got %v", c.BiasTransferRate)
	}
	if c.RunawayReturnCost < 0 {
		return fmt.Errorf("RUNAWAY_RETURN_COST must not be negative")
	}
	if c.RateLimitRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be > 0")
	}
	return nil
}

// Location resolves the configured game timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
