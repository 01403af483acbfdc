package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// HTTP server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Storage
	StoreBackend string `env:"STORE_BACKEND" envDefault:"redis"` // redis or memory
	RedisURL     string `env:"REDIS_URL"     envDefault:"redis://localhost:6379"`

	// Tokens and external access
	SummarySecret  string `env:"SUMMARY_SALT"       envDefault:"dev-salt"`
	SummaryBaseURL string `env:"SUMMARY_BASE_URL"   envDefault:"https://auntie-bot.onrender.com"`
	AdminToken     string `env:"ADMIN_TOKEN"        envDefault:""`
	TwilioToken    string `env:"TWILIO_AUTH_TOKEN"  envDefault:""`

	// Reference timezone for all windowing
	Timezone string `env:"TIMEZONE" envDefault:"Asia/Singapore"`

	// Static assets (empty disables serving)
	PublicDir string `env:"PUBLIC_DIR" envDefault:"public"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Response selection randomness; 0 seeds from the clock
	RandomSeed int64 `env:"RANDOM_SEED" envDefault:"0"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
