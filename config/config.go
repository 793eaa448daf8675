package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Server struct {
		// Port the HTTP server listens on
		Port string `env:"SERVER_PORT" envDefault:"3000"`

		// Origins allowed to make credentialed requests
		CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
	}

	Database Database

	Auth struct {
		// Secret used to sign session tokens
		JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

		// Lifetime of a session token in hours
		TokenTTLHours int `env:"JWT_TTL_HOURS" envDefault:"24"`
	}
}

// Database holds connection settings. Path is only used by the sqlite driver.
type Database struct {
	Driver   string `env:"DB_DRIVER" envDefault:"postgres"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"development"`
	Password string `env:"DB_PASSWORD" envDefault:"development"`
	Name     string `env:"DB_NAME" envDefault:"lightbnb"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	Path     string `env:"DB_PATH" envDefault:"lightbnb.db"`

	// gorm log level: silent, error, warn or info
	LogLevel string `env:"DB_LOG_LEVEL" envDefault:"warn"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Auth.TokenTTLHours <= 0 {
		return nil, fmt.Errorf("JWT_TTL_HOURS must be positive, got %d", cfg.Auth.TokenTTLHours)
	}
	return cfg, nil
}

// TokenTTL returns the session token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTLHours) * time.Hour
}
