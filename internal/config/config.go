package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// InsecureJWTSecret is the signing key used when JWT_SECRET is unset.
// It is only acceptable for local development.
const InsecureJWTSecret = "insecure-dev-secret-change-me"

var (
	ErrInsecureSecret    = errors.New("JWT_SECRET must be set in release mode")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	ErrNonPositiveJWTTTL = errors.New("JWT_TTL must be positive")
	ErrInvalidCORSOrigin = errors.New("CORS origins must be * or start with http:// or https://")
)

type Config struct {
	LogLevel int    `env:"LOG_LEVEL" envDefault:"0"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	DB       DB     `envPrefix:"DB_"`
	JWT      JWT    `envPrefix:"JWT_"`
	Tasks    Tasks  `envPrefix:"TASKS_"`
	CORS     CORS   `envPrefix:"CORS_"`
}

// DB holds database connection parameters.
type DB struct {
	Driver   string `env:"DRIVER" envDefault:"postgres"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"taskflow"`
	Password string `env:"PASSWORD" envDefault:"taskflow"`
	Name     string `env:"NAME" envDefault:"taskflow"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

// JWT holds bearer token parameters.
type JWT struct {
	Secret string        `env:"SECRET" envDefault:"insecure-dev-secret-change-me"`
	TTL    time.Duration `env:"TTL" envDefault:"24h"`
}

// Tasks holds task policy switches.
type Tasks struct {
	// RestrictUpdates limits task updates to the creator and current assignee.
	RestrictUpdates bool `env:"RESTRICT_UPDATES" envDefault:"false"`
}

// CORS holds cross-origin settings for browser clients.
type CORS struct {
	// AllowedOrigins lists permitted origins. "*" allows any origin.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// IsRelease reports whether gin runs in release mode.
func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

// UsesInsecureSecret reports whether the fallback signing key is in use.
func (c *Config) UsesInsecureSecret() bool {
	return c.JWT.Secret == InsecureJWTSecret || c.JWT.Secret == ""
}

// Validate rejects configurations that must not reach production.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, c.DB.Driver)
	}
	if c.JWT.TTL <= 0 {
		return ErrNonPositiveJWTTTL
	}
	if c.IsRelease() && c.UsesInsecureSecret() {
		return ErrInsecureSecret
	}
	for _, origin := range c.CORS.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("%w: %q", ErrInvalidCORSOrigin, origin)
		}
	}
	return nil
}

// DSN builds the connection string for the configured driver.
func (c *Config) DSN() string {
	switch c.DB.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
			c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
	case "sqlite":
		return c.DB.Name
	default:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name, c.DB.SSLMode)
	}
}
