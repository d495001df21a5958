package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, InsecureJWTSecret, cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.False(t, cfg.Tasks.RestrictUpdates)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.UsesInsecureSecret())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com,http://localhost:5173")
	t.Setenv("TASKS_RESTRICT_UPDATES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsRelease())
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, 15*time.Minute, cfg.JWT.TTL)
	assert.True(t, cfg.Tasks.RestrictUpdates)
	assert.Equal(t, []string{"https://app.example.com", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.UsesInsecureSecret())
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "taskflow:taskflow@tcp(localhost:3306)/taskflow?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true", cfg.DSN())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "insecure secret allowed in debug",
			mutate: func(c *Config) {},
		},
		{
			name:    "insecure secret rejected in release",
			mutate:  func(c *Config) { c.GinMode = "release" },
			wantErr: ErrInsecureSecret,
		},
		{
			name:    "empty secret rejected in release",
			mutate:  func(c *Config) { c.GinMode = "release"; c.JWT.Secret = "" },
			wantErr: ErrInsecureSecret,
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.DB.Driver = "mongo" },
			wantErr: ErrUnsupportedDriver,
		},
		{
			name:    "zero ttl",
			mutate:  func(c *Config) { c.JWT.TTL = 0 },
			wantErr: ErrNonPositiveJWTTTL,
		},
		{
			name:   "explicit cors origins",
			mutate: func(c *Config) { c.CORS.AllowedOrigins = []string{"https://app.example.com"} },
		},
		{
			name:    "cors origin without scheme",
			mutate:  func(c *Config) { c.CORS.AllowedOrigins = []string{"app.example.com"} },
			wantErr: ErrInvalidCORSOrigin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDSN_Postgres(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=taskflow password=taskflow dbname=taskflow sslmode=disable TimeZone=UTC",
		cfg.DSN())
}
