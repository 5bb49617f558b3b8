package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "HTTP_ADDR", "DB_DRIVER", "DATABASE_URL", "QUEUE_BACKEND", "RATE_LIMIT_PER_MIN", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "127.0.0.1:5000", cfg.HTTPAddr)
	assert.Equal(t, "sqlite3", cfg.DBDriver)
	assert.Equal(t, "hrms.db", cfg.DatabaseURL)
	assert.Equal(t, "memory", cfg.QueueBackend)
	assert.Equal(t, 120, cfg.RateLimitPerMin)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.UsesRedis())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("QUEUE_BACKEND", "redis")
	t.Setenv("RATE_LIMIT_PER_MIN", "30")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "pgx", cfg.DBDriver)
	assert.True(t, cfg.UsesRedis())
	assert.Equal(t, 30, cfg.RateLimitPerMin)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MIN", "lots")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := Load()
	assert.Equal(t, 120, cfg.RateLimitPerMin)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}
