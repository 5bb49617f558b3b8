package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env              string
	HTTPAddr         string
	DBDriver         string
	DatabaseURL      string
	RedisAddr        string
	QueueBackend     string
	QueueKey         string
	RateLimitBackend string
	RateLimitPerMin  int
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration
}

// Load returns application config populated from environment variables with sensible defaults.
// A .env file in the working directory is read first when present.
func Load() App {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("could not read .env: %v", err)
	}

	return App{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPAddr:         getEnv("HTTP_ADDR", "127.0.0.1:5000"),
		DBDriver:         getEnv("DB_DRIVER", "sqlite3"),
		DatabaseURL:      getEnv("DATABASE_URL", "hrms.db"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		QueueBackend:     getEnv("QUEUE_BACKEND", "memory"),
		QueueKey:         getEnv("QUEUE_KEY", "hrms:events"),
		RateLimitBackend: getEnv("RATE_LIMIT_BACKEND", "memory"),
		RateLimitPerMin:  intEnv("RATE_LIMIT_PER_MIN", 120),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		ShutdownTimeout:  durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// IsProduction reports whether the process runs with production settings.
func (a App) IsProduction() bool {
	return a.Env == "production" || a.Env == "prod"
}

// UsesRedis reports whether any component is configured against Redis.
func (a App) UsesRedis() bool {
	return a.QueueBackend == "redis" || a.RateLimitBackend == "redis"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			logrus.Warnf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
			return fallback
		}
		return d
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		logrus.Warnf("invalid int for %s, using fallback %d", key, fallback)
	}
	return fallback
}
