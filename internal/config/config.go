package config

import (
	"os"
	"strconv"
	"time"

	"github.com/godilite/mbti-server/internal/mbti"
	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string
	DBPath                string
	DBDriver              string
	RedisAddr             string
	RedisKeyPrefix        string
	GRPCPort              int
	GRPCReflectionEnabled bool
	GRPCLoggingEnabled    bool
	// MetricsPort 0 disables the /metrics endpoint.
	MetricsPort int
	CacheTTL    time.Duration
	SessionTTL  time.Duration
	MaxSessions int
	TieBreak    mbti.TieBreak
}

// LoadFromEnv loads configuration from environment variables.
// Malformed values fall back to their defaults.
func LoadFromEnv() *Config {
	tieBreak, ok := mbti.ParseTieBreak(getEnv("MBTI_TIE_BREAK", "second"))
	if !ok {
		tieBreak = mbti.TieBreakSecond
	}

	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		DBPath:                getEnv("DB_PATH", "./data/mbti.db"),
		DBDriver:              getEnv("DB_DRIVER", "sqlite3"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		RedisKeyPrefix:        getEnv("REDIS_KEY_PREFIX", "mbti"),
		GRPCPort:              getInt("GRPC_PORT", 50051),
		GRPCReflectionEnabled: getBool("GRPC_REFLECTION_ENABLED", false),
		GRPCLoggingEnabled:    getBool("GRPC_LOGGING_ENABLED", true),
		MetricsPort:           getInt("METRICS_PORT", 9090),
		CacheTTL:              getDuration("CACHE_TTL", 10*time.Minute),
		SessionTTL:            getDuration("SESSION_TTL", 2*time.Hour),
		MaxSessions:           getInt("MAX_SESSIONS", 10000),
		TieBreak:              tieBreak,
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
