package config

import (
	"os"

	"go.uber.org/zap"
)

type Config struct {
	DatabaseURL   string
	Port          string
	JWTSecret     string
	RedisAddr     string
	RedisPassword string
	Currency      string
	// DevMode enables the in-memory session store and the debug user
	// listing. Must stay off in production.
	DevMode bool
}

func Load(log *zap.Logger) *Config {
	return &Config{
		DatabaseURL:   mustEnv("DATABASE_URL", log),
		Port:          getEnv("PORT", "8080"),
		JWTSecret:     mustEnv("JWT_SECRET", log),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		Currency:      getEnv("DEFAULT_CURRENCY", "IQD"),
		DevMode:       getEnv("DEV_MODE", "") == "true",
	}
}

func getEnv(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return fallback
}

func mustEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("required environment variable is not set", zap.String("key", key))
	panic("missing required environment variable: " + key)
}
