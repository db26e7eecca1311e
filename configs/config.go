package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime knob for both binaries. Values come from the
// environment, optionally pre-loaded from a .env file.
type Config struct {
	// Server
	AppPort     string
	GiftPort    string
	BaseURL     string
	Environment string

	// Database
	DatabaseURL string

	// Session
	SessionSecret     string
	SessionExpiration time.Duration

	// Gift generator
	CacheBackend   string // "memory" or "redis"
	CacheTTL       time.Duration
	RateWindow     time.Duration
	RateQuota      int
	RedisURL       string
	HFAPIKey       string
	HFModel        string
	HFTimeout     time.Duration
	EnableMetrics bool
}

// Load reads the .env file (if present) and builds a Config from the
// environment with defaults for every field.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:     getEnv("APP_PORT", "3000"),
		GiftPort:    getEnv("GIFT_PORT", "3001"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=gather port=5432 sslmode=disable"),

		SessionSecret:     getEnv("SESSION_SECRET", "change-me"),
		SessionExpiration: getEnvAsDuration("SESSION_EXPIRATION", "24h"),

		CacheBackend:  getEnv("GIFT_CACHE_BACKEND", "memory"),
		CacheTTL:      getEnvAsDuration("CACHE_TTL", "120s"),
		RateWindow:    getEnvAsDuration("RATE_WINDOW", "5s"),
		RateQuota:     getEnvAsInt("RATE_QUOTA", 1),
		RedisURL:      getEnv("REDIS_URL", "localhost:6379"),
		HFAPIKey:      getEnv("HF_API_KEY", ""),
		HFModel:       getEnv("HF_MODEL", "mistralai/Mistral-7B-Instruct-v0.2"),
		HFTimeout:     getEnvAsDuration("HF_TIMEOUT", "20s"),
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	if duration, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
