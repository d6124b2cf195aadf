package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	DatabasePath  string
	LogLevel      string
	AllowedOrigin string

	// Parser input hygiene
	MaxInputLength int // runes, applied before parsing

	// Global rate limit
	RateLimitInterval time.Duration
	RateLimitBurst    int

	// Summary cache
	SummaryCacheTTL     time.Duration
	SummaryCacheCleanup time.Duration

	// Duplicate-submission window: an identical record submitted again
	// within this window is rejected by the ledger before insert.
	DuplicateWindow time.Duration

	SeedDemoData bool
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	maxInputLength := getEnvAsInt("MAX_INPUT_LENGTH", 200)
	if maxInputLength <= 0 {
		log.Printf("WARNING: MAX_INPUT_LENGTH must be positive, got %d. Using default 200.", maxInputLength)
		maxInputLength = 200
	}

	Cfg = &AppConfig{
		Port:          getEnv("PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "./galleon.db"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),

		MaxInputLength: maxInputLength,

		RateLimitInterval: getEnvAsDuration("RATE_LIMIT_INTERVAL", 100*time.Millisecond),
		RateLimitBurst:    getEnvAsInt("RATE_LIMIT_BURST", 30),

		SummaryCacheTTL:     getEnvAsDuration("SUMMARY_CACHE_TTL", 15*time.Minute),
		SummaryCacheCleanup: getEnvAsDuration("SUMMARY_CACHE_CLEANUP", 30*time.Minute),

		DuplicateWindow: getEnvAsDuration("DUPLICATE_WINDOW", 5*time.Second),

		SeedDemoData: getEnvAsBool("SEED_DEMO_DATA", false),
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, DBPath=%s, SeedDemoData=%t",
		Cfg.Port, Cfg.LogLevel, Cfg.DatabasePath, Cfg.SeedDemoData)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Integer value for %s not set or empty, using default: %d", key, fallback)
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Duration value for %s not set or empty, using default: %s", key, fallback.String())
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid boolean value for %s ('%s'), using default: %t", key, valueStr, fallback)
	return fallback
}
