package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Storage Configuration
	StorageBackend string // "file", "redis" or "postgres"
	StorageKey     string // slot name the user collection is stored under
	StorageDir     string // directory holding JSON snapshots (file backend)
	DBUrl          string // connection string (postgres backend)
	RedisURL       string // redis://... or rediss://... (redis backend)
	RedisPassword  string
	// ID Generation
	SnowflakeNode int64
	// Metrics
	MetricsEnabled bool
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignored when absent.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		StorageKey:     getEnv("STORAGE_KEY", "users"),
		StorageDir:     getEnv("STORAGE_DIR", "data"),
		DBUrl:          getEnv("DATABASE_URL", ""),
		RedisURL:       getEnv("REDIS_URL", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		SnowflakeNode:  int64(getEnvInt("SNOWFLAKE_NODE", 1)),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}

	switch cfg.StorageBackend {
	case "postgres":
		if cfg.DBUrl == "" {
			log.Println("WARNING: STORAGE_BACKEND=postgres but DATABASE_URL is missing. Storage will fall back to memory.")
		}
	case "redis":
		if cfg.RedisURL == "" {
			log.Println("WARNING: STORAGE_BACKEND=redis but REDIS_URL is missing. Storage will fall back to memory.")
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
