package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	BaseURL     string
	Env         string
	HTTPTimeout time.Duration
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by user) > default.
func Load() Config {
	cfg := Config{}
	cfg.BaseURL = getEnv("API_BASE_URL", "http://localhost:8080/api")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.HTTPTimeout = time.Duration(parseInt("HTTP_TIMEOUT_SECONDS", 15)) * time.Second
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Printf("invalid integer for %s: %s", key, v)
			return def
		}
		return n
	}
	return def
}
