package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	SearchEngine     string
	SearchTimeoutSec int
	SearchBaseURL    string
	TavilyAPIKey     string
	UserAgent        string
	ChromeBin        string

	OutputDir string
	LogLevel  string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		SearchEngine:     getEnv("SEARCH_ENGINE", "google"),
		SearchTimeoutSec: getEnvInt("SEARCH_TIMEOUT_SEC", 10),
		SearchBaseURL:    getEnv("SEARCH_BASE_URL", ""),
		TavilyAPIKey:     getEnv("TAVILY_API_KEY", ""),
		UserAgent: getEnv("USER_AGENT", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		ChromeBin: getEnv("CHROME_BIN", ""),

		OutputDir: getEnv("OUTPUT_DIR", ""),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}
}

// SearchTimeout returns the per-query deadline. Non-positive values fall back to 10s.
func (c *Config) SearchTimeout() time.Duration {
	if c.SearchTimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.SearchTimeoutSec) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
