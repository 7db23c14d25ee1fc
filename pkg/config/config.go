package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Provider endpoint overrides; empty means the public API.
	GeminiBaseURL string
	OpenAIBaseURL string
	// Rate-limit retry policy around provider calls.
	RetryMax         int
	RetryBaseDelayMS int
	LogLevel         string
	LogPretty        bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		GeminiBaseURL:    os.Getenv("GEMINI_BASE_URL"),
		OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),
		RetryMax:         getEnvInt("LLM_RETRY_MAX", 1),
		RetryBaseDelayMS: getEnvInt("LLM_RETRY_BASE_DELAY_MS", 2000),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogPretty:        getEnvBool("LOG_PRETTY", false),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
