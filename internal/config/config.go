package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort            string
	DeckDir            string
	DeckBaseURL        string // When set, decks are fetched over HTTP instead of from DeckDir
	DefaultDeck        string
	MaxUploadBytes     int64
	UploadWorkers      int
	SessionIdleTimeout time.Duration
	LogLevel           slog.Level
	LogFormat          string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or one of its parents, it is loaded.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	// Walk up to find a project-level .env
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:     getEnv("API_PORT", "9000"),
		DeckDir:     getEnv("DECK_DIR", "./decks"),
		DeckBaseURL: strings.TrimRight(getEnv("DECK_BASE_URL", ""), "/"),
		DefaultDeck: getEnv("DEFAULT_DECK", "sample.txt"),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	maxUploadMB, err := strconv.Atoi(getEnv("MAX_UPLOAD_MB", "32"))
	if err != nil {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be a valid integer: %w", err)
	}
	if maxUploadMB <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be greater than 0")
	}
	cfg.MaxUploadBytes = int64(maxUploadMB) << 20

	workers, err := strconv.Atoi(getEnv("UPLOAD_WORKERS", "4"))
	if err != nil {
		return nil, fmt.Errorf("UPLOAD_WORKERS must be a valid integer: %w", err)
	}
	if workers <= 0 {
		return nil, fmt.Errorf("UPLOAD_WORKERS must be greater than 0")
	}
	cfg.UploadWorkers = workers

	idle, err := time.ParseDuration(getEnv("SESSION_IDLE_TIMEOUT", "30m"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_IDLE_TIMEOUT must be a valid duration: %w", err)
	}
	if idle <= 0 {
		return nil, fmt.Errorf("SESSION_IDLE_TIMEOUT must be greater than 0")
	}
	cfg.SessionIdleTimeout = idle

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if cfg.DefaultDeck == "" {
		return nil, fmt.Errorf("DEFAULT_DECK is required")
	}

	// The deck directory must exist unless decks come from a remote server
	if cfg.DeckBaseURL == "" {
		info, err := os.Stat(cfg.DeckDir)
		if err != nil {
			return nil, fmt.Errorf("DECK_DIR %s is not accessible: %w", cfg.DeckDir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("DECK_DIR %s is not a directory", cfg.DeckDir)
		}
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
