package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envVars = []string{
	"API_PORT", "DECK_DIR", "DECK_BASE_URL", "DEFAULT_DECK",
	"MAX_UPLOAD_MB", "UPLOAD_WORKERS", "SESSION_IDLE_TIMEOUT",
	"LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv unsets all config variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    func(*testing.T)
		wantErr     bool
		checkConfig func(*testing.T, *Config)
	}{
		{
			name: "defaults with existing deck directory",
			setupEnv: func(t *testing.T) {
				t.Setenv("DECK_DIR", t.TempDir())
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.APIPort != "9000" {
					t.Errorf("APIPort = %s, want 9000", cfg.APIPort)
				}
				if cfg.DefaultDeck != "sample.txt" {
					t.Errorf("DefaultDeck = %s, want sample.txt", cfg.DefaultDeck)
				}
				if cfg.MaxUploadBytes != 32<<20 {
					t.Errorf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes, 32<<20)
				}
				if cfg.UploadWorkers != 4 {
					t.Errorf("UploadWorkers = %d, want 4", cfg.UploadWorkers)
				}
				if cfg.SessionIdleTimeout != 30*time.Minute {
					t.Errorf("SessionIdleTimeout = %v, want 30m", cfg.SessionIdleTimeout)
				}
				if cfg.LogLevel != slog.LevelInfo || cfg.LogFormat != "text" {
					t.Errorf("logging = %v/%s, want INFO/text", cfg.LogLevel, cfg.LogFormat)
				}
			},
		},
		{
			name: "custom values",
			setupEnv: func(t *testing.T) {
				t.Setenv("DECK_DIR", t.TempDir())
				t.Setenv("API_PORT", "8081")
				t.Setenv("DEFAULT_DECK", "bio/cells.txt")
				t.Setenv("MAX_UPLOAD_MB", "5")
				t.Setenv("UPLOAD_WORKERS", "8")
				t.Setenv("SESSION_IDLE_TIMEOUT", "2h")
				t.Setenv("LOG_LEVEL", "debug")
				t.Setenv("LOG_FORMAT", "JSON")
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.APIPort != "8081" || cfg.DefaultDeck != "bio/cells.txt" {
					t.Errorf("unexpected config: %+v", cfg)
				}
				if cfg.MaxUploadBytes != 5<<20 || cfg.UploadWorkers != 8 || cfg.SessionIdleTimeout != 2*time.Hour {
					t.Errorf("unexpected limits: %+v", cfg)
				}
				if cfg.LogLevel != slog.LevelDebug || cfg.LogFormat != "json" {
					t.Errorf("logging = %v/%s, want DEBUG/json", cfg.LogLevel, cfg.LogFormat)
				}
			},
		},
		{
			name: "remote deck source does not need a directory",
			setupEnv: func(t *testing.T) {
				t.Setenv("DECK_DIR", filepath.Join(t.TempDir(), "missing"))
				t.Setenv("DECK_BASE_URL", "http://decks.local/static/")
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.DeckBaseURL != "http://decks.local/static" {
					t.Errorf("DeckBaseURL = %s", cfg.DeckBaseURL)
				}
			},
		},
		{
			name: "missing deck directory",
			setupEnv: func(t *testing.T) {
				t.Setenv("DECK_DIR", filepath.Join(t.TempDir(), "missing"))
			},
			wantErr: true,
		},
		{
			name: "deck directory is a file",
			setupEnv: func(t *testing.T) {
				file := filepath.Join(t.TempDir(), "decks")
				if err := os.WriteFile(file, nil, 0644); err != nil {
					t.Fatal(err)
				}
				t.Setenv("DECK_DIR", file)
			},
			wantErr: true,
		},
		{
			name: "invalid MAX_UPLOAD_MB",
			setupEnv: func(t *testing.T) {
				t.Setenv("DECK_DIR", t.TempDir())
				t.Setenv("MAX_UPLOAD_MB", "lots")
			},
			wantErr: true,
		},
		{
			name: "zero UPLOAD_WORKERS",
			setupEnv: func(t *testing.T) {
				t.Setenv("DECK_DIR", t.TempDir())
				t.Setenv("UPLOAD_WORKERS", "0")
			},
			wantErr: true,
		},
		{
			name: "invalid SESSION_IDLE_TIMEOUT",
			setupEnv: func(t *testing.T) {
				t.Setenv("DECK_DIR", t.TempDir())
				t.Setenv("SESSION_IDLE_TIMEOUT", "soon")
			},
			wantErr: true,
		},
		{
			name: "invalid LOG_LEVEL",
			setupEnv: func(t *testing.T) {
				t.Setenv("DECK_DIR", t.TempDir())
				t.Setenv("LOG_LEVEL", "loud")
			},
			wantErr: true,
		},
		{
			name: "invalid LOG_FORMAT",
			setupEnv: func(t *testing.T) {
				t.Setenv("DECK_DIR", t.TempDir())
				t.Setenv("LOG_FORMAT", "xml")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			tt.setupEnv(t)

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() expected error, got config %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if tt.checkConfig != nil {
				tt.checkConfig(t, cfg)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FLASHDECK_TEST_KEY", "value")
	if got := getEnv("FLASHDECK_TEST_KEY", "default"); got != "value" {
		t.Errorf("getEnv() = %s, want value", got)
	}
	if got := getEnv("FLASHDECK_TEST_MISSING", "default"); got != "default" {
		t.Errorf("getEnv() = %s, want default", got)
	}
}
