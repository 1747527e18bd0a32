package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flashdeck/internal/config"
	"flashdeck/internal/deck"
	"flashdeck/internal/handlers"
	"flashdeck/internal/http"
	"flashdeck/internal/service"
	"flashdeck/internal/viewer"
	"flashdeck/web"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Deck source: remote server when configured, local directory otherwise
	var (
		source  service.DeckSource
		catalog service.DeckCatalog
	)
	if cfg.DeckBaseURL != "" {
		source = deck.NewHTTPSource(cfg.DeckBaseURL, &nethttp.Client{Timeout: 10 * time.Second})
		slog.Info("Using remote deck source", "base_url", cfg.DeckBaseURL)
	} else {
		dirSource, err := deck.NewDirSource(cfg.DeckDir)
		if err != nil {
			log.Fatalf("Failed to open deck directory: %v", err)
		}
		source = dirSource
		catalog = dirSource
		slog.Info("Using local deck directory", "path", dirSource.Root())
	}

	store := viewer.NewStore()
	viewerService := service.NewViewerService(source, store)
	deckService := service.NewDeckService(source, catalog, cfg.DefaultDeck)
	buildService := service.NewBuildService(viewerService, cfg.DefaultDeck, cfg.UploadWorkers)

	renderer, err := handlers.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to load page templates: %v", err)
	}

	// Create router with dependencies
	deps := &http.Deps{
		ViewerService:  viewerService,
		DeckService:    deckService,
		BuildService:   buildService,
		Renderer:       renderer,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Static:         web.Static(),
	}
	router := http.NewRouter(deps)

	// Drop idle viewer sessions in the background
	go service.SweepSessions(ctx, store, cfg.SessionIdleTimeout/2, cfg.SessionIdleTimeout)

	addr := ":" + cfg.APIPort
	srv := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("API server shutdown failed", "error", err)
		}
	}()

	slog.Info("Starting API server", "addr", addr, "default_deck", cfg.DefaultDeck)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("API server failed to start: %v", err)
	}
	slog.Info("API server stopped")
}
