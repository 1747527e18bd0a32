package http

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"flashdeck/internal/handlers"
	"flashdeck/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ViewerService  service.ViewerService
	DeckService    service.DeckService
	BuildService   service.BuildService
	Renderer       *handlers.Renderer
	MaxUploadBytes int64
	Static         fs.FS // Served under /static/
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	formHandler := handlers.NewFormHandler(deps.BuildService, deps.Renderer, deps.MaxUploadBytes)
	viewerHandler := handlers.NewViewerHandler(deps.ViewerService, deps.Renderer)
	sessionHandler := handlers.NewSessionHandler(deps.ViewerService)
	deckHandler := handlers.NewDeckHandler(deps.DeckService)
	uploadHandler := handlers.NewUploadHandler(deps.BuildService, deps.MaxUploadBytes)
	healthHandler := handlers.NewHealthHandler(deps.DeckService)

	// Pages
	r.Get("/", formHandler.Index)
	r.Post("/build", formHandler.Build)
	r.Get("/flashcards/*", viewerHandler.Start)
	r.Get("/viewer/{id}", viewerHandler.Show)
	r.Post("/viewer/{id}/{action}", viewerHandler.Act)

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", sessionHandler.Create)
		r.Get("/sessions/{id}", sessionHandler.Get)
		r.Post("/sessions/{id}/{action}", sessionHandler.Act)

		r.Get("/decks", deckHandler.List)
		r.Get("/decks/*", deckHandler.Cards)

		r.Method(http.MethodPost, "/uploads", uploadHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	if deps.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(deps.Static)))
	}

	return r
}
