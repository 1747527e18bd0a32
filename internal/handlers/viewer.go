package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"flashdeck/internal/contextutil"
	"flashdeck/internal/service"
	"flashdeck/internal/viewer"
)

// ViewerHandler serves the flashcard viewer pages.
type ViewerHandler struct {
	viewer   service.ViewerService
	renderer *Renderer
}

// NewViewerHandler creates a new ViewerHandler.
func NewViewerHandler(viewerService service.ViewerService, renderer *Renderer) *ViewerHandler {
	return &ViewerHandler{
		viewer:   viewerService,
		renderer: renderer,
	}
}

// viewerPageData holds template data for the viewer page. Card text is
// shown verbatim.
type viewerPageData struct {
	ID   string
	View viewer.View
}

// Start opens a session for the deck named in the URL and redirects to it.
// Route: GET /flashcards/*
func (h *ViewerHandler) Start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deckName, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil {
		http.Error(w, "invalid deck name", http.StatusBadRequest)
		return
	}

	sess, err := h.viewer.Start(ctx, deckName)
	if err != nil {
		handlePageError(ctx, w, err, "Failed to open deck")
		return
	}
	http.Redirect(w, r, "/viewer/"+sess.ID, http.StatusSeeOther)
}

// Show renders the current card of a session.
// Route: GET /viewer/{id}
func (h *ViewerHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, err := h.viewer.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handlePageError(ctx, w, err, "Failed to load session")
		return
	}
	h.render(w, r, sess)
}

// Act applies a viewer action and redirects back to the page.
// Route: POST /viewer/{id}/{action}
func (h *ViewerHandler) Act(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if _, err := h.viewer.Apply(ctx, id, chi.URLParam(r, "action")); err != nil {
		handlePageError(ctx, w, err, "Failed to update session")
		return
	}
	http.Redirect(w, r, "/viewer/"+id, http.StatusSeeOther)
}

func (h *ViewerHandler) render(w http.ResponseWriter, r *http.Request, sess service.Session) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	data := viewerPageData{
		ID:   sess.ID,
		View: sess.View,
	}
	if err := h.renderer.Page(w, http.StatusOK, "viewer.html", data); err != nil {
		logger.ErrorContext(ctx, "failed to execute viewer template", "session_id", sess.ID, "error", err)
		http.Error(w, "failed to render card", http.StatusInternalServerError)
	}
}

// SessionHandler exposes viewer sessions as JSON.
type SessionHandler struct {
	viewer service.ViewerService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(viewerService service.ViewerService) *SessionHandler {
	return &SessionHandler{viewer: viewerService}
}

// StartSessionRequest represents the HTTP request payload for opening a session.
type StartSessionRequest struct {
	Deck string `json:"deck"`
}

// SessionResponse represents a viewer session in HTTP responses.
type SessionResponse struct {
	ID   string      `json:"id"`
	View viewer.View `json:"view"`
}

// Create opens a session.
// Route: POST /api/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Deck) == "" {
		writeError(w, http.StatusBadRequest, "Validation error: deck is required")
		return
	}

	sess, err := h.viewer.Start(ctx, req.Deck)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to start session")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, toSessionResponse(sess))
}

// Get returns a session.
// Route: GET /api/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, err := h.viewer.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to load session")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toSessionResponse(sess))
}

// Act applies an action to a session.
// Route: POST /api/sessions/{id}/{action}
func (h *SessionHandler) Act(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, err := h.viewer.Apply(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "action"))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to update session")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toSessionResponse(sess))
}

func toSessionResponse(sess service.Session) SessionResponse {
	return SessionResponse{
		ID:   sess.ID,
		View: sess.View,
	}
}
