package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"flashdeck/internal/deck"
	"flashdeck/internal/service"
)

// DeckHandler exposes the deck catalog as JSON.
type DeckHandler struct {
	decks service.DeckService
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(deckService service.DeckService) *DeckHandler {
	return &DeckHandler{decks: deckService}
}

// DeckListResponse lists the available decks.
type DeckListResponse struct {
	Decks []deck.Info `json:"decks"`
}

// DeckResponse holds the parsed cards of one deck.
type DeckResponse struct {
	Name  string           `json:"name"`
	Cards []deck.Flashcard `json:"cards"`
}

// List returns the deck catalog.
// Route: GET /api/decks
func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	decks, err := h.decks.List(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list decks")
		return
	}
	writeJSON(ctx, w, http.StatusOK, DeckListResponse{Decks: decks})
}

// Cards returns the cards of a deck.
// Route: GET /api/decks/*
func (h *DeckHandler) Cards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid deck name")
		return
	}

	cards, err := h.decks.Cards(ctx, name)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to load deck")
		return
	}
	if cards == nil {
		cards = deck.Deck{}
	}
	writeJSON(ctx, w, http.StatusOK, DeckResponse{Name: name, Cards: cards})
}
