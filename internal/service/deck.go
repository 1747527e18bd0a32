package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_deck_catalog.go -package=mocks flashdeck/internal/service DeckCatalog
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_deck_service.go -package=mocks -mock_names=DeckService=MockDeckService flashdeck/internal/service DeckService

import (
	"context"
	"errors"
	"fmt"

	"flashdeck/internal/contextutil"
	"flashdeck/internal/deck"
)

// DeckCatalog lists the decks a source can serve.
type DeckCatalog interface {
	List(ctx context.Context) ([]deck.Info, error)
}

// DeckService exposes decks outside of a viewer session.
type DeckService interface {
	// List returns the available decks.
	List(ctx context.Context) ([]deck.Info, error)
	// Cards returns the parsed cards of a deck.
	Cards(ctx context.Context, name string) (deck.Deck, error)
	// Check verifies that the default deck can be fetched.
	Check(ctx context.Context) error
}

type deckService struct {
	source      DeckSource
	catalog     DeckCatalog
	defaultDeck string
}

// NewDeckService creates a DeckService. catalog may be nil when the source
// cannot enumerate its decks; List then returns only the default deck.
func NewDeckService(source DeckSource, catalog DeckCatalog, defaultDeck string) DeckService {
	return &deckService{
		source:      source,
		catalog:     catalog,
		defaultDeck: defaultDeck,
	}
}

// List returns the available decks.
func (s *deckService) List(ctx context.Context) ([]deck.Info, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if s.catalog == nil {
		return []deck.Info{{Name: s.defaultDeck}}, nil
	}

	decks, err := s.catalog.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list decks", "error", err)
		return nil, WrapError(err, "failed to list decks")
	}
	if decks == nil {
		decks = []deck.Info{}
	}
	return decks, nil
}

// Cards fetches and parses a deck. An empty deck is not an error here.
func (s *deckService) Cards(ctx context.Context, name string) (deck.Deck, error) {
	logger := contextutil.LoggerFromContext(ctx)

	clean, err := deck.CleanName(name)
	if err != nil {
		return nil, &ValidationError{Field: "deck", Message: err.Error()}
	}

	cards, err := deck.Load(ctx, s.source, clean)
	if err != nil && !errors.Is(err, deck.ErrEmptyDeck) {
		return nil, s.mapLoadError(ctx, clean, err)
	}
	logger.DebugContext(ctx, "deck loaded", "deck", clean, "cards", cards.Len())
	return cards, nil
}

// Check fetches the default deck.
func (s *deckService) Check(ctx context.Context) error {
	if _, err := s.source.Fetch(ctx, s.defaultDeck); err != nil {
		return s.mapLoadError(ctx, s.defaultDeck, err)
	}
	return nil
}

func (s *deckService) mapLoadError(ctx context.Context, name string, err error) error {
	logger := contextutil.LoggerFromContext(ctx)
	if errors.Is(err, deck.ErrNotFound) {
		logger.WarnContext(ctx, "deck not found", "deck", name)
		return fmt.Errorf("%w: deck %s", ErrNotFound, name)
	}
	logger.ErrorContext(ctx, "failed to fetch deck", "deck", name, "error", err)
	return fmt.Errorf("%w: %w", ErrExternalService, err)
}
