package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_deck_source.go -package=mocks flashdeck/internal/service DeckSource
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_viewer_service.go -package=mocks -mock_names=ViewerService=MockViewerService flashdeck/internal/service ViewerService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flashdeck/internal/contextutil"
	"flashdeck/internal/deck"
	"flashdeck/internal/viewer"
)

// DeckSource retrieves raw deck text.
// This interface is defined from the service layer's perspective (consumer-first).
type DeckSource interface {
	// Fetch returns the UTF-8 text of the named deck.
	Fetch(ctx context.Context, name string) (string, error)
}

// Session is a viewer session as seen by callers.
type Session struct {
	ID   string
	View viewer.View
}

// ViewerService runs flashcard viewer sessions.
type ViewerService interface {
	// Start loads a deck and opens a session on its first card. A deck that
	// cannot be loaded still yields a session, in the empty state.
	Start(ctx context.Context, deckName string) (Session, error)
	// Get returns the current view of a session.
	Get(ctx context.Context, id string) (Session, error)
	// Apply runs a named action ("next", "prev", "toggle") on a session.
	Apply(ctx context.Context, id string, action string) (Session, error)
}

// viewerService implements ViewerService.
type viewerService struct {
	source DeckSource
	store  *viewer.Store
}

// NewViewerService creates a new ViewerService backed by an in-memory store.
func NewViewerService(source DeckSource, store *viewer.Store) ViewerService {
	return &viewerService{
		source: source,
		store:  store,
	}
}

// Start opens a session for deckName.
func (s *viewerService) Start(ctx context.Context, deckName string) (Session, error) {
	logger := contextutil.LoggerFromContext(ctx)

	name, err := deck.CleanName(deckName)
	if err != nil {
		logger.WarnContext(ctx, "invalid deck name", "deck", deckName, "error", err)
		return Session{}, &ValidationError{
			Field:   "deck",
			Message: err.Error(),
		}
	}

	state := s.loadState(ctx, name)
	sess := s.store.Create(state)

	logger.InfoContext(ctx, "viewer session started", "session_id", sess.ID, "deck", name, "cards", state.Deck.Len())
	return toSession(sess), nil
}

// loadState fetches and parses the deck. Failures are turned into an empty
// state with a notice for the user.
func (s *viewerService) loadState(ctx context.Context, name string) viewer.State {
	logger := contextutil.LoggerFromContext(ctx)

	cards, err := deck.Load(ctx, s.source, name)
	switch {
	case err == nil:
		return viewer.Load(name, cards)
	case errors.Is(err, deck.ErrEmptyDeck):
		logger.WarnContext(ctx, "deck has no valid flashcards", "deck", name)
		return viewer.Load(name, cards)
	case errors.Is(err, deck.ErrNotFound):
		logger.WarnContext(ctx, "deck not found", "deck", name)
		return viewer.Unavailable(name, fmt.Sprintf("Deck %q was not found.", name))
	default:
		logger.ErrorContext(ctx, "failed to load deck", "deck", name, "error", err)
		return viewer.Unavailable(name, fmt.Sprintf("Could not load deck %q. Please try again later.", name))
	}
}

// Get returns the session's current view.
func (s *viewerService) Get(ctx context.Context, id string) (Session, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "viewer session lookup failed", "session_id", id, "error", err)
		return Session{}, fmt.Errorf("%w: session %s", ErrNotFound, id)
	}
	return toSession(sess), nil
}

// Apply runs action on the session.
func (s *viewerService) Apply(ctx context.Context, id string, action string) (Session, error) {
	logger := contextutil.LoggerFromContext(ctx)

	a, err := viewer.ParseAction(action)
	if err != nil {
		logger.WarnContext(ctx, "unknown viewer action", "session_id", id, "action", action)
		return Session{}, &ValidationError{
			Field:   "action",
			Message: fmt.Sprintf("must be one of %s, %s, %s", viewer.ActionNext, viewer.ActionPrev, viewer.ActionToggle),
		}
	}

	sess, err := s.store.Update(id, func(st viewer.State) (viewer.State, error) {
		return viewer.Apply(st, a)
	})
	if err != nil {
		if errors.Is(err, viewer.ErrSessionNotFound) {
			logger.WarnContext(ctx, "viewer session not found", "session_id", id)
			return Session{}, fmt.Errorf("%w: session %s", ErrNotFound, id)
		}
		return Session{}, WrapError(err, "failed to apply viewer action")
	}

	logger.DebugContext(ctx, "viewer action applied", "session_id", id, "action", a, "index", sess.State.Index, "answer_visible", sess.State.AnswerVisible)
	return toSession(sess), nil
}

// SweepSessions removes idle sessions from store every interval until ctx
// is done.
func SweepSessions(ctx context.Context, store *viewer.Store, interval, idle time.Duration) {
	logger := contextutil.LoggerFromContext(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := store.Sweep(idle); removed > 0 {
				logger.InfoContext(ctx, "removed idle viewer sessions", "removed", removed, "remaining", store.Len())
			}
		}
	}
}

func toSession(sess viewer.Session) Session {
	return Session{
		ID:   sess.ID,
		View: viewer.Render(sess.State),
	}
}
