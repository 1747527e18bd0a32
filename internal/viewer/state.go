package viewer

import (
	"errors"
	"fmt"

	"flashdeck/internal/deck"
)

// ErrUnknownAction is returned by Apply for an action name it does not know.
var ErrUnknownAction = errors.New("unknown viewer action")

// Action names a viewer transition.
type Action string

const (
	ActionNext   Action = "next"
	ActionPrev   Action = "prev"
	ActionToggle Action = "toggle"
)

// ParseAction converts a raw action name into an Action.
func ParseAction(raw string) (Action, error) {
	switch a := Action(raw); a {
	case ActionNext, ActionPrev, ActionToggle:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
	}
}

// State is the viewer state for one deck. It is a value: transitions return
// a new State and never modify the receiver.
//
// Invariant: when the deck is non-empty, 0 <= Index < len(Deck).
type State struct {
	DeckName      string
	Deck          deck.Deck
	Index         int
	AnswerVisible bool
	// Notice is shown instead of a card when the deck could not be loaded.
	Notice string
}

// Load returns the initial state for d: the first card with its answer
// hidden, or the empty state when d has no cards.
func Load(name string, d deck.Deck) State {
	return State{DeckName: name, Deck: d}
}

// Unavailable returns an empty state carrying a user-visible notice.
func Unavailable(name, notice string) State {
	return State{DeckName: name, Notice: notice}
}

// Empty reports whether there is no card to show.
func (s State) Empty() bool {
	return s.Deck.Empty()
}

// Next moves to the following card, stopping at the last one. The answer is
// hidden afterwards.
func (s State) Next() State {
	if s.Empty() {
		return s
	}
	s.Index = min(s.Index+1, s.Deck.Len()-1)
	s.AnswerVisible = false
	return s
}

// Prev moves to the preceding card, stopping at the first one. The answer is
// hidden afterwards.
func (s State) Prev() State {
	if s.Empty() {
		return s
	}
	s.Index = max(s.Index-1, 0)
	s.AnswerVisible = false
	return s
}

// ToggleAnswer flips answer visibility of the current card.
func (s State) ToggleAnswer() State {
	if s.Empty() {
		return s
	}
	s.AnswerVisible = !s.AnswerVisible
	return s
}

// Apply runs the transition named by a.
func Apply(s State, a Action) (State, error) {
	switch a {
	case ActionNext:
		return s.Next(), nil
	case ActionPrev:
		return s.Prev(), nil
	case ActionToggle:
		return s.ToggleAnswer(), nil
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownAction, string(a))
	}
}
