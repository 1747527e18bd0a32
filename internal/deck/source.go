package deck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// MaxDeckBytes bounds the size of a deck's raw text.
const MaxDeckBytes = 4 << 20

var (
	// ErrEmptyDeck is returned by Load when the source text contains no
	// valid flashcards.
	ErrEmptyDeck = errors.New("deck has no flashcards")
	// ErrTooLarge is reported when a deck exceeds MaxDeckBytes.
	ErrTooLarge = errors.New("deck exceeds size limit")
	// ErrInvalidText is reported when a deck is not valid UTF-8.
	ErrInvalidText = errors.New("deck is not valid UTF-8")
)

// Source retrieves raw deck text by name.
type Source interface {
	// Fetch returns the UTF-8 text of the named deck.
	Fetch(ctx context.Context, name string) (string, error)
}

// FetchError reports that a deck resource could not be retrieved.
type FetchError struct {
	Name string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch deck %s: %v", e.Name, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Load fetches the named deck from src and parses it.
// Source failures, oversized decks and text that is not UTF-8 are returned
// as *FetchError. A deck with zero valid records returns ErrEmptyDeck
// together with the (empty) deck.
func Load(ctx context.Context, src Source, name string) (Deck, error) {
	raw, err := src.Fetch(ctx, name)
	if err != nil {
		return nil, &FetchError{Name: name, Err: err}
	}
	if err := checkText(raw); err != nil {
		return nil, &FetchError{Name: name, Err: err}
	}

	cards := Parse(raw)
	if cards.Empty() {
		return cards, ErrEmptyDeck
	}
	return cards, nil
}

// checkText verifies that raw is within MaxDeckBytes and valid UTF-8.
func checkText(raw string) error {
	if len(raw) > MaxDeckBytes {
		return fmt.Errorf("%w: more than %d bytes", ErrTooLarge, MaxDeckBytes)
	}
	if !utf8.ValidString(raw) {
		return ErrInvalidText
	}
	return nil
}

// readLimited reads r up to one byte past MaxDeckBytes, enough for
// checkText to see an oversized deck.
func readLimited(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, MaxDeckBytes+1))
}
