package deck

// Flashcard is a single question/answer pair parsed from a deck source.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Deck is an ordered sequence of flashcards. Order is the appearance order
// in the source text.
type Deck []Flashcard

// Len returns the number of cards in the deck.
func (d Deck) Len() int {
	return len(d)
}

// Empty reports whether the deck has no cards.
func (d Deck) Empty() bool {
	return len(d) == 0
}

// Card returns the card at index i and false if i is out of range.
func (d Deck) Card(i int) (Flashcard, bool) {
	if i < 0 || i >= len(d) {
		return Flashcard{}, false
	}
	return d[i], true
}

// Info describes a deck file available from a source.
type Info struct {
	Name  string `json:"name"`  // Name relative to the source root (e.g., "biology/cells.txt")
	Size  int64  `json:"size"`  // Size of the raw text in bytes
	Cards int    `json:"cards"` // Number of valid flashcards
}
