package deck

import "strings"

const (
	// RecordSeparator separates flashcards in the raw text.
	RecordSeparator = ";"
	// FieldSeparator separates the question from the answer. Only the first
	// occurrence in a record is significant.
	FieldSeparator = ","
)

// Parse splits raw deck text into flashcards.
//
// Records are separated by ";" and split on the first "," into question and
// answer; both are trimmed. Records missing either part are dropped. An
// answer keeps any further commas, so "Q,A,B" yields the answer "A,B".
func Parse(raw string) Deck {
	records := strings.Split(raw, RecordSeparator)
	cards := make(Deck, 0, len(records))
	for _, record := range records {
		card, ok := parseRecord(record)
		if !ok {
			continue
		}
		cards = append(cards, card)
	}
	return cards
}

func parseRecord(record string) (Flashcard, bool) {
	question, answer, found := strings.Cut(record, FieldSeparator)
	if !found {
		return Flashcard{}, false
	}
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return Flashcard{}, false
	}
	return Flashcard{Question: question, Answer: answer}, true
}
