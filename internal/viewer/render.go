package viewer

const (
	ShowAnswerLabel = "Show Answer"
	HideAnswerLabel = "Hide Answer"

	emptyDeckMessage = "This deck has no flashcards."
)

// View is what the viewer displays for a State.
type View struct {
	DeckName      string `json:"deck"`
	Empty         bool   `json:"empty"`
	Message       string `json:"message,omitempty"`
	Question      string `json:"question,omitempty"`
	Answer        string `json:"answer,omitempty"` // Set only while the answer is visible
	AnswerVisible bool   `json:"answer_visible"`
	ToggleLabel   string `json:"toggle_label"`
	Position      int    `json:"position"` // 1-based; 0 when empty
	Total         int    `json:"total"`
	HasPrev       bool   `json:"has_prev"`
	HasNext       bool   `json:"has_next"`
}

// Render projects s onto a View. It never indexes an empty deck.
func Render(s State) View {
	v := View{
		DeckName:    s.DeckName,
		ToggleLabel: ShowAnswerLabel,
		Total:       s.Deck.Len(),
	}

	card, ok := s.Deck.Card(s.Index)
	if !ok {
		v.Empty = true
		v.Message = s.Notice
		if v.Message == "" {
			v.Message = emptyDeckMessage
		}
		return v
	}

	v.Question = card.Question
	v.Position = s.Index + 1
	v.HasPrev = s.Index > 0
	v.HasNext = s.Index < s.Deck.Len()-1
	if s.AnswerVisible {
		v.Answer = card.Answer
		v.AnswerVisible = true
		v.ToggleLabel = HideAnswerLabel
	}
	return v
}
