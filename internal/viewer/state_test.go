package viewer

import (
	"errors"
	"testing"

	"flashdeck/internal/deck"
)

func threeCards() deck.Deck {
	return deck.Parse("Q1,A1;Q2,A2;Q3,A3")
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		deck      deck.Deck
		wantEmpty bool
	}{
		{name: "non-empty deck shows first card", deck: threeCards(), wantEmpty: false},
		{name: "empty deck stays empty", deck: deck.Deck{}, wantEmpty: true},
		{name: "nil deck stays empty", deck: nil, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Load("sample.txt", tt.deck)
			if s.Empty() != tt.wantEmpty {
				t.Errorf("Load().Empty() = %v, want %v", s.Empty(), tt.wantEmpty)
			}
			if s.Index != 0 || s.AnswerVisible {
				t.Errorf("Load() = index %d visible %v, want index 0 hidden", s.Index, s.AnswerVisible)
			}
		})
	}
}

func TestState_Navigation(t *testing.T) {
	tests := []struct {
		name        string
		steps       []Action
		wantIndex   int
		wantVisible bool
	}{
		{name: "next advances", steps: []Action{ActionNext}, wantIndex: 1},
		{name: "next stops at last card", steps: []Action{ActionNext, ActionNext, ActionNext, ActionNext}, wantIndex: 2},
		{name: "prev at first card stays", steps: []Action{ActionPrev, ActionPrev}, wantIndex: 0},
		{name: "next then prev returns", steps: []Action{ActionNext, ActionNext, ActionPrev}, wantIndex: 1},
		{name: "toggle shows answer", steps: []Action{ActionToggle}, wantIndex: 0, wantVisible: true},
		{name: "toggle twice hides answer", steps: []Action{ActionToggle, ActionToggle}, wantIndex: 0},
		{name: "next resets visibility", steps: []Action{ActionToggle, ActionNext}, wantIndex: 1},
		{name: "prev resets visibility", steps: []Action{ActionNext, ActionToggle, ActionPrev}, wantIndex: 0},
		{name: "boundary next hides answer", steps: []Action{ActionNext, ActionNext, ActionToggle, ActionNext}, wantIndex: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Load("sample.txt", threeCards())
			for _, a := range tt.steps {
				var err error
				s, err = Apply(s, a)
				if err != nil {
					t.Fatalf("Apply(%s) unexpected error: %v", a, err)
				}
			}
			if s.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", s.Index, tt.wantIndex)
			}
			if s.AnswerVisible != tt.wantVisible {
				t.Errorf("AnswerVisible = %v, want %v", s.AnswerVisible, tt.wantVisible)
			}
		})
	}
}

func TestState_IndexStaysInRange(t *testing.T) {
	s := Load("sample.txt", threeCards())
	actions := []Action{ActionNext, ActionNext, ActionNext, ActionPrev, ActionPrev, ActionPrev, ActionPrev, ActionNext}
	for i, a := range actions {
		s, _ = Apply(s, a)
		if s.Index < 0 || s.Index >= s.Deck.Len() {
			t.Fatalf("step %d (%s): index %d out of range", i, a, s.Index)
		}
	}
}

func TestState_TransitionsDoNotMutateReceiver(t *testing.T) {
	s := Load("sample.txt", threeCards())
	_ = s.Next()
	_ = s.ToggleAnswer()
	if s.Index != 0 || s.AnswerVisible {
		t.Errorf("receiver changed: index %d visible %v", s.Index, s.AnswerVisible)
	}
}

func TestState_EmptyIgnoresActions(t *testing.T) {
	s := Unavailable("missing.txt", "Could not load deck")
	for _, a := range []Action{ActionNext, ActionPrev, ActionToggle} {
		got, err := Apply(s, a)
		if err != nil {
			t.Fatalf("Apply(%s) unexpected error: %v", a, err)
		}
		if got.Index != 0 || got.AnswerVisible {
			t.Errorf("Apply(%s) on empty state = index %d visible %v", a, got.Index, got.AnswerVisible)
		}
	}
}

func TestApply_UnknownAction(t *testing.T) {
	s := Load("sample.txt", threeCards()).Next()
	got, err := Apply(s, Action("shuffle"))
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("Apply() error = %v, want ErrUnknownAction", err)
	}
	if got.Index != s.Index {
		t.Errorf("Apply() changed index on error: %d != %d", got.Index, s.Index)
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		raw     string
		want    Action
		wantErr bool
	}{
		{raw: "next", want: ActionNext},
		{raw: "prev", want: ActionPrev},
		{raw: "toggle", want: ActionToggle},
		{raw: "Next", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAction(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownAction) {
					t.Errorf("ParseAction(%q) error = %v, want ErrUnknownAction", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAction(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseAction(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
