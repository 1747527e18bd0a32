package deck

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type stubSource struct {
	text string
	err  error
}

func (s stubSource) Fetch(ctx context.Context, name string) (string, error) {
	return s.text, s.err
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		src       Source
		wantLen   int
		wantErr   error
		wantFetch bool
	}{
		{
			name:    "valid deck",
			src:     stubSource{text: "Q1,A1;Q2,A2"},
			wantLen: 2,
		},
		{
			name:    "empty deck",
			src:     stubSource{text: "nothing here"},
			wantLen: 0,
			wantErr: ErrEmptyDeck,
		},
		{
			name:      "source failure",
			src:       stubSource{err: errors.New("connection refused")},
			wantFetch: true,
		},
		{
			name:      "too large",
			src:       stubSource{text: strings.Repeat("Q,A;", MaxDeckBytes/4+1)},
			wantErr:   ErrTooLarge,
			wantFetch: true,
		},
		{
			name:      "invalid utf-8",
			src:       stubSource{text: "Q1,\xff\xfe"},
			wantErr:   ErrInvalidText,
			wantFetch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(context.Background(), tt.src, "sample.txt")

			if tt.wantFetch {
				var fetchErr *FetchError
				if !errors.As(err, &fetchErr) {
					t.Fatalf("Load() error = %v, want *FetchError", err)
				}
				if fetchErr.Name != "sample.txt" {
					t.Errorf("FetchError.Name = %q, want sample.txt", fetchErr.Name)
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
				}
				if got != nil {
					t.Errorf("Load() deck = %v, want nil", got)
				}
				return
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if got.Len() != tt.wantLen {
				t.Errorf("Load() len = %d, want %d", got.Len(), tt.wantLen)
			}
		})
	}
}

func writeDeck(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
}

func TestNewDirSource(t *testing.T) {
	root := t.TempDir()
	if _, err := NewDirSource(root); err != nil {
		t.Fatalf("NewDirSource() unexpected error: %v", err)
	}

	if _, err := NewDirSource(filepath.Join(root, "missing")); err == nil {
		t.Error("NewDirSource() expected error for missing directory")
	}

	file := filepath.Join(root, "file.txt")
	writeDeck(t, root, "file.txt", "Q,A")
	if _, err := NewDirSource(file); err == nil {
		t.Error("NewDirSource() expected error for regular file")
	}
}

func TestDirSource_Fetch(t *testing.T) {
	root := t.TempDir()
	writeDeck(t, root, "sample.txt", "Q1,A1;Q2,A2")
	writeDeck(t, root, "bio/cells.txt", "Cell,Unit of life")

	src, err := NewDirSource(root)
	if err != nil {
		t.Fatalf("NewDirSource() error: %v", err)
	}

	tests := []struct {
		name         string
		deck         string
		want         string
		wantErr      bool
		wantNotFound bool
	}{
		{name: "root deck", deck: "sample.txt", want: "Q1,A1;Q2,A2"},
		{name: "nested deck", deck: "bio/cells.txt", want: "Cell,Unit of life"},
		{name: "leading slash", deck: "/sample.txt", want: "Q1,A1;Q2,A2"},
		{name: "missing deck", deck: "missing.txt", wantErr: true, wantNotFound: true},
		{name: "path traversal", deck: "../secret.txt", wantErr: true},
		{name: "empty name", deck: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := src.Fetch(context.Background(), tt.deck)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Fetch(%q) expected error", tt.deck)
				}
				if tt.wantNotFound && !errors.Is(err, ErrNotFound) {
					t.Errorf("Fetch(%q) error = %v, want ErrNotFound", tt.deck, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch(%q) unexpected error: %v", tt.deck, err)
			}
			if got != tt.want {
				t.Errorf("Fetch(%q) = %q, want %q", tt.deck, got, tt.want)
			}
		})
	}
}

func TestDirSource_FetchCanceled(t *testing.T) {
	root := t.TempDir()
	writeDeck(t, root, "sample.txt", "Q,A")
	src, _ := NewDirSource(root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := src.Fetch(ctx, "sample.txt"); !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v, want context.Canceled", err)
	}
}

func TestDirSource_FetchSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeDeck(t, root, "sample.txt", "Q1,A1")
	writeDeck(t, outside, "secret.txt", "Secret,Value")

	symlink(t, filepath.Join(outside, "secret.txt"), filepath.Join(root, "escape.txt"))
	symlink(t, "sample.txt", filepath.Join(root, "alias.txt"))

	src, err := NewDirSource(root)
	if err != nil {
		t.Fatalf("NewDirSource() error: %v", err)
	}

	if got, err := src.Fetch(context.Background(), "escape.txt"); err == nil {
		t.Errorf("Fetch(escape.txt) = %q, want error for link leaving the deck directory", got)
	}
	got, err := src.Fetch(context.Background(), "alias.txt")
	if err != nil {
		t.Fatalf("Fetch(alias.txt) unexpected error: %v", err)
	}
	if got != "Q1,A1" {
		t.Errorf("Fetch(alias.txt) = %q, want Q1,A1", got)
	}
}

func TestDirSource_List(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeDeck(t, root, "sample.txt", "Q1,A1;Q2,A2;bad")
	writeDeck(t, root, "bio/cells.txt", "Cell,Unit of life")
	writeDeck(t, root, "notes.md", "# not a deck")
	writeDeck(t, root, ".hidden/secret.txt", "Q,A")
	writeDeck(t, root, "binary.txt", "Q,\xff")
	writeDeck(t, outside, "secret.txt", "Secret,Value")
	symlink(t, filepath.Join(outside, "secret.txt"), filepath.Join(root, "escape.txt"))
	symlink(t, filepath.Join(root, "missing.txt"), filepath.Join(root, "dangling.txt"))

	src, err := NewDirSource(root)
	if err != nil {
		t.Fatalf("NewDirSource() error: %v", err)
	}

	decks, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}

	want := []Info{
		{Name: "bio/cells.txt", Size: int64(len("Cell,Unit of life")), Cards: 1},
		{Name: "sample.txt", Size: int64(len("Q1,A1;Q2,A2;bad")), Cards: 2},
	}
	if len(decks) != len(want) {
		t.Fatalf("List() returned %d decks, want %d: %+v", len(decks), len(want), decks)
	}
	for i := range want {
		if decks[i] != want[i] {
			t.Errorf("List()[%d] = %+v, want %+v", i, decks[i], want[i])
		}
	}
}

func symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "sample.txt", want: "sample.txt"},
		{raw: " bio/cells.txt ", want: "bio/cells.txt"},
		{raw: "bio//cells.txt", want: "bio/cells.txt"},
		{raw: "./sample.txt", want: "sample.txt"},
		{raw: "../etc/passwd", wantErr: true},
		{raw: "bio/../../x.txt", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := CleanName(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("CleanName(%q) = %q, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("CleanName(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("CleanName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestHTTPSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		switch r.URL.Path {
		case "/decks/sample.txt":
			_, _ = w.Write([]byte("Q1,A1;Q2,A2"))
		case "/decks/my deck.txt":
			_, _ = w.Write([]byte("Spaced,Name"))
		case "/decks/broken.txt":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	src := NewHTTPSource(server.URL+"/decks/", nil)

	tests := []struct {
		name         string
		deck         string
		want         string
		wantErr      bool
		wantNotFound bool
	}{
		{name: "success", deck: "sample.txt", want: "Q1,A1;Q2,A2"},
		{name: "escaped name", deck: "my deck.txt", want: "Spaced,Name"},
		{name: "not found", deck: "missing.txt", wantErr: true, wantNotFound: true},
		{name: "server error", deck: "broken.txt", wantErr: true},
		{name: "traversal rejected", deck: "../x.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := src.Fetch(context.Background(), tt.deck)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Fetch(%q) expected error", tt.deck)
				}
				if tt.wantNotFound && !errors.Is(err, ErrNotFound) {
					t.Errorf("Fetch(%q) error = %v, want ErrNotFound", tt.deck, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch(%q) unexpected error: %v", tt.deck, err)
			}
			if got != tt.want {
				t.Errorf("Fetch(%q) = %q, want %q", tt.deck, got, tt.want)
			}
		})
	}
}

func TestHTTPSource_LoadRejectsInvalidText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte{'Q', ',', 0xff, 0xfe, 0xfd})
	}))
	defer server.Close()

	_, err := Load(context.Background(), NewHTTPSource(server.URL, nil), "binary.txt")
	if !errors.Is(err, ErrInvalidText) {
		t.Errorf("Load() error = %v, want ErrInvalidText", err)
	}
}

func TestHTTPSource_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	_, err := Load(context.Background(), NewHTTPSource(baseURL, nil), "sample.txt")
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Load() error = %v, want *FetchError", err)
	}
	if !strings.Contains(fetchErr.Error(), "sample.txt") {
		t.Errorf("FetchError.Error() = %q, should mention deck name", fetchErr.Error())
	}
}
