package deck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// HTTPSource fetches deck files from a static file server.
type HTTPSource struct {
	BaseURL string
	client  *http.Client
}

// NewHTTPSource creates a source that issues GET <baseURL>/<name>.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Fetch retrieves the named deck.
func (s *HTTPSource) Fetch(ctx context.Context, name string) (string, error) {
	rel, err := CleanName(name)
	if err != nil {
		return "", err
	}

	segments := strings.Split(rel, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	deckURL := fmt.Sprintf("%s/%s", s.BaseURL, strings.Join(segments, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, deckURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	body, err := readLimited(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return string(body), nil
}
