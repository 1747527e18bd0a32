package deck

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"flashdeck/internal/contextutil"
)

// ErrNotFound is returned when a deck does not exist in a source.
var ErrNotFound = errors.New("deck not found")

// deckExt is the file extension of deck files in a DirSource.
const deckExt = ".txt"

// DirSource serves deck files from a local directory.
type DirSource struct {
	root string
}

// NewDirSource creates a DirSource rooted at root. The directory must exist.
func NewDirSource(root string) (*DirSource, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve deck directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat deck directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("deck path %s is not a directory", root)
	}
	return &DirSource{root: abs}, nil
}

// Root returns the directory the source reads from.
func (s *DirSource) Root() string {
	return s.root
}

// Fetch reads the named deck file.
func (s *DirSource) Fetch(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rel, err := CleanName(name)
	if err != nil {
		return "", err
	}

	data, err := s.read(rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", fmt.Errorf("failed to read deck %s: %w", name, err)
	}
	return string(data), nil
}

// List walks the directory and returns every readable deck file, sorted by
// name. Files that cannot be read or are not valid deck text are skipped.
func (s *DirSource) List(ctx context.Context) ([]Info, error) {
	logger := contextutil.LoggerFromContext(ctx)
	var decks []Info

	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path %s: %w", p, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			// Hidden directories are never decks
			if p != s.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(p) != deckExt {
			return nil
		}

		relPath, err := filepath.Rel(s.root, p)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", p, err)
		}
		name := filepath.ToSlash(relPath)

		data, err := s.read(name)
		if err == nil {
			err = checkText(string(data))
		}
		if err != nil {
			logger.WarnContext(ctx, "skipping unreadable deck", "deck", name, "error", err)
			return nil
		}

		decks = append(decks, Info{
			Name:  name,
			Size:  int64(len(data)),
			Cards: Parse(string(data)).Len(),
		})
		return nil
	})
	if err != nil {
		return decks, fmt.Errorf("failed to scan deck directory %s: %w", s.root, err)
	}

	sort.Slice(decks, func(i, j int) bool { return decks[i].Name < decks[j].Name })
	return decks, nil
}

// read opens a cleaned deck name inside the root. Paths and symlinks that
// lead out of the root are refused.
func (s *DirSource) read(rel string) ([]byte, error) {
	f, err := os.OpenInRoot(s.root, filepath.FromSlash(rel))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return readLimited(f)
}

// CleanName normalizes a deck name and rejects empty names and path traversal.
func CleanName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("empty deck name")
	}

	for _, segment := range strings.Split(filepath.ToSlash(trimmed), "/") {
		if segment == ".." {
			return "", errors.New("path traversal detected")
		}
	}

	cleaned := strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(trimmed)), "/")
	if cleaned == "" || cleaned == "." {
		return "", errors.New("invalid deck name")
	}
	return cleaned, nil
}
