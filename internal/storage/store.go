// Package storage is the local-disk file store collaborator: it saves
// uploaded documents under a single upload root and resolves stored
// references back to readable paths.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store is a file store rooted at a single upload directory. References it
// hands out (and accepts) are paths relative to that root; absolute-looking
// references are reinterpreted relative to it.
type Store struct {
	root string
}

// NewStore creates the upload root if needed and returns a store over it.
func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("upload root is empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &Store{root: abs}, nil
}

// Save writes the content under a fresh uuid-prefixed name derived from the
// original file name and returns the stored reference.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	base := sanitizeName(filepath.Base(filename))
	ref := uuid.NewString() + "_" + base

	f, err := os.Create(filepath.Join(s.root, ref))
	if err != nil {
		return "", fmt.Errorf("create stored file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write stored file: %w", err)
	}
	return ref, nil
}

// Resolve maps a stored reference to an absolute path inside the upload root.
// A reference that would escape the root is refused.
func (s *Store) Resolve(ref string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		return "", fmt.Errorf("stored reference is empty")
	}

	// Absolute-looking references are interpreted relative to the root.
	rel := strings.TrimLeft(filepath.ToSlash(ref), "/")
	path := filepath.Join(s.root, filepath.FromSlash(rel))

	cleaned, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve stored reference: %w", err)
	}
	if cleaned != s.root && !strings.HasPrefix(cleaned, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("stored reference escapes the upload root: %s", ref)
	}
	return cleaned, nil
}

// Root returns the absolute upload root.
func (s *Store) Root() string {
	return s.root
}

// sanitizeName keeps stored names shell- and URL-friendly.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
