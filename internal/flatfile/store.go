// Package flatfile is a minimal file-per-key store. It exists to stand in
// for the flat storage older installations wrote to; the project store
// migrates its contents into the SQLite store on first load.
package flatfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ganot/lumina/internal/repository"
)

var keySanitizePattern = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Store keeps one JSON file per key under a root directory.
type Store struct {
	root string
	mu   sync.Mutex
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &Store{root: dir}, nil
}

func (s *Store) path(key string) string {
	name := keySanitizePattern.ReplaceAllString(key, "_")
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return filepath.Join(s.root, name)
}

// Get reads the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read key %q: %w", key, err)
	}
	return data, nil
}

// Set writes value under key. The write goes through a temp file and a
// rename so a crash never leaves a truncated value behind.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}

// Delete removes key; deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}
