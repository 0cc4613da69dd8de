package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// Store holds cached asset bodies grouped by cache version.
type Store interface {
	// Versions lists every version that currently has a cache.
	Versions() ([]string, error)
	// DeleteVersion removes a version's cache entirely.
	DeleteVersion(version string) error
	// Put stores the body for url under version. A Put fully replaces
	// any previous entry; partially written entries are never readable.
	Put(version, url string, entry Entry) error
	// Get returns the cached entry for url under version.
	Get(version, url string) (Entry, bool, error)
}

// Entry is one cached response.
type Entry struct {
	Body        []byte
	ContentType string
}

var _ Store = (*FSStore)(nil)

// FSStore keeps one directory per cache version, one file per asset URL
// (keyed by URL hash). Writes go through a temp file and rename so a
// crashed write never leaves a readable partial entry.
type FSStore struct {
	root string
}

// NewFSStore creates a filesystem store rooted at dir.
func NewFSStore(dir string) *FSStore {
	return &FSStore{root: dir}
}

func urlKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

func (s *FSStore) entryPath(version, url string) string {
	return filepath.Join(s.root, version, urlKey(url))
}

func (s *FSStore) Versions() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list cache versions: %w", err)
	}

	var versions []string
	for _, entry := range entries {
		if entry.IsDir() {
			versions = append(versions, entry.Name())
		}
	}

	return versions, nil
}

func (s *FSStore) DeleteVersion(version string) error {
	if version == "" {
		return fmt.Errorf("version cannot be empty")
	}

	if err := os.RemoveAll(filepath.Join(s.root, version)); err != nil {
		return fmt.Errorf("failed to delete cache version %q: %w", version, err)
	}

	return nil
}

func (s *FSStore) Put(version, url string, entry Entry) error {
	if version == "" {
		return fmt.Errorf("version cannot be empty")
	}
	if url == "" {
		return fmt.Errorf("url cannot be empty")
	}

	dir := filepath.Join(s.root, version)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	path := s.entryPath(version, url)
	tmp, err := os.CreateTemp(dir, ".put-*")
	if err != nil {
		return fmt.Errorf("failed to create temp entry: %w", err)
	}

	// Content type travels on the first line; body follows
	payload := append([]byte(entry.ContentType+"\n"), entry.Body...)
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close cache entry: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to commit cache entry: %w", err)
	}

	return nil
}

func (s *FSStore) Get(version, url string) (Entry, bool, error) {
	raw, err := os.ReadFile(s.entryPath(version, url))
	if os.IsNotExist(err) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	contentType := ""
	body := raw
	for i, b := range raw {
		if b == '\n' {
			contentType = string(raw[:i])
			body = raw[i+1:]
			break
		}
	}

	return Entry{Body: body, ContentType: contentType}, true, nil
}
