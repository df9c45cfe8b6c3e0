// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/pdiddy/cord-explorer/internal/clean"
	"github.com/pdiddy/cord-explorer/internal/load"
	"github.com/pdiddy/cord-explorer/internal/table"
)

type cacheKey struct {
	path    string
	modTime time.Time
	size    int64
	maxRows int
}

// Store holds the cleaned dataset the dashboards read. The file at path is
// loaded and cleaned once per (path, modification time, max rows); an
// upload replaces the dataset and takes precedence over the file.
type Store struct {
	path string
	opts load.Options

	mu       sync.RWMutex
	key      cacheKey
	data     *table.Table
	source   string
	uploaded bool
}

// NewStore returns a store reading path with opts.
func NewStore(path string, opts load.Options) *Store {
	return &Store{path: path, opts: opts, source: path}
}

// Path returns the configured data file path.
func (s *Store) Path() string { return s.path }

// Source names the active dataset: the file path or the uploaded file name.
func (s *Store) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// View calls fn with the current cleaned table and its source name while
// holding a read lock. fn must not retain the table after it returns and
// must not call back into the store.
func (s *Store) View(fn func(t *table.Table, source string) error) error {
	if err := s.refresh(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data, s.source)
}

// refresh reloads the file when the cached copy is stale.
func (s *Store) refresh() error {
	s.mu.RLock()
	uploaded, cached := s.uploaded, s.key
	s.mu.RUnlock()
	if uploaded {
		return nil
	}

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", load.ErrMissingFile, err)
		}
		return fmt.Errorf("checking %s: %w", s.path, err)
	}
	key := cacheKey{path: s.path, modTime: info.ModTime(), size: info.Size(), maxRows: s.opts.MaxRows}
	if cached == key {
		return nil
	}

	raw, err := load.Load(s.path, s.opts)
	if err != nil {
		return err
	}
	cleaned := clean.Clean(raw)
	raw.Release()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uploaded {
		cleaned.Release()
		return nil
	}
	s.replace(cleaned, s.path)
	s.key = key
	return nil
}

// Upload parses r as a metadata CSV and makes it the active dataset.
// It returns the number of rows loaded. Malformed input leaves the current
// dataset in place.
func (s *Store) Upload(r io.Reader, name string) (int, error) {
	raw, err := load.Read(r, s.opts)
	if err != nil {
		return 0, err
	}
	cleaned := clean.Clean(raw)
	raw.Release()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.replace(cleaned, name)
	s.uploaded = true
	s.key = cacheKey{}
	return cleaned.Len(), nil
}

// Close releases the cached dataset.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replace(nil, s.path)
	s.uploaded = false
	s.key = cacheKey{}
}

// replace swaps in t. Callers hold the write lock, so no reader still
// holds the previous table.
func (s *Store) replace(t *table.Table, source string) {
	if s.data != nil {
		s.data.Release()
	}
	s.data = t
	s.source = source
}
