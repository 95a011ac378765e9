// Package store persists the list of sync-ups as a single JSON document with
// debounced write-back: every mutation restarts a short timer, and only the
// state present when the timer fires reaches disk.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"syncups/internal/syncup"
)

// FileName is the document written under the data directory.
const FileName = "sync-ups.json"

// DefaultDebounce is the trailing-debounce window for write-back.
const DefaultDebounce = time.Second

// ErrCorrupt reports that the persisted document exists but cannot be
// decoded. Recoverable: callers offer sample data instead of failing.
var ErrCorrupt = errors.New("persisted sync-ups are corrupt")

// ErrNotFound reports an id that is not in the store.
var ErrNotFound = errors.New("sync-up not found")

// Store holds the in-memory list and owns write-back scheduling. All methods
// are safe for the single UI goroutine plus the internal debounce timer.
type Store struct {
	mu      sync.Mutex
	path    string
	syncUps []syncup.SyncUp

	debounce  time.Duration
	timer     *time.Timer
	writeFile func(path string, data []byte) error
	log       zerolog.Logger

	saves int
}

// Option configures a Store.
type Option func(*Store)

// WithDebounce overrides the write-back window.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// WithLogger attaches a logger for write-failure reporting.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithWriteFile substitutes the file writer. Tests use this to count writes
// and capture written bytes without touching disk.
func WithWriteFile(fn func(path string, data []byte) error) Option {
	return func(s *Store) { s.writeFile = fn }
}

// New creates a store backed by the document at path. Call Load before use.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:      path,
		debounce:  DefaultDebounce,
		writeFile: atomicWriteFile,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// atomicWriteFile overwrites path via a temp file and rename so a crash
// mid-write never leaves a truncated document.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".sync-ups-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load hydrates the store from disk. A missing file is a first run and
// yields an empty list; undecodable content returns an error wrapping
// ErrCorrupt so the caller can offer a fallback.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.syncUps = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	var syncUps []syncup.SyncUp
	if err := json.Unmarshal(data, &syncUps); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	s.syncUps = syncUps
	return nil
}

// All returns a copy of the current list.
func (s *Store) All() []syncup.SyncUp {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]syncup.SyncUp, len(s.syncUps))
	copy(out, s.syncUps)
	return out
}

// Get returns the sync-up with the given id.
func (s *Store) Get(id string) (syncup.SyncUp, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, su := range s.syncUps {
		if su.ID == id {
			return su, true
		}
	}
	return syncup.SyncUp{}, false
}

// Len returns the number of stored sync-ups.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.syncUps)
}

// Append adds a sync-up to the end of the list.
func (s *Store) Append(su syncup.SyncUp) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncUps = append(s.syncUps, su)
	s.scheduleSaveLocked()
}

// Update replaces the stored sync-up with the same id.
func (s *Store) Update(su syncup.SyncUp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.syncUps {
		if s.syncUps[i].ID == su.ID {
			s.syncUps[i] = su
			s.scheduleSaveLocked()
			return nil
		}
	}
	return fmt.Errorf("update %s: %w", su.ID, ErrNotFound)
}

// Remove deletes the sync-up with the given id. Removing an absent id is a
// no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.syncUps {
		if s.syncUps[i].ID == id {
			s.syncUps = append(s.syncUps[:i], s.syncUps[i+1:]...)
			s.scheduleSaveLocked()
			return
		}
	}
}

// Replace swaps the whole list. Used by the load-failure fallback to install
// sample data.
func (s *Store) Replace(syncUps []syncup.SyncUp) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncUps = make([]syncup.SyncUp, len(syncUps))
	copy(s.syncUps, syncUps)
	s.scheduleSaveLocked()
}

// scheduleSaveLocked restarts the debounce timer. A burst of mutations
// within the window yields exactly one write of the final state.
func (s *Store) scheduleSaveLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		if err := s.Flush(); err != nil {
			s.log.Error().Err(err).Msg("debounced save failed")
		}
	})
}

// Flush cancels any pending debounce and writes the current state now.
// Write failures are returned but never escalate past logging in callers;
// persistence failure is not fatal to the app.
func (s *Store) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	list := s.syncUps
	if list == nil {
		list = []syncup.SyncUp{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("encode sync-ups: %w", err)
	}
	path := s.path
	write := s.writeFile
	s.saves++
	s.mu.Unlock()

	if err := write(path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Saves reports how many writes have been attempted. Test hook.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Close flushes pending state. Call on shutdown.
func (s *Store) Close() error {
	return s.Flush()
}
