// Package dataset owns the in-memory share-of-model dataset: loading it
// from CSV, holding it behind a read-mostly handle, and aggregating it into
// the statistics the dashboard renders.
package dataset

import (
	"sync"
	"time"

	"shareofmodel/internal/models"
)

// Store is the process-wide handle to the loaded dataset. It is
// constructed once in main and passed by reference to every consumer.
// Records are immutable after a load; Reload is the only writer.
type Store struct {
	path string

	mu       sync.RWMutex
	records  []models.Record
	loadedAt time.Time
	loadErr  error
}

// Open creates the handle and performs the initial load. A missing or
// unreadable source is recorded on the handle, not returned: the dashboard
// serves an empty state until the file appears and a reload succeeds.
func Open(path string) *Store {
	s := &Store{path: path}
	_ = s.Reload()
	return s
}

// Reload re-reads the dataset from disk and swaps it in atomically. On
// failure the previously loaded records are kept so the dashboard degrades
// to stale data rather than losing it; the error is retained for the UI
// and probes.
func (s *Store) Reload() error {
	records, err := Load(s.path)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadErr = err
	if err != nil {
		return err
	}
	s.records = records
	s.loadedAt = time.Now()
	return nil
}

// Records returns the loaded record set. Callers must treat the slice as
// read-only.
func (s *Store) Records() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Err returns the error from the most recent load attempt, if any.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// LoadedAt returns the time of the last successful load, zero if none.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Path returns the dataset source path.
func (s *Store) Path() string {
	return s.path
}
