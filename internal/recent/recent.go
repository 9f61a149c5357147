// Package recent persists the short list of recently used destination folders.
package recent

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// MaxEntries bounds the list length; the oldest entry is evicted beyond it.
const MaxEntries = 5

// state is the on-disk shape of the store.
type state struct {
	RecentDestinations []string `json:"recent_destinations"`
}

// Store reads and writes the recent-destinations file. There is no in-memory
// cache: every read goes to disk, so two reads without an intervening Add
// return identical lists. Reads are never fatal — a missing, corrupt, or
// unreadable file is an empty list. Writes are fire-and-forget; failures are
// logged and swallowed.
//
// The backing file is accessed without a lock. Concurrent Adds race and the
// last writer wins, which is acceptable at desktop call frequency.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// DefaultPath returns the per-application location of the recent file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dropwatch", "recent.json"), nil
}

// Recent returns the current list, most-recently-used first.
func (s *Store) Recent() []string {
	return s.load().RecentDestinations
}

// Add moves path to the front of the list, deduplicating any existing
// occurrence, truncates to MaxEntries, and persists the result.
func (s *Store) Add(path string) {
	st := s.load()

	updated := make([]string, 0, len(st.RecentDestinations)+1)
	updated = append(updated, path)
	for _, p := range st.RecentDestinations {
		if p != path {
			updated = append(updated, p)
		}
	}
	if len(updated) > MaxEntries {
		updated = updated[:MaxEntries]
	}

	s.save(state{RecentDestinations: updated})
}

// load reads the file at call time, falling back to an empty list.
func (s *Store) load() state {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Debug().Str("path", s.path).Err(err).Msg("recent destinations unreadable")
		}
		return state{RecentDestinations: []string{}}
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		s.log.Debug().Str("path", s.path).Err(err).Msg("recent destinations corrupt")
		return state{RecentDestinations: []string{}}
	}
	if st.RecentDestinations == nil {
		st.RecentDestinations = []string{}
	}
	return st
}

// save overwrites the full list via a temp-file rename so a crash mid-write
// never leaves a truncated file behind.
func (s *Store) save(st state) {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		s.log.Debug().Err(err).Msg("failed to encode recent destinations")
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		s.log.Debug().Str("path", s.path).Err(err).Msg("failed to create config directory")
		return
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		s.log.Debug().Str("path", tmp).Err(err).Msg("failed to write recent destinations")
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		s.log.Debug().Str("path", s.path).Err(err).Msg("failed to replace recent destinations")
	}
}
