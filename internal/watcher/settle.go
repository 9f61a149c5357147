// Package watcher bridges filesystem change notifications to download
// completion notifications.
package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultSettleDelay is the quiescence interval a candidate must survive
// before it is confirmed. Browsers typically close and rename the file well
// within this window.
const DefaultSettleDelay = 500 * time.Millisecond

// CompletionRecord is the confirmed result of a settled download.
// It is immutable once constructed and handed to the sink exactly once.
type CompletionRecord struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
}

// Settler confirms candidate paths after a fixed quiescence delay.
// Each candidate settles on its own timer, so unrelated downloads are never
// head-of-line blocked behind one another. Re-scheduling a path that is
// already in flight resets its timer, coalescing bursts of events for the
// same file into a single confirmation.
type Settler struct {
	delay   time.Duration
	confirm func(CompletionRecord)
	log     zerolog.Logger

	mu       sync.Mutex
	inflight map[string]*time.Timer
}

// NewSettler creates a Settler that calls confirm for every candidate that
// still exists as a regular file after the delay.
func NewSettler(delay time.Duration, confirm func(CompletionRecord), log zerolog.Logger) *Settler {
	if delay <= 0 {
		delay = DefaultSettleDelay
	}
	return &Settler{
		delay:    delay,
		confirm:  confirm,
		inflight: make(map[string]*time.Timer),
		log:      log,
	}
}

// Schedule queues a candidate path for settle confirmation.
// If the path is already in flight its timer is reset.
func (s *Settler) Schedule(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, exists := s.inflight[path]; exists {
		timer.Stop()
	}

	s.inflight[path] = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		delete(s.inflight, path)
		s.mu.Unlock()

		// Confirm outside the lock so a slow sink never stalls scheduling.
		if rec, ok := s.settle(path); ok && s.confirm != nil {
			s.confirm(rec)
		}
	})
}

// settle re-reads the candidate's metadata after the quiescence delay.
// A path that vanished or turned out not to be a regular file is dropped
// silently; that is an expected race, not an error.
func (s *Settler) settle(path string) (CompletionRecord, bool) {
	info, err := os.Stat(path)
	if err != nil {
		s.log.Debug().Str("path", path).Err(err).Msg("candidate vanished before settle")
		return CompletionRecord{}, false
	}
	if !info.Mode().IsRegular() {
		s.log.Debug().Str("path", path).Msg("candidate is not a regular file")
		return CompletionRecord{}, false
	}

	return CompletionRecord{
		Name:      filepath.Base(path),
		Path:      path,
		SizeBytes: info.Size(),
	}, true
}

// CancelAll stops every pending settle timer. Used during shutdown to
// prevent confirmations from firing after the watcher has stopped.
func (s *Settler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for path, timer := range s.inflight {
		timer.Stop()
		delete(s.inflight, path)
	}
}

// InFlight reports whether the path currently has a pending settle timer.
func (s *Settler) InFlight(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.inflight[path]
	return exists
}

// PendingCount returns the number of candidates awaiting confirmation.
func (s *Settler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inflight)
}
