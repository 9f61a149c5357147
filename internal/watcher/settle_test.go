package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// collectRecords is a test helper that gathers confirmed records.
type collectRecords struct {
	mu   sync.Mutex
	recs []CompletionRecord
}

func (c *collectRecords) confirm(rec CompletionRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs = append(c.recs, rec)
}

func (c *collectRecords) all() []CompletionRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CompletionRecord, len(c.recs))
	copy(out, c.recs)
	return out
}

// TestSettler_StableFileConfirmed verifies that a file which survives the
// quiescence delay yields exactly one record with the size at confirmation time.
func TestSettler_StableFileConfirmed(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "report.pdf")
	content := []byte("settled content")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	collector := &collectRecords{}
	s := NewSettler(50*time.Millisecond, collector.confirm, zerolog.Nop())

	s.Schedule(path)

	time.Sleep(200 * time.Millisecond)

	recs := collector.all()
	if len(recs) != 1 {
		t.Fatalf("expected 1 completion record, got %d", len(recs))
	}
	if recs[0].Name != "report.pdf" {
		t.Errorf("expected name report.pdf, got %s", recs[0].Name)
	}
	if recs[0].Path != path {
		t.Errorf("expected path %s, got %s", path, recs[0].Path)
	}
	if recs[0].SizeBytes != int64(len(content)) {
		t.Errorf("expected size %d, got %d", len(content), recs[0].SizeBytes)
	}
}

// TestSettler_DeletedFileDropped verifies that a candidate removed during the
// quiescence delay produces no record and no error.
func TestSettler_DeletedFileDropped(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "vanishing.zip")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	collector := &collectRecords{}
	s := NewSettler(100*time.Millisecond, collector.confirm, zerolog.Nop())

	s.Schedule(path)
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove test file: %v", err)
	}

	time.Sleep(250 * time.Millisecond)

	if recs := collector.all(); len(recs) != 0 {
		t.Errorf("expected no records for deleted candidate, got %d", len(recs))
	}
}

// TestSettler_ReschedulingCoalesces verifies that repeated events for the same
// path before settlement produce a single confirmation.
func TestSettler_ReschedulingCoalesces(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bursty.iso")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	var confirmed atomic.Int32
	s := NewSettler(80*time.Millisecond, func(CompletionRecord) {
		confirmed.Add(1)
	}, zerolog.Nop())

	for i := 0; i < 5; i++ {
		s.Schedule(path)
		time.Sleep(10 * time.Millisecond)
	}

	if !s.InFlight(path) {
		t.Error("expected path to be in flight after scheduling")
	}

	time.Sleep(300 * time.Millisecond)

	if got := confirmed.Load(); got != 1 {
		t.Errorf("expected exactly 1 confirmation after coalescing, got %d", got)
	}
	if s.InFlight(path) {
		t.Error("expected path to leave the in-flight set after settling")
	}
}

// TestSettler_IndependentTimers verifies that candidates settle concurrently
// rather than serializing behind each other's delay.
func TestSettler_IndependentTimers(t *testing.T) {
	tmpDir := t.TempDir()
	paths := make([]string, 4)
	for i := range paths {
		paths[i] = filepath.Join(tmpDir, "file"+string(rune('a'+i))+".bin")
		if err := os.WriteFile(paths[i], []byte("data"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}
	}

	var confirmed atomic.Int32
	s := NewSettler(100*time.Millisecond, func(CompletionRecord) {
		confirmed.Add(1)
	}, zerolog.Nop())

	start := time.Now()
	for _, p := range paths {
		s.Schedule(p)
	}
	if got := s.PendingCount(); got != len(paths) {
		t.Errorf("expected %d pending candidates, got %d", len(paths), got)
	}

	// All four should settle within roughly one delay, not four.
	deadline := time.After(2 * time.Second)
	for confirmed.Load() < int32(len(paths)) {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for confirmations, got %d", confirmed.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("settling %d candidates took %v, expected them to run concurrently", len(paths), elapsed)
	}
}

// TestSettler_CancelAll verifies shutdown suppresses pending confirmations.
func TestSettler_CancelAll(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cancelled.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	var confirmed atomic.Int32
	s := NewSettler(80*time.Millisecond, func(CompletionRecord) {
		confirmed.Add(1)
	}, zerolog.Nop())

	s.Schedule(path)
	s.CancelAll()

	time.Sleep(200 * time.Millisecond)

	if got := confirmed.Load(); got != 0 {
		t.Errorf("expected no confirmations after CancelAll, got %d", got)
	}
	if got := s.PendingCount(); got != 0 {
		t.Errorf("expected empty in-flight set, got %d", got)
	}
}
