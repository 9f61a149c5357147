package recent

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "recent.json"), zerolog.Nop())
}

// TestStore_EmptyOnMissingFile verifies a store with no backing file reads
// as an empty list, never an error.
func TestStore_EmptyOnMissingFile(t *testing.T) {
	s := newTestStore(t)
	if got := s.Recent(); len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}

// TestStore_EmptyOnCorruptFile verifies corrupt JSON falls back to empty.
func TestStore_EmptyOnCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	s := NewStore(path, zerolog.Nop())
	if got := s.Recent(); len(got) != 0 {
		t.Errorf("expected empty list for corrupt file, got %v", got)
	}
}

// TestStore_AddOrdersMostRecentFirst verifies insertion order.
func TestStore_AddOrdersMostRecentFirst(t *testing.T) {
	s := newTestStore(t)

	s.Add("/dest/a")
	s.Add("/dest/b")
	s.Add("/dest/c")

	want := []string{"/dest/c", "/dest/b", "/dest/a"}
	if got := s.Recent(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestStore_AddExistingMovesToFront verifies re-adding a path promotes it
// without duplicating it.
func TestStore_AddExistingMovesToFront(t *testing.T) {
	s := newTestStore(t)

	s.Add("/dest/a")
	s.Add("/dest/b")
	s.Add("/dest/a")

	want := []string{"/dest/a", "/dest/b"}
	if got := s.Recent(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestStore_CapEvictsOldest verifies a sixth distinct path evicts position 5.
func TestStore_CapEvictsOldest(t *testing.T) {
	s := newTestStore(t)

	paths := []string{"/d/1", "/d/2", "/d/3", "/d/4", "/d/5", "/d/6"}
	for _, p := range paths {
		s.Add(p)
	}

	want := []string{"/d/6", "/d/5", "/d/4", "/d/3", "/d/2"}
	got := s.Recent()
	if len(got) != MaxEntries {
		t.Fatalf("expected %d entries, got %d", MaxEntries, len(got))
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestStore_ReadIsIdempotent verifies reads without an intervening Add
// return identical lists.
func TestStore_ReadIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	s.Add("/dest/a")
	s.Add("/dest/b")

	first := s.Recent()
	second := s.Recent()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("consecutive reads differ: %v vs %v", first, second)
	}
}

// TestStore_PersistsAcrossInstances verifies write-through durability.
func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent.json")

	NewStore(path, zerolog.Nop()).Add("/dest/a")

	reopened := NewStore(path, zerolog.Nop())
	want := []string{"/dest/a"}
	if got := reopened.Recent(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v after reopen, got %v", want, got)
	}
}

// TestStore_WriteFailureSwallowed verifies Add never panics or errors when
// the backing location cannot be written.
func TestStore_WriteFailureSwallowed(t *testing.T) {
	// Point the store at a path whose parent is a regular file, so MkdirAll fails.
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create blocker: %v", err)
	}

	s := NewStore(filepath.Join(blocker, "recent.json"), zerolog.Nop())
	s.Add("/dest/a") // must not panic

	if got := s.Recent(); len(got) != 0 {
		t.Errorf("expected empty list after failed write, got %v", got)
	}
}
