// Package fileops implements the file-management commands exposed to the UI.
package fileops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// ErrPathNotExist is returned by ListDirectory for a missing path. Its text
// is shown to the user as-is.
var ErrPathNotExist = errors.New("Path does not exist")

// Entry describes one directory member for the UI.
type Entry struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	IsDir bool   `json:"is_dir"`
	Size  int64  `json:"size"`
}

// ListDirectory returns the immediate members of path, directories first,
// each group sorted by name.
func ListDirectory(path string) ([]Entry, error) {
	members, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrPathNotExist
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(members))
	for _, m := range members {
		entry := Entry{
			Name:  m.Name(),
			Path:  filepath.Join(path, m.Name()),
			IsDir: m.IsDir(),
		}
		// Size is best-effort; an entry that vanished mid-listing stays at 0.
		if info, err := m.Info(); err == nil && !m.IsDir() {
			entry.Size = info.Size()
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// MoveFile moves src to dst, attempting an atomic rename first and falling
// back to copy-then-delete when the rename fails (typically a cross-volume
// move). The copy fallback never leaves a partial destination behind: on a
// copy failure the source is intact and the partial destination is removed.
func MoveFile(src, dst string) error {
	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("source does not exist: %s", src)
		}
		return err
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	return copyThenDelete(src, dst)
}

// copyThenDelete streams src to dst and removes the original.
// Sub-step failures surface with the prefix the UI expects.
func copyThenDelete(src, dst string) error {
	if err := copyFile(src, dst); err != nil {
		os.Remove(dst)
		return fmt.Errorf("Copy failed: %v", err)
	}

	if err := os.Remove(src); err != nil {
		// Keep exactly one copy: the source survived, drop the new one.
		os.Remove(dst)
		return fmt.Errorf("Delete original failed: %v", err)
	}
	return nil
}

// copyFile copies src to dst preserving the source file mode.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// CreateFolder creates the directory and any missing parents. Calling it
// for an existing directory is a no-op.
func CreateFolder(path string) error {
	return os.MkdirAll(path, 0755)
}
