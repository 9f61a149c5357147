//go:build linux

package trash

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// platformDelete implements the freedesktop.org Trash specification: the file
// moves into $XDG_DATA_HOME/Trash/files and a matching .trashinfo records its
// origin so the desktop shell can restore it.
func platformDelete(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return err
	}

	trashDir, err := trashRoot()
	if err != nil {
		return err
	}
	filesDir := filepath.Join(trashDir, "files")
	infoDir := filepath.Join(trashDir, "info")
	for _, d := range []string{filesDir, infoDir} {
		if err := os.MkdirAll(d, 0700); err != nil {
			return fmt.Errorf("failed to prepare trash directory: %w", err)
		}
	}

	name := uniqueTrashName(filesDir, filepath.Base(abs))

	info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		escapeTrashPath(abs), time.Now().Format("2006-01-02T15:04:05"))
	infoPath := filepath.Join(infoDir, name+".trashinfo")
	if err := os.WriteFile(infoPath, []byte(info), 0600); err != nil {
		return fmt.Errorf("failed to write trash info: %w", err)
	}

	if err := os.Rename(abs, filepath.Join(filesDir, name)); err != nil {
		os.Remove(infoPath)
		return fmt.Errorf("failed to move file to trash: %w", err)
	}
	return nil
}

// trashRoot returns the user trash directory per the XDG base dir spec.
func trashRoot() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "Trash"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "Trash"), nil
}

// uniqueTrashName picks a name that does not collide with an earlier
// trashed file of the same name.
func uniqueTrashName(filesDir, base string) string {
	name := base
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(filesDir, name)); os.IsNotExist(err) {
			return name
		}
		ext := filepath.Ext(base)
		name = base[:len(base)-len(ext)] + "." + strconv.Itoa(i) + ext
	}
}

// escapeTrashPath percent-encodes each path segment as the spec requires,
// keeping the separators readable.
func escapeTrashPath(path string) string {
	segs := strings.Split(filepath.Clean(path), "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return strings.Join(segs, "/")
}
