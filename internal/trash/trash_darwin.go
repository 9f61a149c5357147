//go:build darwin

package trash

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// platformDelete asks Finder to trash the file, which keeps "Put Back"
// working. If Finder scripting is unavailable the file moves to ~/.Trash
// directly.
func platformDelete(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return err
	}

	script := fmt.Sprintf(`tell application "Finder" to delete POSIX file %q`, abs)
	if err := exec.Command("osascript", "-e", script).Run(); err == nil {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return os.Rename(abs, filepath.Join(home, ".Trash", filepath.Base(abs)))
}
