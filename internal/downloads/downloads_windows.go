//go:build windows

package downloads

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// lookupDir asks the shell for FOLDERID_Downloads, which follows the folder
// even when the user has relocated it. Falls back to %USERPROFILE%\Downloads.
func lookupDir() (string, error) {
	if path, err := windows.KnownFolderPath(windows.FOLDERID_Downloads, 0); err == nil && path != "" {
		return path, nil
	}

	if profile := os.Getenv("USERPROFILE"); profile != "" {
		return filepath.Join(profile, "Downloads"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Downloads"), nil
}
