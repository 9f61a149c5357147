//go:build !windows

package downloads

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// lookupDir resolves the downloads directory from the XDG user-dirs file
// where one exists (Linux desktops), otherwise ~/Downloads. macOS has no
// user-dirs file, so the fallback applies there.
func lookupDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	cfgHome := os.Getenv("XDG_CONFIG_HOME")
	if cfgHome == "" {
		cfgHome = filepath.Join(home, ".config")
	}
	if path, err := parseUserDirs(filepath.Join(cfgHome, "user-dirs.dirs"), home); err == nil {
		return path, nil
	}

	return filepath.Join(home, "Downloads"), nil
}

// parseUserDirs extracts XDG_DOWNLOAD_DIR from the user-dirs.dirs file.
// Lines look like: XDG_DOWNLOAD_DIR="$HOME/Downloads"
func parseUserDirs(path, home string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || !strings.HasPrefix(line, "XDG_DOWNLOAD_DIR") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		val := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		val = strings.ReplaceAll(val, "$HOME", home)
		if strings.HasPrefix(val, "~/") {
			val = filepath.Join(home, val[2:])
		}
		if val != "" {
			return filepath.Clean(val), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", errors.New("no XDG_DOWNLOAD_DIR entry")
}
