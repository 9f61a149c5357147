// Package downloads resolves the user's well-known downloads folder.
package downloads

import "sync"

var (
	dirOnce   sync.Once
	cachedDir string
	cacheErr  error
)

// Dir returns the user's downloads directory, cached across calls.
// Resolution is platform-specific; see the per-platform lookup files.
func Dir() (string, error) {
	dirOnce.Do(func() {
		cachedDir, cacheErr = lookupDir()
	})
	return cachedDir, cacheErr
}
