//go:build !linux

package drives

// isRemovable is not derivable from the partition table alone here; report
// false rather than guessing.
func isRemovable(string) bool { return false }
