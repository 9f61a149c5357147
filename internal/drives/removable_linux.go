//go:build linux

package drives

import (
	"os"
	"path/filepath"
	"strings"
)

// isRemovable consults the block device's sysfs removable flag.
// Partition devices (sda1) resolve through their parent disk (sda).
func isRemovable(device string) bool {
	name := filepath.Base(device)
	if name == "" || name == "." {
		return false
	}

	for candidate := name; candidate != ""; candidate = candidate[:len(candidate)-1] {
		data, err := os.ReadFile(filepath.Join("/sys/block", candidate, "removable"))
		if err == nil {
			return strings.TrimSpace(string(data)) == "1"
		}
	}
	return false
}
