// Package trash moves files to the platform trash or recycle bin instead of
// deleting them permanently.
package trash

import "errors"

// ErrUnsupported is returned on platforms without a usable trash location.
var ErrUnsupported = errors.New("trash is not supported on this platform")

// Delete moves path to the platform trash. The file can be restored by the
// user through the OS shell; nothing is permanently removed.
func Delete(path string) error {
	return platformDelete(path)
}
