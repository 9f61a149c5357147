//go:build !windows

package notify

import "context"

// bringToFront is a no-op where show/focus alone raises the window.
func bringToFront(context.Context) {}
