//go:build windows

package notify

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// bringToFront briefly toggles always-on-top. On Windows, focusing a window
// from a background process does not reliably raise it above others.
func bringToFront(ctx context.Context) {
	runtime.WindowSetAlwaysOnTop(ctx, true)
	runtime.WindowSetAlwaysOnTop(ctx, false)
}
