// Package notify delivers confirmed download completions to the UI boundary.
package notify

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"dropwatch/internal/watcher"
)

// EventDownloadComplete is the named event the frontend subscribes to.
const EventDownloadComplete = "download:complete"

// completionEvent is the wire payload for EventDownloadComplete.
type completionEvent struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
}

// WailsSink publishes completion records as runtime events and raises the
// main window so the user sees the notification. All window manipulation is
// fire-and-forget: the runtime calls are safe from any goroutine and their
// failures are never surfaced.
type WailsSink struct {
	ctx context.Context
	log zerolog.Logger
}

// NewWailsSink creates a sink bound to the wails application context.
func NewWailsSink(ctx context.Context, log zerolog.Logger) *WailsSink {
	return &WailsSink{ctx: ctx, log: log}
}

// Publish emits one structured event per confirmed download and then asks
// the window to come forward.
func (s *WailsSink) Publish(rec watcher.CompletionRecord) {
	evt := completionEvent{
		ID:        uuid.NewString(),
		Name:      rec.Name,
		Path:      rec.Path,
		SizeBytes: rec.SizeBytes,
	}
	runtime.EventsEmit(s.ctx, EventDownloadComplete, evt)
	s.log.Debug().Str("id", evt.ID).Str("name", evt.Name).Msg("completion event emitted")

	s.raise()
}

// raise un-minimizes, shows, and focuses the main window, then applies the
// platform bring-to-front quirk where one exists.
func (s *WailsSink) raise() {
	runtime.WindowUnminimise(s.ctx)
	runtime.WindowShow(s.ctx)
	bringToFront(s.ctx)
}
