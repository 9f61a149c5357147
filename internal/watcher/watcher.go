// Package watcher bridges filesystem change notifications to download
// completion notifications.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"dropwatch/internal/classify"
)

// Sink receives a confirmed completion record once per settled candidate
// and forwards it to the UI boundary.
type Sink interface {
	Publish(rec CompletionRecord)
}

// Config contains watcher settings.
type Config struct {
	SettleDelay    time.Duration // Quiescence delay before confirming a candidate
	IgnoreSuffixes []string      // In-progress suffixes (default: classify defaults)
}

// DefaultConfig returns a Config with the reference behavior.
func DefaultConfig() *Config {
	return &Config{
		SettleDelay:    DefaultSettleDelay,
		IgnoreSuffixes: classify.DefaultInProgressSuffixes(),
	}
}

// Watcher owns a non-recursive subscription to filesystem change events for
// one directory and drives each event through classification and settling.
type Watcher struct {
	config     *Config
	classifier *classify.Classifier
	settler    *Settler
	sink       Sink
	log        zerolog.Logger

	fsWatcher *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup
}

// New creates a Watcher that publishes confirmed completions to sink.
// If config is nil, default configuration is used.
func New(config *Config, sink Sink, log zerolog.Logger) *Watcher {
	if config == nil {
		config = DefaultConfig()
	}
	w := &Watcher{
		config:     config,
		classifier: classify.New(config.IgnoreSuffixes),
		sink:       sink,
		log:        log,
		done:       make(chan struct{}),
	}
	w.settler = NewSettler(config.SettleDelay, w.publish, log)
	return w
}

// Start begins watching the directory (non-recursive) for new files.
// It returns an error if the subscription cannot be established; per the
// error model that failure is fatal to the watch feature but must not crash
// the process, so callers log it and move on.
func (w *Watcher) Start(dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.fsWatcher.Add(absDir); err != nil {
		w.fsWatcher.Close()
		return err
	}

	w.done = make(chan struct{})
	w.wg.Add(1)
	go w.processEvents()

	w.log.Info().Str("dir", absDir).Msg("watching for completed downloads")
	return nil
}

// Run watches dir until ctx is cancelled, then stops.
// It is intended to be launched as the long-lived background task owned by
// the application root.
func (w *Watcher) Run(ctx context.Context, dir string) {
	if err := w.Start(dir); err != nil {
		w.log.Error().Str("dir", dir).Err(err).Msg("download watcher inactive")
		return
	}
	<-ctx.Done()
	w.Stop()
}

// Stop shuts down the watcher and cancels all pending settle timers.
func (w *Watcher) Stop() {
	select {
	case <-w.done:
		return // already stopped
	default:
	}
	close(w.done)
	w.wg.Wait()

	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}
	w.settler.CancelAll()
}

// processEvents is the single event loop goroutine.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("filesystem subscription error")
		}
	}
}

// handleEvent classifies one change notification and schedules candidates
// for settle confirmation.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	op := mapOp(event.Op)
	result := w.classifier.Classify(event.Name, op)

	w.log.Debug().
		Str("path", event.Name).
		Str("op", event.Op.String()).
		Stringer("result", result).
		Msg("change event")

	if result == classify.Candidate {
		w.settler.Schedule(event.Name)
	}
}

// publish forwards a confirmed record to the sink.
func (w *Watcher) publish(rec CompletionRecord) {
	w.log.Info().
		Str("name", rec.Name).
		Int64("size_bytes", rec.SizeBytes).
		Msg("download complete")
	if w.sink != nil {
		w.sink.Publish(rec)
	}
}

// IsRunning returns true if the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	select {
	case <-w.done:
		return false
	default:
		return w.fsWatcher != nil
	}
}

// mapOp reduces an fsnotify op bitmask to the classifier's change kinds.
// A rename shows up as fsnotify.Rename on the old name and fsnotify.Create
// on the new one, so both kinds must pass through classification.
func mapOp(op fsnotify.Op) classify.Op {
	switch {
	case op.Has(fsnotify.Create):
		return classify.OpCreate
	case op.Has(fsnotify.Rename):
		return classify.OpRename
	default:
		return classify.OpOther
	}
}
