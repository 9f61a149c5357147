// Package app wires the watcher, file operations, and stores to the UI shell.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"dropwatch/internal/autostart"
	"dropwatch/internal/config"
	"dropwatch/internal/downloads"
	"dropwatch/internal/drives"
	"dropwatch/internal/fileops"
	"dropwatch/internal/notify"
	"dropwatch/internal/recent"
	"dropwatch/internal/trash"
	"dropwatch/internal/watcher"
)

// App is the backend bound to the UI. Its exported methods are callable from
// the frontend; the download watcher runs as a background task owned by the
// application root.
type App struct {
	ctx     context.Context
	log     zerolog.Logger
	cfg     *config.Config
	cfgPath string
	store   *recent.Store
	auto    autostart.Manager
	watcher *watcher.Watcher
	cancel  context.CancelFunc
}

// New creates the application backend. Settings and the recency store fall
// back to defaults when their files are unavailable; nothing here can fail
// startup.
func New(log zerolog.Logger) *App {
	cfgPath, err := config.Path()
	if err != nil {
		log.Warn().Err(err).Msg("config directory unavailable, settings will not persist")
	}

	recentPath, err := recent.DefaultPath()
	if err != nil {
		log.Warn().Err(err).Msg("config directory unavailable, recent destinations will not persist")
	}

	return &App{
		log:     log,
		cfg:     config.LoadOrDefault(cfgPath, log),
		cfgPath: cfgPath,
		store:   recent.NewStore(recentPath, log),
		auto:    autostart.New(),
	}
}

// Startup is called by the UI shell once the runtime context is available.
// It launches the download watcher for the life of the process.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	watchCtx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	sink := notify.NewWailsSink(ctx, a.log)
	a.watcher = watcher.New(a.cfg.WatcherConfig(), sink, a.log)

	go a.runWatcher(watchCtx)
}

// Shutdown stops the background watcher cleanly on application exit.
func (a *App) Shutdown(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}
}

// runWatcher resolves the downloads folder and watches it until cancelled.
// Failure to resolve or subscribe leaves the feature inactive for this
// process; the rest of the application keeps working.
func (a *App) runWatcher(ctx context.Context) {
	dir, err := downloads.Dir()
	if err != nil {
		a.log.Error().Err(err).Msg("downloads folder unresolved, download watcher inactive")
		return
	}
	a.watcher.Run(ctx, dir)
}

// ListDirectory returns the members of path for the file browser.
func (a *App) ListDirectory(path string) ([]fileops.Entry, error) {
	return fileops.ListDirectory(path)
}

// MoveFile moves source to dest, falling back to copy-then-delete across volumes.
func (a *App) MoveFile(source, dest string) error {
	return fileops.MoveFile(source, dest)
}

// DeleteFile moves path to the platform trash.
func (a *App) DeleteFile(path string) error {
	return trash.Delete(path)
}

// CreateFolder creates the directory, including missing parents.
func (a *App) CreateFolder(path string) error {
	return fileops.CreateFolder(path)
}

// GetRecentDestinations returns the recently used destination folders,
// most recent first.
func (a *App) GetRecentDestinations() []string {
	return a.store.Recent()
}

// AddRecentDestination records a destination folder as just used.
func (a *App) AddRecentDestination(path string) {
	a.store.Add(path)
}

// GetDrives enumerates mounted volumes with capacity information.
func (a *App) GetDrives() ([]drives.Drive, error) {
	ctx := a.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return drives.List(ctx)
}

// GetDownloadsDir returns the watched downloads folder.
func (a *App) GetDownloadsDir() (string, error) {
	return downloads.Dir()
}

// GetAutostart reports whether launch-at-login is registered.
func (a *App) GetAutostart() (bool, error) {
	return a.auto.Enabled()
}

// SetAutostart registers or unregisters launch-at-login and persists the
// preference.
func (a *App) SetAutostart(enabled bool) error {
	var err error
	if enabled {
		err = a.auto.Enable()
	} else {
		err = a.auto.Disable()
	}
	if err != nil {
		return err
	}

	a.cfg.Autostart = enabled
	if a.cfgPath != "" {
		if err := config.Save(a.cfg, a.cfgPath); err != nil {
			a.log.Warn().Err(err).Msg("failed to persist autostart preference")
		}
	}
	return nil
}
