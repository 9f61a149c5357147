// Package autostart manages launching the application at user login.
package autostart

import "errors"

// ErrUnsupported is returned by platforms without an autostart mechanism here.
var ErrUnsupported = errors.New("autostart is not supported on this platform")

// Manager toggles launch-at-login for the current user.
type Manager interface {
	// Enabled reports whether autostart is currently registered.
	Enabled() (bool, error)
	// Enable registers the running executable to start at login.
	Enable() error
	// Disable removes the registration. Disabling when not registered is a no-op.
	Disable() error
}

// New returns the Manager for the host platform.
func New() Manager {
	return newManager()
}
