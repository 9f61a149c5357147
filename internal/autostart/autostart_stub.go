//go:build !windows

package autostart

type unsupportedManager struct{}

func newManager() Manager {
	return unsupportedManager{}
}

func (unsupportedManager) Enabled() (bool, error) { return false, nil }
func (unsupportedManager) Enable() error          { return ErrUnsupported }
func (unsupportedManager) Disable() error         { return nil }
