//go:build !windows && !linux && !darwin

package trash

func platformDelete(string) error {
	return ErrUnsupported
}
