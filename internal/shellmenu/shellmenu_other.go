//go:build !windows

package shellmenu

// Supported reports whether the context menu can be installed here.
const Supported = false

// Install is unavailable off Windows.
func Install(Entry) error { return ErrUnsupported }

// Uninstall is unavailable off Windows.
func Uninstall() error { return ErrUnsupported }

// Installed is unavailable off Windows.
func Installed() (string, error) { return "", ErrUnsupported }
