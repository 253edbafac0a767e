//go:build !windows

package fsattr

import "os"

// Supported reports whether this platform has file attributes.
const Supported = false

// Get returns no attributes. It fails only if path does not exist.
func Get(path string) (Attr, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, err
	}
	return 0, nil
}

// Set does nothing beyond checking that path exists.
func Set(path string, add, remove Attr) error {
	_, err := os.Stat(path)
	return err
}
