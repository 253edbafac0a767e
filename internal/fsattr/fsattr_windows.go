//go:build windows

package fsattr

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Supported reports whether this platform has file attributes.
const Supported = true

// Get returns the attributes of path.
func Get(path string) (Attr, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	a, err := windows.GetFileAttributes(p)
	if err != nil {
		return 0, fmt.Errorf("get attributes of %s: %w", path, err)
	}
	return Attr(a), nil
}

// Set adds the attributes in add and removes those in remove.
func Set(path string, add, remove Attr) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	cur, err := windows.GetFileAttributes(p)
	if err != nil {
		return fmt.Errorf("get attributes of %s: %w", path, err)
	}
	next := (cur | uint32(add)) &^ uint32(remove)
	if next == cur {
		return nil
	}
	if err := windows.SetFileAttributes(p, next); err != nil {
		return fmt.Errorf("set attributes of %s: %w", path, err)
	}
	return nil
}
