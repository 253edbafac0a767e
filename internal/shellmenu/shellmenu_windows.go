//go:build windows

package shellmenu

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// Supported reports whether the context menu can be installed here.
const Supported = true

// Install writes the menu entry, replacing an existing one.
func Install(e Entry) error {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, KeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("create %s: %w", KeyPath, err)
	}
	defer k.Close()
	if err := k.SetStringValue("", e.Label); err != nil {
		return fmt.Errorf("set label: %w", err)
	}
	if err := k.SetStringValue("Icon", e.Icon); err != nil {
		return fmt.Errorf("set icon: %w", err)
	}

	ck, _, err := registry.CreateKey(registry.CURRENT_USER, CommandKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("create %s: %w", CommandKeyPath, err)
	}
	defer ck.Close()
	if err := ck.SetStringValue("", e.Command); err != nil {
		return fmt.Errorf("set command: %w", err)
	}
	return nil
}

// Uninstall removes the menu entry. A missing entry is not an error.
func Uninstall() error {
	for _, path := range []string{CommandKeyPath, KeyPath} {
		if err := registry.DeleteKey(registry.CURRENT_USER, path); err != nil && !errors.Is(err, registry.ErrNotExist) {
			return fmt.Errorf("delete %s: %w", path, err)
		}
	}
	return nil
}

// Installed returns the current command of the menu entry, or "" when it is
// not installed.
func Installed() (string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, CommandKeyPath, registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer k.Close()
	cmd, _, err := k.GetStringValue("")
	if errors.Is(err, registry.ErrNotExist) {
		return "", nil
	}
	return cmd, err
}
