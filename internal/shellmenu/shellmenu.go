// Package shellmenu installs the Explorer context-menu entry that opens the
// remark prompt for a right-clicked folder.
//
// The entry lives under the current user's classes, so no elevation is
// needed:
//
//	HKCU\Software\Classes\Directory\shell\WindowsFolderRemark
//	    (default) = "Add folder remark"
//	    Icon      = "<exe>",0
//	    command\(default) = "<exe>" --prompt "%1"
package shellmenu

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// KeyPath is the menu key below HKEY_CURRENT_USER.
	KeyPath = `Software\Classes\Directory\shell\WindowsFolderRemark`
	// CommandKeyPath holds the command Explorer runs.
	CommandKeyPath = KeyPath + `\command`
	// Label is the text shown in the context menu.
	Label = "Add folder remark"
	// PromptFlag opens the interactive prompt for one folder.
	PromptFlag = "--prompt"
)

// ErrUnsupported is returned where there is no Explorer registry.
var ErrUnsupported = errors.New("context menu is only available on Windows")

// Entry is the registry content of the menu item.
type Entry struct {
	Label   string
	Icon    string
	Command string
}

// NewEntry builds the menu item for the executable at exe. Explorer
// substitutes %1 with the folder path.
func NewEntry(exe string) Entry {
	return Entry{
		Label:   Label,
		Icon:    quote(exe) + ",0",
		Command: fmt.Sprintf("%s %s %s", quote(exe), PromptFlag, quote("%1")),
	}
}

// quote wraps s in double quotes for a Windows command line. Paths cannot
// contain '"', so no escaping is needed.
func quote(s string) string {
	return `"` + s + `"`
}

// Executable returns the absolute path of the running binary with
// symlinks resolved.
func Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}
