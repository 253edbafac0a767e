package doctor

import (
	"fmt"

	"github.com/raphi011/remark/internal/desktopini"
	"github.com/raphi011/remark/internal/fsattr"
)

// Fix applies the repair for a single issue of folder.
func Fix(folder string, issue Issue) error {
	switch issue.FixAction {
	case FixReencode:
		ini := desktopini.Path(folder)
		// Hidden system files cannot be truncated on Windows.
		wasHidden, err := fsattr.Has(ini, fsattr.Hidden|fsattr.System)
		if err != nil {
			return err
		}
		if err := fsattr.ClearHiddenSystem(ini); err != nil {
			return err
		}
		if _, err := desktopini.FixEncoding(folder); err != nil {
			return err
		}
		if wasHidden {
			return fsattr.MarkHiddenSystem(ini)
		}
		return nil

	case FixHideIni:
		return fsattr.MarkHiddenSystem(desktopini.Path(folder))

	case FixMarkFolder:
		return fsattr.MarkReadOnly(folder)

	default:
		return fmt.Errorf("no fix for %q", issue.Description)
	}
}
