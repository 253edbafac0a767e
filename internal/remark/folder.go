package remark

import (
	"context"
	"fmt"
	"os"

	"github.com/raphi011/remark/internal/desktopini"
	"github.com/raphi011/remark/internal/fsattr"
	"github.com/raphi011/remark/internal/log"
)

// FolderHandler keeps remarks in the folder's desktop.ini.
type FolderHandler struct {
	MaxLength int
}

func (FolderHandler) Supports(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// Set writes the InfoTip, hides desktop.ini and marks the folder read-only
// so Explorer picks the file up.
func (h FolderHandler) Set(ctx context.Context, path, text string) error {
	if !h.Supports(path) {
		return fmt.Errorf("%w: %s is not a folder", ErrNotFound, path)
	}
	text, err := prepare(ctx, text, h.MaxLength)
	if err != nil {
		return err
	}

	ini := desktopini.Path(path)
	if desktopini.Exists(path) {
		if err := fsattr.ClearHiddenSystem(ini); err != nil {
			return fmt.Errorf("clear attributes: %w", err)
		}
	}
	if err := desktopini.WriteInfoTip(path, text); err != nil {
		return err
	}
	if err := fsattr.MarkHiddenSystem(ini); err != nil {
		return fmt.Errorf("hide %s: %w", desktopini.FileName, err)
	}
	if err := fsattr.MarkReadOnly(path); err != nil {
		return fmt.Errorf("mark folder read-only: %w", err)
	}

	log.FromContext(ctx).Debug("folder remark set", "path", path, "remark", text)
	return nil
}

func (FolderHandler) Get(_ context.Context, path string) (string, error) {
	return desktopini.ReadInfoTip(path)
}

// Delete removes the InfoTip and keeps the rest of desktop.ini. The file is
// removed when nothing else is left in it.
func (FolderHandler) Delete(ctx context.Context, path string) (bool, error) {
	tip, err := desktopini.ReadInfoTip(path)
	if err != nil {
		return false, err
	}
	if tip == "" {
		return false, nil
	}

	ini := desktopini.Path(path)
	if err := fsattr.ClearHiddenSystem(ini); err != nil {
		return false, fmt.Errorf("clear attributes: %w", err)
	}
	deleted, err := desktopini.RemoveInfoTip(path)
	if err != nil {
		return false, err
	}
	if !deleted {
		if err := fsattr.MarkHiddenSystem(ini); err != nil {
			return true, fmt.Errorf("restore attributes: %w", err)
		}
	}

	log.FromContext(ctx).Debug("folder remark deleted", "path", path, "file_removed", deleted)
	return true, nil
}
