package main

import (
	"context"
	"fmt"

	"github.com/raphi011/remark/internal/log"
	"github.com/raphi011/remark/internal/output"
	"github.com/raphi011/remark/internal/shellmenu"
	"github.com/raphi011/remark/internal/ui/styles"
)

// installMenu registers the Explorer context menu for this executable.
func installMenu(ctx context.Context) error {
	out := output.FromContext(ctx)
	l := log.FromContext(ctx)

	exe, err := shellmenu.Executable()
	if err != nil {
		return err
	}
	entry := shellmenu.NewEntry(exe)
	l.Debug("installing context menu", "key", shellmenu.KeyPath, "command", entry.Command)

	if err := shellmenu.Install(entry); err != nil {
		return fmt.Errorf("install context menu: %w", err)
	}
	out.Printf("%s Added %q to the folder context menu\n",
		styles.SuccessStyle.Render(styles.CurrentSymbols().Check), entry.Label)
	return nil
}

// uninstallMenu removes the Explorer context menu entry.
func uninstallMenu(ctx context.Context) error {
	out := output.FromContext(ctx)

	if err := shellmenu.Uninstall(); err != nil {
		return fmt.Errorf("uninstall context menu: %w", err)
	}
	out.Printf("%s Removed the folder context menu entry\n",
		styles.SuccessStyle.Render(styles.CurrentSymbols().Check))
	return nil
}
