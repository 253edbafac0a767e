package main

import (
	"context"
	"fmt"
	"time"

	"github.com/raphi011/remark/internal/config"
	"github.com/raphi011/remark/internal/log"
	"github.com/raphi011/remark/internal/output"
	"github.com/raphi011/remark/internal/ui/progress"
	"github.com/raphi011/remark/internal/ui/styles"
	"github.com/raphi011/remark/internal/update"
)

// scheduledCheckTimeout bounds the background check after a command.
const scheduledCheckTimeout = 3 * time.Second

func newChecker(cfg *config.Config) *update.Checker {
	return &update.Checker{
		URL:       cfg.Update.URL,
		StatePath: cfg.GetUpdateStatePath(),
		Interval:  cfg.UpdateInterval(),
	}
}

// checkUpdate runs --check-update.
func checkUpdate(ctx context.Context) error {
	cfg := config.FromContextOrDefault(ctx)
	out := output.FromContext(ctx)

	var r *update.Release
	check := func() (err error) {
		r, err = newChecker(cfg).Force(ctx, version)
		return err
	}
	var err error
	if stderrIsTerminal() {
		err = progress.Run("Checking for updates...", check)
	} else {
		err = check()
	}
	if err != nil {
		return fmt.Errorf("check for updates: %w", err)
	}
	if r == nil {
		out.Printf("%s remark %s is up to date\n", styles.SuccessStyle.Render(styles.CurrentSymbols().Check), version)
		return nil
	}
	printRelease(out, r)
	return nil
}

func printRelease(out *output.Printer, r *update.Release) {
	out.Printf("%s remark %s is available (you have %s)\n",
		styles.AccentStyle.Render(styles.CurrentSymbols().Arrow), r.Version, version)
	out.Printf("  Release:  %s\n", r.URL)
	out.Printf("  Download: %s\n", r.DownloadURL)
}

// scheduledUpdateCheck prints a notice when a newer release exists. It is
// throttled by the checker and never fails the command.
func scheduledUpdateCheck(ctx context.Context) {
	cfg := config.FromContextOrDefault(ctx)
	if !cfg.Update.Check {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, scheduledCheckTimeout)
	defer cancel()

	r := newChecker(cfg).Check(ctx, version)
	if r == nil {
		return
	}
	log.FromContext(ctx).Printf("\nremark %s is available: %s\n", r.Version, r.URL)
}
