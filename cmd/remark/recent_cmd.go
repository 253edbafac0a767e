package main

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/raphi011/remark/internal/config"
	"github.com/raphi011/remark/internal/history"
	"github.com/raphi011/remark/internal/log"
	"github.com/raphi011/remark/internal/output"
	"github.com/raphi011/remark/internal/remark"
	"github.com/raphi011/remark/internal/ui/static"
)

// recentItem is a history entry with its current remark.
type recentItem struct {
	history.Entry
	Remark string `json:"remark"`
}

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

func newRecentCmd() *cobra.Command {
	var (
		limit      int
		copyIndex  int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "recent",
		Short:   "List recently remarked folders",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List the folders and files a remark was recently set on, most recent
first, with the remark they carry now. Paths that no longer exist are
skipped.`,
		Example: `  remark recent            # List recent entries
  remark recent -n 5       # Only the last five
  remark recent --copy 2   # Copy the second path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContextOrDefault(ctx)
			out := output.FromContext(ctx)

			entries, err := history.Recent(cfg.GetHistoryPath(), limit)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}

			if copyIndex > 0 {
				if copyIndex > len(entries) {
					return fmt.Errorf("no entry %d (history has %d)", copyIndex, len(entries))
				}
				path := entries[copyIndex-1].Path
				if err := copyToClipboard(path); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				out.Println(path)
				return nil
			}

			items := loadRemarks(ctx, cfg, entries)
			if jsonOutput {
				return out.JSON(items)
			}
			if len(items) == 0 {
				log.FromContext(ctx).Println("No remarks set yet")
				return nil
			}

			now := time.Now()
			rows := make([][]string, len(items))
			for i, it := range items {
				rows[i] = static.HistoryTableRow(it.Entry, it.Remark, i, now)
			}
			out.Print(static.RenderTable(static.HistoryHeaders, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "number", "n", 0, "Show at most `N` entries")
	cmd.Flags().IntVar(&copyIndex, "copy", 0, "Copy the path of entry `N` to the clipboard")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.MarkFlagsMutuallyExclusive("copy", "json")

	return cmd
}

// loadRemarks reads the current remark of every entry concurrently.
// Unreadable remarks are shown empty.
func loadRemarks(ctx context.Context, cfg *config.Config, entries []history.Entry) []recentItem {
	l := log.FromContext(ctx)
	items := make([]recentItem, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, e := range entries {
		items[i].Entry = e
		g.Go(func() error {
			h, err := remark.ForPath(e.Path, cfg.MaxLength)
			if err != nil {
				l.Debug("skip remark", "path", e.Path, "err", err)
				return nil
			}
			text, err := h.Get(ctx, e.Path)
			if err != nil {
				l.Debug("skip remark", "path", e.Path, "err", err)
				return nil
			}
			items[i].Remark = text
			return nil
		})
	}
	_ = g.Wait()
	return items
}
