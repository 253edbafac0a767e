package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/remark/internal/config"
	"github.com/raphi011/remark/internal/output"
	"github.com/raphi011/remark/internal/resolve"
	"github.com/raphi011/remark/internal/ui/static"
)

func newResolveCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "resolve <args...>",
		Short:   "Show how arguments split into path and remark",
		GroupID: GroupCore,
		Args:    cobra.MinimumNArgs(1),
		Long: `Show every way the arguments can be split into an existing path and a
remark, best first. Nothing is written.

Folders rank before files, and among those the longest path wins.`,
		Example: `  remark resolve C:\My Documents notes   # list candidates
  remark resolve --json D:\a b c          # machine readable`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContextOrDefault(ctx)
			out := output.FromContext(ctx)

			cands := newResolver(cfg).FindCandidates(ctx, args)
			if jsonOutput {
				if cands == nil {
					cands = []resolve.Candidate{}
				}
				return out.JSON(cands)
			}
			if len(cands) == 0 {
				return notFoundError(ctx, args)
			}

			rows := make([][]string, len(cands))
			for i, c := range cands {
				rows[i] = static.CandidateTableRow(c, i)
			}
			out.Print(static.RenderTable(static.CandidateHeaders, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
