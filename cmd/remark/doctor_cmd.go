package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/remark/internal/doctor"
	"github.com/raphi011/remark/internal/output"
)

func newDoctorCmd() *cobra.Command {
	var (
		fix        bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "doctor [path]",
		Short:   "Diagnose and repair a folder's remark",
		GroupID: GroupUtility,
		Args:    cobra.MaximumNArgs(1),
		Long: `Diagnose and repair the remark setup of a folder.

Checks:
- desktop.ini is UTF-16 (Explorer ignores non-ASCII text otherwise)
- desktop.ini is hidden and system
- the folder is read-only (Explorer only reads desktop.ini then)
- desktop.ini has an InfoTip

Without a path the current directory is checked.`,
		Example: `  remark doctor C:\Projects       # Check for issues
  remark doctor --fix C:\Projects # Repair them`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			folder := "."
			if len(args) == 1 {
				folder = args[0]
			}
			if folder == "." {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				folder = wd
			}

			if jsonOutput {
				r, err := doctor.Check(folder)
				if err != nil {
					return err
				}
				return output.FromContext(ctx).JSON(r)
			}

			r, err := doctor.Run(ctx, folder, fix)
			if err != nil {
				return err
			}
			if open := unresolved(r, fix); open > 0 {
				return fmt.Errorf("%d issues found", open)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Repair fixable issues")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.MarkFlagsMutuallyExclusive("fix", "json")

	return cmd
}

// unresolved counts the fixable issues still open after a doctor run.
func unresolved(r *doctor.Report, fixed bool) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Fixable() {
			n++
		}
	}
	if fixed {
		n -= r.Fixed
	}
	return n
}
