package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/remark/internal/config"
	"github.com/raphi011/remark/internal/log"
	"github.com/raphi011/remark/internal/output"
	"github.com/raphi011/remark/internal/ui/prompt"
	"github.com/raphi011/remark/internal/ui/styles"
)

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupUtility = "utility"
	GroupConfig  = "config"
)

// rootOptions holds the flags of the root command.
type rootOptions struct {
	verbose bool
	quiet   bool

	view   string
	delete string
	prompt string

	install     bool
	uninstall   bool
	checkUpdate bool
	yes         bool

	// isTerminal reports whether prompts may be shown.
	isTerminal func() bool
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&rootOptions{isTerminal: stdinIsTerminal})
}

func newRootCmdWith(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remark [path...] [remark...]",
		Short: "Add remarks to Windows folders",
		Long: `remark sets the comment Explorer shows for a folder (and, on NTFS, a file).

The path does not need to be quoted: when the shell splits a path with
spaces into several arguments, remark searches the filesystem for the
folder that was meant and treats the rest as the remark. If more than one
split exists, you are asked to pick one.

Without arguments remark starts an interactive session.`,
		Example: `  remark "C:\My Documents" "Tax papers 2024"  # quoted
  remark C:\My Documents Tax papers 2024      # unquoted, resolved
  remark C:\Projects\app                      # show the current remark
  remark --delete C:\Projects\app             # remove the remark
  remark --install                            # add the Explorer context menu`,
		Args:                       cobra.ArbitraryArgs,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if config.FromContext(ctx) == nil {
				ctx = config.WithConfig(ctx, config.FromContextOrDefault(ctx))
			}
			// Flags are parsed now, so the logger gets the final verbosity.
			ctx = log.WithLogger(ctx, log.New(cmd.ErrOrStderr(), o.verbose, o.quiet))
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, o, args)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}
			if o.checkUpdate || !o.isTerminal() {
				return nil
			}
			scheduledUpdateCheck(cmd.Context())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.view, "view", "", "Show the remark of `PATH`")
	f.StringVar(&o.delete, "delete", "", "Remove the remark of `PATH`")
	f.StringVar(&o.prompt, "prompt", "", "Ask for the remark of `PATH` (used by the context menu)")
	f.BoolVar(&o.install, "install", false, "Add \"Add folder remark\" to the Explorer context menu")
	f.BoolVar(&o.uninstall, "uninstall", false, "Remove the Explorer context menu entry")
	f.BoolVar(&o.checkUpdate, "check-update", false, "Check for a newer release")
	f.BoolVarP(&o.yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.MarkFlagsMutuallyExclusive("view", "delete", "prompt", "install", "uninstall", "check-update")

	// Global flags
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Show how paths are resolved")
	cmd.PersistentFlags().BoolVarP(&o.quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	cmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newRecentCmd())

	// Utility commands
	cmd.AddCommand(newDoctorCmd())

	// Config commands
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// runRoot dispatches the flag driven modes of the root command.
func runRoot(cmd *cobra.Command, o *rootOptions, args []string) error {
	ctx := cmd.Context()

	switch {
	case o.install:
		return installMenu(ctx)
	case o.uninstall:
		return uninstallMenu(ctx)
	case o.checkUpdate:
		return checkUpdate(ctx)
	case o.view != "":
		path, err := resolvePath(ctx, o, pathArgs(o.view, args))
		if err != nil {
			return err
		}
		return viewRemark(ctx, o, path)
	case o.delete != "":
		path, err := resolvePath(ctx, o, pathArgs(o.delete, args))
		if err != nil {
			return err
		}
		return deleteRemark(ctx, path)
	case o.prompt != "":
		path, err := resolvePath(ctx, o, pathArgs(o.prompt, args))
		if err != nil {
			return err
		}
		return promptRemark(ctx, path)
	case len(args) > 0:
		t, err := resolveTarget(ctx, o, args)
		if err != nil {
			return err
		}
		if t.Remark == "" {
			return viewRemark(ctx, o, t.Path)
		}
		return setRemark(ctx, t.Path, t.Remark)
	case o.isTerminal():
		return interactiveLoop(ctx)
	default:
		return cmd.Help()
	}
}

// pathArgs joins a path flag value with positional arguments the shell
// split off it.
func pathArgs(flag string, args []string) []string {
	return append([]string{flag}, args...)
}

// Execute builds the root command and runs it.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg := &loadedCfg
	styles.Init(cfg.Theme)

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, cfg)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd := newRootCmd()
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "Cancelled")
			return
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'remark -h' for help")
		os.Exit(1)
	}
}

// quotingHint is shown when arguments did not resolve to any path.
func quotingHint(args []string) string {
	var b strings.Builder
	b.WriteString("no existing path found in: ")
	b.WriteString(strings.Join(args, " "))
	b.WriteString("\n\nPaths with spaces are best quoted:\n")
	b.WriteString(`  remark "C:\My Documents" "remark text"`)
	return b.String()
}
