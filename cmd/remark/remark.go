package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/remark/internal/config"
	"github.com/raphi011/remark/internal/desktopini"
	"github.com/raphi011/remark/internal/doctor"
	"github.com/raphi011/remark/internal/history"
	"github.com/raphi011/remark/internal/log"
	"github.com/raphi011/remark/internal/output"
	"github.com/raphi011/remark/internal/remark"
	"github.com/raphi011/remark/internal/resolve"
	"github.com/raphi011/remark/internal/ui/prompt"
	"github.com/raphi011/remark/internal/ui/styles"
)

// target is a resolved path plus the remark text that followed it.
type target struct {
	Path   string
	Kind   resolve.Kind
	Remark string
}

func newResolver(cfg *config.Config) resolve.Resolver {
	return resolve.Resolver{CaseSensitive: cfg.Resolve.CaseSensitive}
}

// exactTarget returns the target when the joined arguments already name an
// existing path, so no search is needed.
func exactTarget(args []string) (target, bool) {
	joined := strings.TrimSpace(strings.Join(args, " "))
	if joined == "" {
		return target{}, false
	}
	fi, err := os.Stat(joined)
	if err != nil {
		return target{}, false
	}
	abs, err := filepath.Abs(joined)
	if err != nil {
		abs = joined
	}
	kind := resolve.KindFile
	if fi.IsDir() {
		kind = resolve.KindFolder
	}
	return target{Path: abs, Kind: kind}, true
}

// findCandidates runs the resolver and drops file candidates the platform
// cannot store remarks for.
func findCandidates(ctx context.Context, args []string) []resolve.Candidate {
	cfg := config.FromContextOrDefault(ctx)
	l := log.FromContext(ctx)

	cands := newResolver(cfg).FindCandidates(ctx, args)
	if remark.FileRemarksSupported {
		return cands
	}
	kept := cands[:0]
	for _, c := range cands {
		if c.Kind == resolve.KindFile {
			l.Debug("skipping file candidate", "path", c.Path)
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// notFoundError builds the error for arguments that resolve to nothing,
// with fuzzy suggestions for the first unresolved name.
func notFoundError(ctx context.Context, args []string) error {
	cfg := config.FromContextOrDefault(ctx)
	msg := quotingHint(args)
	if hints := newResolver(cfg).Suggest(ctx, args, cfg.Resolve.Suggestions); len(hints) > 0 {
		msg += "\n\nDid you mean:"
		for _, h := range hints {
			msg += "\n  " + h
		}
	}
	return errors.New(msg)
}

// resolveTarget turns the positional arguments into a path and a remark.
func resolveTarget(ctx context.Context, o *rootOptions, args []string) (target, error) {
	if t, ok := exactTarget(args); ok {
		log.FromContext(ctx).Debug("exact path", "path", t.Path)
		return t, nil
	}

	cands := findCandidates(ctx, args)
	switch len(cands) {
	case 0:
		return target{}, notFoundError(ctx, args)
	case 1:
		c := cands[0]
		if err := confirmCandidate(ctx, o, c); err != nil {
			return target{}, err
		}
		return target{Path: c.Path, Kind: c.Kind, Remark: c.Remark()}, nil
	default:
		c, err := selectCandidate(ctx, o, cands)
		if err != nil {
			return target{}, err
		}
		return target{Path: c.Path, Kind: c.Kind, Remark: c.Remark()}, nil
	}
}

// resolvePath resolves arguments that only name a path, as passed to
// --view, --delete and --prompt.
func resolvePath(ctx context.Context, o *rootOptions, args []string) (string, error) {
	if t, ok := exactTarget(args); ok {
		return t.Path, nil
	}

	var cands []resolve.Candidate
	for _, c := range findCandidates(ctx, args) {
		if len(c.Remaining) == 0 {
			cands = append(cands, c)
		}
	}
	switch len(cands) {
	case 0:
		return "", notFoundError(ctx, args)
	case 1:
		return cands[0].Path, nil
	default:
		c, err := selectCandidate(ctx, o, cands)
		if err != nil {
			return "", err
		}
		return c.Path, nil
	}
}

// confirmCandidate asks before acting on a single resolved candidate.
// Without a terminal the question cannot be asked, so --yes (or
// confirm = false) is required.
func confirmCandidate(ctx context.Context, o *rootOptions, c resolve.Candidate) error {
	cfg := config.FromContextOrDefault(ctx)
	l := log.FromContext(ctx)

	l.Printf("Detected path: %s\n", styles.FormatPath(c.Path, false))
	if c.Remark() != "" {
		l.Printf("Remark: %s\n", styles.RemarkStyle.Render(c.Remark()))
	} else {
		l.Println("(no remark given, showing the current one)")
	}

	if o.yes || !cfg.Confirm {
		return nil
	}
	if !o.isTerminal() {
		return errors.New("confirmation required: rerun with --yes")
	}

	res, err := prompt.Confirm("Continue?", true)
	if err != nil {
		return err
	}
	if res.Cancelled || !res.Confirmed {
		return prompt.ErrCancelled
	}
	return nil
}

// selectCandidate lets the user pick one of several candidates.
func selectCandidate(ctx context.Context, o *rootOptions, cands []resolve.Candidate) (resolve.Candidate, error) {
	if !o.isTerminal() {
		var b strings.Builder
		fmt.Fprintf(&b, "ambiguous path: %d candidates", len(cands))
		for i, c := range cands {
			fmt.Fprintf(&b, "\n  [%d] %s", i+1, c.Path)
		}
		b.WriteString("\n\nQuote the path, or run 'remark resolve' to inspect the candidates")
		return resolve.Candidate{}, errors.New(b.String())
	}

	options := make([]prompt.Option, len(cands))
	for i, c := range cands {
		detail := "(show the current remark)"
		if r := c.Remark(); r != "" {
			detail = "remark: " + r
		}
		options[i] = prompt.Option{
			Title:  styles.KindSymbol(string(c.Kind)) + " " + c.Path,
			Detail: detail,
		}
	}

	log.FromContext(ctx).Debug("ambiguous arguments", "candidates", len(cands))
	res, err := prompt.Select("Several paths match, pick one:", options)
	if err != nil {
		return resolve.Candidate{}, err
	}
	if res.Cancelled || res.Index < 0 {
		return resolve.Candidate{}, prompt.ErrCancelled
	}
	return cands[res.Index], nil
}

// setRemark stores text on path and records it in the history.
func setRemark(ctx context.Context, path, text string) error {
	cfg := config.FromContextOrDefault(ctx)
	out := output.FromContext(ctx)
	l := log.FromContext(ctx)

	h, err := remark.ForPath(path, cfg.MaxLength)
	if err != nil {
		return err
	}
	if err := h.Set(ctx, path, text); err != nil {
		return fmt.Errorf("set remark on %s: %w", path, err)
	}

	kind := resolve.KindFolder
	if _, ok := h.(remark.FileHandler); ok {
		kind = resolve.KindFile
	}
	if err := history.RecordSet(ctx, cfg.GetHistoryPath(), path, string(kind)); err != nil {
		l.Debug("history not updated", "err", err)
	}

	sym := styles.CurrentSymbols()
	out.Printf("%s Remark set on %s\n", styles.SuccessStyle.Render(sym.Check), styles.FormatPath(path, false))
	return nil
}

// viewRemark prints the remark of path. A desktop.ini in a legacy encoding
// is reported, and re-encoded if the user agrees.
func viewRemark(ctx context.Context, o *rootOptions, path string) error {
	cfg := config.FromContextOrDefault(ctx)
	out := output.FromContext(ctx)
	l := log.FromContext(ctx)

	h, err := remark.ForPath(path, cfg.MaxLength)
	if err != nil {
		return err
	}

	if _, ok := h.(remark.FolderHandler); ok {
		if err := offerEncodingFix(ctx, o, path); err != nil {
			l.Warnf("%v", err)
		}
	}

	text, err := h.Get(ctx, path)
	if err != nil {
		return fmt.Errorf("read remark of %s: %w", path, err)
	}
	if text == "" {
		l.Printf("%s has no remark\n", styles.FormatPath(path, false))
		return nil
	}
	out.Println(text)
	return nil
}

// offerEncodingFix warns about a desktop.ini Explorer cannot display and
// re-encodes it when confirmed.
func offerEncodingFix(ctx context.Context, o *rootOptions, folder string) error {
	l := log.FromContext(ctx)

	r, err := doctor.Check(folder)
	if err != nil {
		return err
	}
	var issue *doctor.Issue
	for i := range r.Issues {
		if r.Issues[i].FixAction == doctor.FixReencode {
			issue = &r.Issues[i]
			break
		}
	}
	if issue == nil {
		return nil
	}

	l.Warnf("%s is encoded as %s, not UTF-16; non-ASCII text may not show in Explorer", desktopini.FileName, r.Encoding)
	if !o.isTerminal() {
		l.Println("Run 'remark doctor --fix' to repair.")
		return nil
	}

	res, err := prompt.Confirm("Re-encode as UTF-16?", true)
	if err != nil {
		return err
	}
	if !res.Confirmed {
		l.Println("Skipped encoding fix")
		return nil
	}
	if err := doctor.Fix(folder, *issue); err != nil {
		return fmt.Errorf("re-encode %s: %w", issue.Path, err)
	}
	l.Printf("%s Re-encoded as UTF-16LE\n", styles.SuccessStyle.Render(styles.CurrentSymbols().Check))
	return nil
}

// deleteRemark removes the remark of path.
func deleteRemark(ctx context.Context, path string) error {
	cfg := config.FromContextOrDefault(ctx)
	out := output.FromContext(ctx)
	l := log.FromContext(ctx)

	h, err := remark.ForPath(path, cfg.MaxLength)
	if err != nil {
		return err
	}
	existed, err := h.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("delete remark of %s: %w", path, err)
	}
	if err := history.Forget(ctx, cfg.GetHistoryPath(), path); err != nil {
		l.Debug("history not updated", "err", err)
	}

	if !existed {
		l.Printf("%s has no remark\n", styles.FormatPath(path, false))
		return nil
	}
	sym := styles.CurrentSymbols()
	out.Printf("%s Remark removed from %s\n", styles.SuccessStyle.Render(sym.Check), styles.FormatPath(path, false))
	return nil
}

// promptRemark asks for a new remark of path, starting from the current
// one. This is what the Explorer context menu runs.
func promptRemark(ctx context.Context, path string) error {
	cfg := config.FromContextOrDefault(ctx)
	l := log.FromContext(ctx)

	h, err := remark.ForPath(path, cfg.MaxLength)
	if err != nil {
		return err
	}
	current, err := h.Get(ctx, path)
	if err != nil {
		l.Debug("current remark unreadable", "path", path, "err", err)
	}

	res, err := prompt.TextInput("Remark for "+filepath.Base(path)+":", current, cfg.MaxLength)
	if err != nil {
		return err
	}
	if res.Cancelled {
		return prompt.ErrCancelled
	}
	if res.Value == "" || res.Value == current {
		l.Println("Remark unchanged")
		return nil
	}
	return setRemark(ctx, path, res.Value)
}

// interactiveLoop asks for a path and a remark until the user quits.
func interactiveLoop(ctx context.Context) error {
	cfg := config.FromContextOrDefault(ctx)
	l := log.FromContext(ctx)

	l.Printf("%s\n", styles.Bold.Render(versionString()))
	l.Println(styles.MutedStyle.Render("Press Ctrl+C to quit"))

	for ctx.Err() == nil {
		pathRes, err := prompt.TextInput("Folder path (or drag it here):", "", 0)
		if err != nil {
			return err
		}
		if pathRes.Cancelled {
			break
		}
		path := stripQuotes(pathRes.Value)
		if path == "" {
			continue
		}

		h, err := remark.ForPath(path, cfg.MaxLength)
		if err != nil {
			l.Warnf("%v", err)
			continue
		}
		current, _ := h.Get(ctx, path)

		remarkRes, err := prompt.TextInput("Remark:", current, cfg.MaxLength)
		if err != nil {
			return err
		}
		if remarkRes.Cancelled {
			break
		}
		if remarkRes.Value == "" {
			l.Warnf("remark must not be empty")
			continue
		}
		if err := setRemark(ctx, path, remarkRes.Value); err != nil {
			l.Warnf("%v", err)
		}
		l.Println()
	}
	l.Println("Bye")
	return nil
}
