package doctor

import (
	"context"

	"github.com/raphi011/remark/internal/log"
	"github.com/raphi011/remark/internal/output"
	"github.com/raphi011/remark/internal/ui/styles"
)

// Run checks folder, prints the findings and, when fix is set, repairs
// every fixable issue.
func Run(ctx context.Context, folder string, fix bool) (*Report, error) {
	out := output.FromContext(ctx)
	l := log.FromContext(ctx)

	r, err := Check(folder)
	if err != nil {
		return nil, err
	}
	sym := styles.CurrentSymbols()

	printSummary(out, r)

	if len(r.Issues) == 0 {
		out.Printf("\n%s No issues found\n", styles.SuccessStyle.Render(sym.Check))
		return r, nil
	}

	out.Printf("\nFound %d issues:\n", len(r.Issues))
	printIssuesByCategory(out, r.Issues)

	fixable := 0
	for _, issue := range r.Issues {
		if issue.Fixable() {
			fixable++
		}
	}
	if fixable == 0 {
		return r, nil
	}

	if !fix {
		out.Println("\nRun 'remark doctor --fix' to repair.")
		return r, nil
	}

	out.Println()
	for _, issue := range r.Issues {
		if !issue.Fixable() {
			continue
		}
		if err := Fix(folder, issue); err != nil {
			l.Debug("fix failed", "action", issue.FixAction, "path", issue.Path, "err", err)
			out.Printf("  %s Failed to %s %s: %v\n", styles.ErrorStyle.Render(sym.Cross), issue.FixAction, issue.Path, err)
			r.Failed++
			continue
		}
		out.Printf("  %s %s %s\n", styles.SuccessStyle.Render(sym.Check), fixedMessage(issue.FixAction), issue.Path)
		r.Fixed++
	}
	out.Printf("\nFixed %d, failed %d\n", r.Fixed, r.Failed)
	return r, nil
}

func fixedMessage(a FixAction) string {
	switch a {
	case FixReencode:
		return "Re-encoded as UTF-16LE:"
	case FixHideIni:
		return "Marked hidden and system:"
	case FixMarkFolder:
		return "Marked read-only:"
	default:
		return string(a)
	}
}

// printSummary prints what was found in the folder.
func printSummary(out *output.Printer, r *Report) {
	out.Printf("Checking %s\n\n", styles.FormatPath(r.Folder, false))
	if !r.HasIni {
		out.Println("  no desktop.ini (folder has no remark)")
		return
	}
	out.Printf("  desktop.ini encoding: %s\n", r.Encoding)
	if r.Remark != "" {
		out.Printf("  remark: %s\n", styles.RemarkStyle.Render(r.Remark))
	}
}

// printIssuesByCategory groups and prints issues.
func printIssuesByCategory(out *output.Printer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryEncoding:   "Encoding issues",
		CategoryAttributes: "Attribute issues",
		CategoryContent:    "Content",
	}

	for _, cat := range []IssueCategory{CategoryEncoding, CategoryAttributes, CategoryContent} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		out.Printf("\n%s:\n", categoryNames[cat])
		for _, issue := range catIssues {
			out.Printf("  • %s: %s\n", issue.Path, issue.Description)
		}
	}
}
