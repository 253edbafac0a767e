// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as the candidate and
// history tables.
package static

import (
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/raphi011/remark/internal/history"
	"github.com/raphi011/remark/internal/resolve"
	"github.com/raphi011/remark/internal/ui/styles"
)

// CandidateHeaders are the columns of CandidateTableRow.
var CandidateHeaders = []string{"#", "KIND", "PATH", "REMARK"}

// HistoryHeaders are the columns of HistoryTableRow.
var HistoryHeaders = []string{"#", "PATH", "REMARK", "LAST SET", "COUNT"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// CandidateTableRow formats one ranked candidate; i is zero based.
func CandidateTableRow(c resolve.Candidate, i int) []string {
	return []string{
		strconv.Itoa(i + 1),
		styles.KindSymbol(string(c.Kind)) + " " + string(c.Kind),
		c.Path,
		styles.RemarkStyle.Render(c.Remark()),
	}
}

// HistoryTableRow formats one history entry with its current remark.
func HistoryTableRow(e history.Entry, remark string, i int, now time.Time) []string {
	return []string{
		strconv.Itoa(i + 1),
		styles.FormatPath(e.Path, true),
		styles.RemarkStyle.Render(remark),
		FormatAge(now.Sub(e.LastSet)),
		strconv.Itoa(e.SetCount),
	}
}

// FormatAge renders a duration as a short relative age like "5m ago".
func FormatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return strconv.Itoa(int(d/time.Minute)) + "m ago"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d/time.Hour)) + "h ago"
	default:
		return strconv.Itoa(int(d/(24*time.Hour))) + "d ago"
	}
}
