package static

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/raphi011/remark/internal/history"
	"github.com/raphi011/remark/internal/resolve"
)

func TestRenderTable(t *testing.T) {
	t.Parallel()

	if got := RenderTable([]string{"A"}, nil); got != "" {
		t.Errorf("RenderTable(no rows) = %q, want empty", got)
	}

	out := RenderTable([]string{"NAME", "VALUE"}, [][]string{{"short", "1"}, {"much longer", "2"}})
	lines := strings.Split(strings.TrimRight(ansi.Strip(out), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderTable() lines = %d, want 3:\n%s", len(lines), out)
	}
	// Columns are aligned, so the second column starts at the same offset.
	if strings.Index(lines[1], "1") != strings.Index(lines[2], "2") {
		t.Errorf("columns not aligned:\n%s", ansi.Strip(out))
	}
}

func TestCandidateTableRow(t *testing.T) {
	t.Parallel()

	c := resolve.Candidate{Path: `D:\Projects\My Notes`, Remaining: []string{"for", "2024"}, Kind: resolve.KindFolder}
	row := CandidateTableRow(c, 0)

	if len(row) != len(CandidateHeaders) {
		t.Fatalf("expected %d columns, got %d", len(CandidateHeaders), len(row))
	}
	if row[0] != "1" {
		t.Errorf("column 0 (#) = %q, want %q", row[0], "1")
	}
	if !strings.HasSuffix(row[1], "folder") {
		t.Errorf("column 1 (KIND) = %q, want suffix folder", row[1])
	}
	if row[2] != c.Path {
		t.Errorf("column 2 (PATH) = %q, want %q", row[2], c.Path)
	}
	if ansi.Strip(row[3]) != "for 2024" {
		t.Errorf("column 3 (REMARK) = %q, want %q", ansi.Strip(row[3]), "for 2024")
	}
}

func TestHistoryTableRow(t *testing.T) {
	t.Parallel()

	now := time.Now()
	e := history.Entry{Path: "/data/notes", Kind: "folder", LastSet: now.Add(-3 * time.Hour), SetCount: 4}
	row := HistoryTableRow(e, "meeting notes", 1, now)

	if len(row) != len(HistoryHeaders) {
		t.Fatalf("expected %d columns, got %d", len(HistoryHeaders), len(row))
	}
	if row[0] != "2" {
		t.Errorf("column 0 (#) = %q, want %q", row[0], "2")
	}
	if ansi.Strip(row[1]) != "/data/notes" {
		t.Errorf("column 1 (PATH) stripped = %q", ansi.Strip(row[1]))
	}
	if ansi.Strip(row[2]) != "meeting notes" {
		t.Errorf("column 2 (REMARK) stripped = %q", ansi.Strip(row[2]))
	}
	if row[3] != "3h ago" {
		t.Errorf("column 3 (LAST SET) = %q, want %q", row[3], "3h ago")
	}
	if row[4] != "4" {
		t.Errorf("column 4 (COUNT) = %q, want %q", row[4], "4")
	}
}

func TestFormatAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{2 * time.Hour, "2h ago"},
		{49 * time.Hour, "2d ago"},
	}
	for _, tt := range tests {
		if got := FormatAge(tt.d); got != tt.want {
			t.Errorf("FormatAge(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
