package resolve

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func cand(path string, kind Kind, remaining ...string) Candidate {
	if remaining == nil {
		remaining = []string{}
	}
	return Candidate{Path: filepath.FromSlash(path), Remaining: remaining, Kind: kind}
}

func assertCandidates(t *testing.T, got, want []Candidate) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d candidates %+v, want %d %+v", len(got), got, len(want), want)
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.Path != w.Path || g.Kind != w.Kind || !slices.Equal(g.Remaining, w.Remaining) {
			t.Errorf("candidate %d = %+v, want %+v", i, g, w)
		}
	}
}

func TestFindCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fs   memFS
		args []string
		want []Candidate
	}{
		{
			name: "single split word",
			fs:   newMemFS("D:/", "My Documents/"),
			args: []string{`D:\My`, "Documents"},
			want: []Candidate{cand("D:/My Documents", KindFolder)},
		},
		{
			name: "no match at all",
			fs:   newMemFS("D:/", "Users/", "Windows/"),
			args: []string{`D:\Invalid`, "Path"},
			want: nil,
		},
		{
			name: "longer folder ranks first",
			fs:   newMemFS(".", "My/", "My Files/"),
			args: []string{"My", "Files", "App"},
			want: []Candidate{
				cand("My Files", KindFolder, "App"),
				cand("My", KindFolder, "Files", "App"),
			},
		},
		{
			name: "deep multi segment argument",
			fs:   newMemFS(".", "My/", "My Folder/App/Deep/New/"),
			args: []string{"My", "Folder/App/Deep/New", "remark"},
			want: []Candidate{
				cand("My Folder/App/Deep/New", KindFolder, "remark"),
				cand("My", KindFolder, "Folder/App/Deep/New", "remark"),
			},
		},
		{
			name: "absolute path with separator in later argument",
			fs:   newMemFS("D:/", "My/", "My Folder/Sub/"),
			args: []string{`D:\My`, "Folder/Sub", "note"},
			want: []Candidate{
				cand("D:/My Folder/Sub", KindFolder, "note"),
				cand("D:/My", KindFolder, "Folder/Sub", "note"),
			},
		},
		{
			name: "sub directory chain across arguments",
			fs: newMemFS(".", "My/", "My Folder/App/", "My Folder/App Folder/New Folder/",
				"My Folder/App Folder1/", "Other/"),
			args: []string{"My", "Folder/App", "Folder/New", "Folder", "text"},
			want: []Candidate{
				cand("My Folder/App Folder/New Folder", KindFolder, "text"),
				cand("My Folder/App", KindFolder, "Folder/New", "Folder", "text"),
				cand("My", KindFolder, "Folder/App", "Folder/New", "Folder", "text"),
			},
		},
		{
			name: "quoted path with remark",
			fs:   newMemFS("C:/", "Program Files/App/"),
			args: []string{`C:\Program Files\App`, "my", "note"},
			want: []Candidate{cand("C:/Program Files/App", KindFolder, "my", "note")},
		},
		{
			name: "file candidate at end of argument",
			fs:   newMemFS(".", "report.txt"),
			args: []string{"report.txt", "final", "draft"},
			want: []Candidate{cand("report.txt", KindFile, "final", "draft")},
		},
		{
			name: "folders rank before files",
			fs:   newMemFS(".", "My", "My Notes/"),
			args: []string{"My", "Notes"},
			want: []Candidate{
				cand("My Notes", KindFolder),
				cand("My", KindFile, "Notes"),
			},
		},
		{
			name: "case insensitive by default",
			fs:   newMemFS("d:/", "My Documents/"),
			args: []string{`d:\my`, "DOCUMENTS", "x"},
			want: []Candidate{cand("d:/My Documents", KindFolder, "x")},
		},
		{
			name: "seed directory missing",
			fs:   newMemFS("D:/", "Users/"),
			args: []string{`D:\Nowhere\My`, "Docs"},
			want: nil,
		},
		{
			name: "drive root with space split after it",
			fs:   newMemFS("D:/", "My Documents/"),
			args: []string{`D:\`, "My", "Documents", "note"},
			want: []Candidate{cand("D:/My Documents", KindFolder, "note")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := Resolver{FS: tt.fs}
			assertCandidates(t, r.FindCandidates(context.Background(), tt.args), tt.want)
		})
	}
}

func TestFindCandidates_EmptyArgs(t *testing.T) {
	t.Parallel()

	r := Resolver{FS: newMemFS(".", "My/")}
	if got := r.FindCandidates(context.Background(), nil); len(got) != 0 {
		t.Errorf("FindCandidates(nil) = %+v, want none", got)
	}
}

// Scenario: the argument ends inside a directory that has no children
// Expected: the directory itself is the candidate and everything after the
// separator becomes the remark
func TestFindCandidates_EmptyDirectory(t *testing.T) {
	t.Parallel()

	fsys := newMemFS("D:/", "Proj/Empty/")
	r := Resolver{FS: fsys}

	got := r.FindCandidates(context.Background(), []string{`D:\Proj\Empty\hello`, "world"})
	assertCandidates(t, got, []Candidate{cand("D:/Proj/Empty", KindFolder, "hello", "world")})

	if n := slices.Index(*fsys.readDirs, "D:/Proj/Empty"); n < 0 {
		t.Fatal("empty directory was never listed")
	}
	if c := countOf(*fsys.readDirs, "D:/Proj/Empty"); c != 1 {
		t.Errorf("empty directory listed %d times, want 1 (no further expansion)", c)
	}
}

// Scenario: a separator follows a fragment that matches nothing
// Expected: that branch yields no candidates, while the soft branch that
// stopped at the argument end still does
func TestFindCandidates_SeparatorStrictness(t *testing.T) {
	t.Parallel()

	r := Resolver{FS: newMemFS(".", "My/", "Other/Sub/")}

	got := r.FindCandidates(context.Background(), []string{"My", "Folder/Sub", "note"})
	assertCandidates(t, got, []Candidate{cand("My", KindFolder, "Folder/Sub", "note")})

	got = r.FindCandidates(context.Background(), []string{`Nope\Sub`, "note"})
	assertCandidates(t, got, nil)
}

// Scenario: the first word alone names nothing, the first two words do
// Expected: the directory is queried again with the next argument appended
func TestFindCandidates_EndOfArgSoftness(t *testing.T) {
	t.Parallel()

	r := Resolver{FS: newMemFS(".", "My Folder/")}
	got := r.FindCandidates(context.Background(), []string{"My", "Folder"})
	assertCandidates(t, got, []Candidate{cand("My Folder", KindFolder)})
}

// Scenario: a separator follows a name that is a file
// Expected: the file is never listed and nothing is emitted below it
func TestFindCandidates_FileNotTraversed(t *testing.T) {
	t.Parallel()

	fsys := newMemFS(".", "my notes")
	r := Resolver{FS: fsys}

	got := r.FindCandidates(context.Background(), []string{"my", "notes/child", "x"})
	assertCandidates(t, got, nil)

	if slices.Contains(*fsys.readDirs, "my notes") {
		t.Errorf("file was listed as a directory: %q", *fsys.readDirs)
	}
}

// Scenario: listing one directory fails with a permission error
// Expected: that branch is skipped silently and sibling branches still resolve
func TestFindCandidates_UnreadableDirectory(t *testing.T) {
	t.Parallel()

	fsys := newMemFS(".", "My/", "My Locked/Sub/")
	fsys.locked["My Locked"] = true
	r := Resolver{FS: fsys}

	got := r.FindCandidates(context.Background(), []string{"My", "Locked/Sub", "note"})
	assertCandidates(t, got, []Candidate{cand("My", KindFolder, "Locked/Sub", "note")})
}

func TestFindCandidates_CaseSensitive(t *testing.T) {
	t.Parallel()

	fsys := newMemFS(".", "My Documents/")
	args := []string{"my", "documents"}

	if got := (Resolver{FS: fsys}).FindCandidates(context.Background(), args); len(got) != 1 {
		t.Errorf("case insensitive: got %d candidates, want 1", len(got))
	}
	if got := (Resolver{FS: fsys, CaseSensitive: true}).FindCandidates(context.Background(), args); len(got) != 0 {
		t.Errorf("case sensitive: got %+v, want none", got)
	}
}

func TestFindCandidates_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := Resolver{FS: newMemFS("D:/", "My Documents/")}
	if got := r.FindCandidates(ctx, []string{`D:\My`, "Documents"}); len(got) != 0 {
		t.Errorf("FindCandidates() with cancelled context = %+v, want none", got)
	}
}

// Scenario: resolve against a real directory tree
// Expected: the split folder name is found and the rest is the remark
func TestFindCandidates_OS(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "My Documents", "inner"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "My Documents.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	args := []string{filepath.Join(root, "My"), "Documents", "hello", "there"}
	got := FindCandidates(context.Background(), args)

	if len(got) != 1 {
		t.Fatalf("got %d candidates %+v, want 1", len(got), got)
	}
	want := filepath.Join(root, "My Documents")
	if got[0].Path != want || got[0].Kind != KindFolder || got[0].Remark() != "hello there" {
		t.Errorf("candidate = %+v, want %s folder with remark %q", got[0], want, "hello there")
	}
}

func TestRank(t *testing.T) {
	t.Parallel()

	in := []Candidate{
		{Path: "a-very-long-file-name.txt", Kind: KindFile},
		{Path: "My", Kind: KindFolder},
		{Path: "My Folder", Kind: KindFolder},
		{Path: "b.txt", Kind: KindFile},
		{Path: "Ab", Kind: KindFolder},
	}
	Rank(in)

	var got []string
	for _, c := range in {
		got = append(got, c.Path)
	}
	want := []string{"My Folder", "My", "Ab", "a-very-long-file-name.txt", "b.txt"}
	if !slices.Equal(got, want) {
		t.Errorf("Rank() order = %q, want %q", got, want)
	}
}

func TestCandidate_Remark(t *testing.T) {
	t.Parallel()

	c := Candidate{Remaining: []string{"backup", "of", "2024"}}
	if got := c.Remark(); got != "backup of 2024" {
		t.Errorf("Remark() = %q, want %q", got, "backup of 2024")
	}
	if got := (Candidate{}).Remark(); got != "" {
		t.Errorf("Remark() of empty = %q, want empty", got)
	}
}

func countOf(s []string, v string) int {
	n := 0
	for _, x := range s {
		if x == v {
			n++
		}
	}
	return n
}
