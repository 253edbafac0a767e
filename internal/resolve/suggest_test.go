package resolve

import (
	"context"
	"path/filepath"
	"slices"
	"testing"
)

func TestSuggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		limit int
		want  []string
	}{
		{
			name:  "typo in first fragment",
			args:  []string{`D:\Docments`, "note"},
			limit: 3,
			want:  []string{filepath.FromSlash("D:/Documents")},
		},
		{
			name:  "nothing similar",
			args:  []string{`D:\Xyz`},
			limit: 3,
			want:  []string{},
		},
		{
			name:  "seed directory missing",
			args:  []string{`Q:\Nope\Docs`},
			limit: 3,
			want:  nil,
		},
		{
			name:  "zero limit",
			args:  []string{`D:\Docments`},
			limit: 0,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := Resolver{FS: newMemFS("D:/", "Documents/", "Downloads/", "Music/")}
			got := r.Suggest(context.Background(), tt.args, tt.limit)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Suggest(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestSuggest_Limit(t *testing.T) {
	t.Parallel()

	r := Resolver{FS: newMemFS("D:/", "Documents/", "Downloads/", "Music/")}
	got := r.Suggest(context.Background(), []string{`D:\Do`}, 1)
	if len(got) != 1 {
		t.Fatalf("Suggest() = %q, want exactly one suggestion", got)
	}
	if !slices.Contains([]string{filepath.FromSlash("D:/Documents"), filepath.FromSlash("D:/Downloads")}, got[0]) {
		t.Errorf("Suggest() = %q, want Documents or Downloads", got)
	}
}
