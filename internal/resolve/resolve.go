package resolve

import (
	"cmp"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/raphi011/remark/internal/log"
)

// Kind is the type of filesystem entry a candidate points at.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
)

// Candidate is one way of splitting the arguments into a path and a remark.
type Candidate struct {
	Path      string   `json:"path"`
	Remaining []string `json:"remaining"`
	Kind      Kind     `json:"kind"`
}

// Remark returns the leftover arguments joined with single spaces.
func (c Candidate) Remark() string {
	return strings.Join(c.Remaining, " ")
}

// FS is the part of a filesystem the search needs.
// Names are slash-separated.
type FS interface {
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
}

type osFS struct{}

func (osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(filepath.FromSlash(name))
}

func (osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(filepath.FromSlash(name))
}

// OS is the FS backed by the operating system.
var OS FS = osFS{}

// Resolver searches an FS for candidates. The zero value searches the
// operating system case-insensitively.
type Resolver struct {
	FS            FS
	CaseSensitive bool
}

// FindCandidates searches with the zero Resolver.
func FindCandidates(ctx context.Context, args []string) []Candidate {
	return Resolver{}.FindCandidates(ctx, args)
}

type state struct {
	dir   string
	start Cursor
	cur   Cursor
}

// FindCandidates returns every path/remark split of args that exists on
// the filesystem, best first. Unreadable directories are skipped. If ctx is
// cancelled the candidates found so far are returned.
func (r Resolver) FindCandidates(ctx context.Context, args []string) []Candidate {
	if len(args) == 0 {
		return nil
	}
	l := log.FromContext(ctx)
	fsys := r.fs()

	norm := Normalize(args)
	dir, c := Seed(norm)
	l.Debug("resolve: seed", "dir", dir, "cursor", c)

	var out []Candidate
	queue := []state{{dir: dir, start: c, cur: c}}
	for len(queue) > 0 && ctx.Err() == nil {
		st := queue[0]
		queue = queue[1:]

		if !isDir(fsys, st.dir) {
			continue
		}

		next, stop, ok := st.cur.Advance(norm)
		if !ok {
			continue
		}

		entries, err := fsys.ReadDir(st.dir)
		if err != nil {
			l.Debug("resolve: skipping unreadable directory", "dir", st.dir, "err", err)
			continue
		}
		if len(entries) == 0 {
			rest := Remaining(Cursor{Arg: st.cur.Arg, Offset: st.cur.Offset + 1}, norm)
			out = append(out, newCandidate(st.dir, rest, KindFolder))
			continue
		}

		m := BuildMatcher(Between(st.start, next, norm), r.CaseSensitive)
		var matched []string
		for _, e := range entries {
			if m.Match(e.Name()) {
				matched = append(matched, e.Name())
			}
		}
		l.Debug("resolve: expand", "dir", st.dir, "stop", stop, "pattern", m, "matches", len(matched))

		switch stop {
		case StopSeparator:
			for _, name := range matched {
				queue = append(queue, state{dir: join(st.dir, name), start: next, cur: next})
			}
		case StopEndOfArg:
			for _, name := range matched {
				p := join(st.dir, name)
				kind, ok := kindOf(fsys, p)
				if !ok {
					continue
				}
				out = append(out, newCandidate(p, Remaining(next, norm), kind))
			}
			queue = append(queue, state{dir: st.dir, start: st.start, cur: next})
		}
	}

	Rank(out)
	return out
}

// Rank sorts candidates folders first, then by descending path length.
// Ties keep their order.
func Rank(cands []Candidate) {
	slices.SortStableFunc(cands, func(a, b Candidate) int {
		if c := cmp.Compare(kindRank(a.Kind), kindRank(b.Kind)); c != 0 {
			return c
		}
		return cmp.Compare(utf8.RuneCountInString(b.Path), utf8.RuneCountInString(a.Path))
	})
}

func kindRank(k Kind) int {
	if k == KindFolder {
		return 0
	}
	return 1
}

func (r Resolver) fs() FS {
	if r.FS == nil {
		return OS
	}
	return r.FS
}

func newCandidate(path string, rest []string, kind Kind) Candidate {
	if rest == nil {
		rest = []string{}
	}
	return Candidate{Path: filepath.FromSlash(path), Remaining: rest, Kind: kind}
}

func isDir(fsys FS, name string) bool {
	fi, err := fsys.Stat(name)
	return err == nil && fi.IsDir()
}

func kindOf(fsys FS, name string) (Kind, bool) {
	fi, err := fsys.Stat(name)
	switch {
	case err != nil:
		return "", false
	case fi.IsDir():
		return KindFolder, true
	case fi.Mode().IsRegular():
		return KindFile, true
	default:
		return "", false
	}
}
