package resolve

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/remark/internal/log"
)

// entryNames implements fuzzy.Source over directory entry names.
type entryNames []string

func (s entryNames) String(i int) string { return s[i] }
func (s entryNames) Len() int            { return len(s) }

// Suggest returns up to limit entries of the seed directory that fuzzily
// resemble the first fragment of args. It is meant for "did you mean" hints
// after FindCandidates came back empty.
func (r Resolver) Suggest(ctx context.Context, args []string, limit int) []string {
	if len(args) == 0 || limit <= 0 {
		return nil
	}

	norm := Normalize(args)
	dir, c := Seed(norm)
	next, _, ok := c.Advance(norm)
	if !ok {
		return nil
	}
	pattern := strings.TrimSpace(strings.Join(Between(c, next, norm), " "))
	if pattern == "" {
		return nil
	}

	entries, err := r.fs().ReadDir(dir)
	if err != nil {
		log.FromContext(ctx).Debug("resolve: no suggestions", "dir", dir, "err", err)
		return nil
	}
	names := make(entryNames, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}

	matches := fuzzy.FindFrom(pattern, names)
	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, filepath.FromSlash(join(dir, m.Str)))
	}
	return out
}
