package resolve

import (
	"regexp"
	"strings"
)

// gap matches where the shell split a name: any run of whitespace,
// including non-ASCII spaces.
const gap = `[\s\p{Zs}]+`

// Matcher tests directory entry names against user fragments.
// The zero value matches nothing.
type Matcher struct {
	re *regexp.Regexp
}

// BuildMatcher returns a Matcher accepting names made of parts in order,
// separated by one or more whitespace characters. Fragments are literal text
// and the whole name must match. Empty fragments are ignored; with none left
// the Matcher matches nothing.
func BuildMatcher(parts []string, caseSensitive bool) Matcher {
	quoted := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	if len(quoted) == 0 {
		return Matcher{}
	}

	expr := "^" + strings.Join(quoted, gap) + "$"
	if !caseSensitive {
		expr = "(?i)" + expr
	}
	return Matcher{re: regexp.MustCompile(expr)}
}

// Match reports whether name is accepted.
func (m Matcher) Match(name string) bool {
	return m.re != nil && m.re.MatchString(name)
}

func (m Matcher) String() string {
	if m.re == nil {
		return "<none>"
	}
	return m.re.String()
}
