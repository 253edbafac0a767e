package resolve

import "strings"

// Normalize rewrites backslashes to '/' and drops trailing separators,
// except for a bare root ("/" or "X:/"). Argument boundaries are kept.
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		arg = strings.ReplaceAll(arg, `\`, "/")
		for len(arg) > 1 && arg[len(arg)-1] == Separator && !isRoot(arg) {
			arg = arg[:len(arg)-1]
		}
		out[i] = arg
	}
	return out
}

// Seed returns the working directory named by the first normalized argument
// and a cursor on its last separator. Without a separator the search starts
// in "." from offset -1.
func Seed(args []string) (string, Cursor) {
	if len(args) == 0 {
		return ".", Cursor{Offset: -1}
	}

	c := Cursor{}.JumpToLastSeparator(args)
	if c.Offset < 0 {
		return ".", c
	}

	dir := args[0][:c.Offset]
	switch {
	case dir == "":
		dir = "/"
	case isDrive(dir):
		dir += "/"
	}
	return dir, c
}

// join appends name to a slash-separated dir without collapsing a
// leading "//" (UNC shares).
func join(dir, name string) string {
	switch {
	case dir == "" || dir == ".":
		return name
	case dir[len(dir)-1] == Separator:
		return dir + name
	default:
		return dir + "/" + name
	}
}

// isDrive reports whether s is a bare drive such as "C:".
func isDrive(s string) bool {
	if len(s) != 2 || s[1] != ':' {
		return false
	}
	c := s[0] | 0x20
	return c >= 'a' && c <= 'z'
}

func isRoot(s string) bool {
	return s == "/" || (len(s) == 3 && isDrive(s[:2]) && s[2] == Separator)
}
