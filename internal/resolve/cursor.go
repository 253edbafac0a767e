package resolve

import (
	"fmt"
	"strings"
)

// Separator is the only path separator left after Normalize.
const Separator = '/'

// Stop tells why Advance stopped.
type Stop int

const (
	// StopSeparator means the cursor stopped on a separator.
	StopSeparator Stop = iota
	// StopEndOfArg means the current argument ran out before a separator.
	StopEndOfArg
)

func (s Stop) String() string {
	switch s {
	case StopSeparator:
		return "separator"
	case StopEndOfArg:
		return "end-of-arg"
	default:
		return fmt.Sprintf("Stop(%d)", int(s))
	}
}

// Cursor is a position in a normalized argument list.
// Offset -1 means "just before the first character" of Arg.
// Arg == len(args) means the list is exhausted.
type Cursor struct {
	Arg    int
	Offset int
}

func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", c.Arg, c.Offset)
}

// before reports whether c is strictly before o.
func (c Cursor) before(o Cursor) bool {
	if c.Arg != o.Arg {
		return c.Arg < o.Arg
	}
	return c.Offset < o.Offset
}

// JumpToEndOfArg returns c moved to the end of its argument.
func (c Cursor) JumpToEndOfArg(args []string) Cursor {
	c.Offset = len(args[c.Arg])
	return c
}

// JumpToLastSeparator returns c moved onto the last separator of its
// argument, or to -1 if the argument has none.
func (c Cursor) JumpToLastSeparator(args []string) Cursor {
	c.Offset = strings.LastIndexByte(args[c.Arg], Separator)
	return c
}

// Advance scans forward from one past c for the next separator, rolling into
// the following arguments once the current one is used up. It returns false
// when no argument is left to scan. The receiver is never modified.
func (c Cursor) Advance(args []string) (Cursor, Stop, bool) {
	for c.Arg < len(args) {
		arg := args[c.Arg]
		if c.Offset+1 >= len(arg) {
			c.Arg++
			c.Offset = -1
			continue
		}
		if i := strings.IndexByte(arg[c.Offset+1:], Separator); i >= 0 {
			c.Offset += 1 + i
			return c, StopSeparator, true
		}
		c.Offset = len(arg)
		return c, StopEndOfArg, true
	}
	return c, StopEndOfArg, false
}

// Between returns the text strictly between begin and end, one fragment per
// argument touched. Joining the fragments with single spaces gives what the
// user typed before the shell split it.
//
// It panics if end is before begin.
func Between(begin, end Cursor, args []string) []string {
	if end.before(begin) {
		panic(fmt.Sprintf("resolve: Between called with end %v before begin %v", end, begin))
	}

	if begin.Arg == end.Arg {
		arg := args[begin.Arg]
		lo := min(begin.Offset+1, len(arg))
		hi := max(min(end.Offset, len(arg)), lo)
		return []string{arg[lo:hi]}
	}

	first := args[begin.Arg]
	parts := []string{first[min(begin.Offset+1, len(first)):]}
	for i := begin.Arg + 1; i < end.Arg; i++ {
		parts = append(parts, args[i])
	}
	if end.Arg < len(args) {
		last := args[end.Arg]
		parts = append(parts, last[:max(min(end.Offset, len(last)), 0)])
	}
	return parts
}

// Remaining returns the tail of c's argument from c.Offset on, if any,
// followed by every later argument.
func Remaining(c Cursor, args []string) []string {
	var out []string
	if c.Arg < len(args) {
		arg := args[c.Arg]
		if off := max(c.Offset, 0); off < len(arg) {
			out = append(out, arg[off:])
		}
	}
	for i := c.Arg + 1; i < len(args); i++ {
		out = append(out, args[i])
	}
	return out
}
