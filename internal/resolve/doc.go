// Package resolve reconstructs filesystem paths from shell-split arguments.
//
// Users routinely type `remark D:\My Documents backup notes` without quoting,
// so the shell hands us ["D:\My", "Documents", "backup", "notes"]. This
// package walks the real filesystem to decide where the path ends and the
// remark text begins.
//
// # Model
//
// Arguments are first normalized to use '/' as the only separator. A [Cursor]
// is an (argument, offset) position over that normalized sequence. Advancing
// a cursor stops either on the next separator ([StopSeparator]) or at the end
// of the current argument ([StopEndOfArg]).
//
// # Search
//
// [Resolver.FindCandidates] runs a breadth-first search seeded from the
// directory part of the first argument. The text between the start cursor
// and the advanced cursor is turned into a [Matcher] that tolerates any run
// of whitespace where the shell split the input.
//
//   - A separator is a hard boundary: every matching entry becomes a new
//     working directory, and no match ends the branch.
//   - An argument end is a soft boundary: every matching entry is emitted as
//     a candidate, and the same directory is tried again with the next
//     argument appended.
//
// Candidates are ranked folders first, then by descending path length, so
// the interpretation that consumed the most input comes first.
package resolve
