package main

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// stdinIsTerminal reports whether prompts can be shown.
func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// stderrIsTerminal reports whether animations can be drawn.
func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// stripQuotes removes the quotes Explorer adds when a folder is dragged
// into the terminal.
func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}
