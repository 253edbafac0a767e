package styles

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Symbols holds the icon set based on nerdfont configuration
type Symbols struct {
	Folder string
	File   string
	Check  string
	Cross  string
	Arrow  string
}

// Default symbols
var defaultSymbols = Symbols{
	Folder: "▸",
	File:   "·",
	Check:  "✓",
	Cross:  "✕",
	Arrow:  "→",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	Folder: "\uf07b", // nf-fa-folder
	File:   "\uf15b", // nf-fa-file
	Check:  "\uf00c", // nf-fa-check
	Cross:  "\uf00d", // nf-fa-times
	Arrow:  "\uf061", // nf-fa-arrow_right
}

// useNerdfont tracks whether nerd font symbols are enabled
var useNerdfont bool

// currentSymbols holds the active symbol set
var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// KindSymbol returns the symbol for a path kind ("folder" or "file").
func KindSymbol(kind string) string {
	switch kind {
	case "folder":
		return currentSymbols.Folder
	case "file":
		return currentSymbols.File
	default:
		return ""
	}
}

// FileURL returns a file:// URL for an absolute path.
func FileURL(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // drive letter paths
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}

// FormatPath renders path with an OSC 8 hyperlink to the file:// URL when
// link is true, so terminals can open the folder on click.
func FormatPath(path string, link bool) string {
	if !link || !filepath.IsAbs(path) {
		return PrimaryStyle.Render(path)
	}
	styled := PrimaryStyle.Underline(true).Render(path)
	return ansi.SetHyperlink(FileURL(path)) + styled + ansi.ResetHyperlink()
}
