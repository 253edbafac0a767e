package prompt

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
)

// newProgram runs m on stderr with the color profile the terminal supports.
func newProgram(m tea.Model) *tea.Program {
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	return tea.NewProgram(m,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
}
