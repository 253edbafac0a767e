// Package styles provides shared lipgloss styles for remark's terminal output.
//
// Colors come from the active [Theme], set once by [Init] after the config
// is loaded. Prompts and tables read the package-level styles, so they pick
// up theme changes without holding their own copies.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Active colors, replaced by Init.
var (
	Primary color.Color = lipgloss.Color("62")
	Accent  color.Color = lipgloss.Color("212")
	Success color.Color = lipgloss.Color("82")
	Error   color.Color = lipgloss.Color("196")
	Muted   color.Color = lipgloss.Color("240")
	Normal  color.Color = lipgloss.Color("252")
	Warning color.Color = lipgloss.Color("214")
)

// Common styles
var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)
	AccentStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// RemarkStyle renders remark text in prompts and tables.
	RemarkStyle = lipgloss.NewStyle().Foreground(Normal).Italic(true)

	// RoundedBorder frames the remark preview.
	RoundedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)
