package styles

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/raphi011/remark/internal/config"
)

// Theme defines the color palette for UI components
type Theme struct {
	Primary color.Color // borders, titles
	Accent  color.Color // selected items
	Success color.Color // remark written
	Error   color.Color // errors
	Muted   color.Color // hints, remaining text
	Normal  color.Color // standard text
	Warning color.Color // truncation, update notices
}

// themeFamily groups light and dark variants of a theme
type themeFamily struct {
	Light *Theme // nil if no light variant
	Dark  *Theme // nil if no dark variant
}

// palette builds a Theme from color strings in field order.
func palette(primary, accent, success, errc, muted, normal, warning string) *Theme {
	return &Theme{
		Primary: lipgloss.Color(primary),
		Accent:  lipgloss.Color(accent),
		Success: lipgloss.Color(success),
		Error:   lipgloss.Color(errc),
		Muted:   lipgloss.Color(muted),
		Normal:  lipgloss.Color(normal),
		Warning: lipgloss.Color(warning),
	}
}

// DefaultTheme is used when no theme is configured.
var DefaultTheme = *palette("62", "212", "82", "196", "240", "252", "214")

// NoneTheme renders without colors; bold and italic still apply.
var NoneTheme = Theme{
	Primary: lipgloss.NoColor{},
	Accent:  lipgloss.NoColor{},
	Success: lipgloss.NoColor{},
	Error:   lipgloss.NoColor{},
	Muted:   lipgloss.NoColor{},
	Normal:  lipgloss.NoColor{},
	Warning: lipgloss.NoColor{},
}

// themeFamilies maps theme names to their light/dark variants
var themeFamilies = map[string]themeFamily{
	"none":    {Light: &NoneTheme, Dark: &NoneTheme},
	"default": {Dark: &DefaultTheme},
	"dracula": {Dark: palette("#bd93f9", "#ff79c6", "#50fa7b", "#ff5555", "#6272a4", "#f8f8f2", "#ffb86c")},
	"nord": {
		Light: palette("#5e81ac", "#b48ead", "#a3be8c", "#bf616a", "#9a9a9a", "#2e3440", "#d08770"),
		Dark:  palette("#88c0d0", "#b48ead", "#a3be8c", "#bf616a", "#4c566a", "#eceff4", "#ebcb8b"),
	},
	"gruvbox": {
		Light: palette("#076678", "#8f3f71", "#79740e", "#9d0006", "#928374", "#3c3836", "#b57614"),
		Dark:  palette("#83a598", "#d3869b", "#b8bb26", "#fb4934", "#665c54", "#ebdbb2", "#fabd2f"),
	},
	"catppuccin": {
		Light: palette("#1e66f5", "#ea76cb", "#40a02b", "#d20f39", "#9ca0b0", "#4c4f69", "#fe640b"),
		Dark:  palette("#89b4fa", "#f5c2e7", "#a6e3a1", "#f38ba8", "#6c7086", "#cdd6f4", "#fab387"),
	},
}

// currentTheme holds the active theme
var currentTheme = DefaultTheme

// Current returns the current theme
func Current() Theme {
	return currentTheme
}

// hasDarkBackground asks the terminal for its background color.
var hasDarkBackground = func() bool {
	return lipgloss.HasDarkBackground(os.Stdin, os.Stderr)
}

// Init applies the configured theme, color overrides and symbol set.
// Call this after loading config and before displaying any UI.
func Init(cfg config.ThemeConfig) {
	theme := selectTheme(cfg, hasDarkBackground)

	for _, o := range []struct {
		value string
		dst   *color.Color
	}{
		{cfg.Primary, &theme.Primary},
		{cfg.Accent, &theme.Accent},
		{cfg.Success, &theme.Success},
		{cfg.Error, &theme.Error},
		{cfg.Muted, &theme.Muted},
		{cfg.Warning, &theme.Warning},
	} {
		if o.value != "" {
			*o.dst = lipgloss.Color(o.value)
		}
	}

	currentTheme = theme
	applyTheme(theme)
	SetNerdfont(cfg.Nerdfont)
}

// selectTheme picks the variant for cfg.Mode. Unknown names fall back to
// the default theme; "auto" and unknown modes ask isDark.
func selectTheme(cfg config.ThemeConfig, isDark func() bool) Theme {
	family, ok := themeFamilies[cfg.Name]
	if !ok {
		family = themeFamilies["default"]
	}

	var theme *Theme
	switch cfg.Mode {
	case "light":
		theme = family.Light
	case "dark":
		theme = family.Dark
	default:
		if isDark() {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	}

	// Fall back if the requested variant doesn't exist
	if theme == nil {
		theme = family.Dark
	}
	if theme == nil {
		theme = family.Light
	}
	return *theme
}

// applyTheme updates all global style variables to use the given theme
func applyTheme(t Theme) {
	Primary = t.Primary
	Accent = t.Accent
	Success = t.Success
	Error = t.Error
	Muted = t.Muted
	Normal = t.Normal
	Warning = t.Warning

	PrimaryStyle = lipgloss.NewStyle().Foreground(t.Primary)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	RemarkStyle = lipgloss.NewStyle().Foreground(t.Normal).Italic(true)

	RoundedBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1)
}

// GetPreset returns a theme preset by name, or nil if not found.
// For families with both variants the dark one is returned.
func GetPreset(name string) *Theme {
	if family, ok := themeFamilies[name]; ok {
		if family.Dark != nil {
			return family.Dark
		}
		return family.Light
	}
	return nil
}

// PresetNames returns the available theme family names
func PresetNames() []string {
	return config.ValidThemeNames
}
