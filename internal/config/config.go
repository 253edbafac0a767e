package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
)

// ResolveConfig holds path resolution settings
type ResolveConfig struct {
	CaseSensitive bool `toml:"case_sensitive"` // match names case-sensitively
	Suggestions   int  `toml:"suggestions"`    // "did you mean" hints when nothing resolves
}

// UpdateConfig holds update check settings
type UpdateConfig struct {
	Check    bool   `toml:"check"`    // check for new releases at all
	Interval string `toml:"interval"` // minimum time between checks, e.g. "24h"
	URL      string `toml:"url"`      // latest-release API endpoint
}

// ThemeConfig holds UI theme/color configuration
type ThemeConfig struct {
	Name     string `toml:"name"`     // preset name: "default", "dracula", "nord", "gruvbox", "catppuccin"
	Mode     string `toml:"mode"`     // "auto", "light", "dark"
	Primary  string `toml:"primary"`  // main accent color (borders, titles)
	Accent   string `toml:"accent"`   // highlight color (selected items)
	Success  string `toml:"success"`  // success indicators
	Error    string `toml:"error"`    // error messages
	Muted    string `toml:"muted"`    // disabled/inactive text
	Warning  string `toml:"warning"`  // warnings
	Nerdfont bool   `toml:"nerdfont"` // use nerd font symbols
}

// Config holds the remark configuration
type Config struct {
	MaxLength int           `toml:"max_length"`
	Confirm   bool          `toml:"confirm"`
	StateDir  string        `toml:"state_dir"`
	Resolve   ResolveConfig `toml:"resolve"`
	Update    UpdateConfig  `toml:"update"`
	Theme     ThemeConfig   `toml:"theme"`
}

const (
	// DefaultMaxLength matches what Explorer shows in an InfoTip.
	DefaultMaxLength = 260
	// DefaultStateDir holds history and update state.
	DefaultStateDir = "~/.remark"
	// DefaultUpdateInterval is the minimum time between update checks.
	DefaultUpdateInterval = 24 * time.Hour
	// DefaultUpdateURL is the latest-release endpoint of the project.
	DefaultUpdateURL = "https://api.github.com/repos/piratf/windows-folder-remark/releases/latest"
	// DefaultSuggestions is how many "did you mean" hints are shown.
	DefaultSuggestions = 3
)

// Default returns the default configuration
func Default() Config {
	return Config{
		MaxLength: DefaultMaxLength,
		Confirm:   true,
		StateDir:  DefaultStateDir,
		Resolve:   ResolveConfig{Suggestions: DefaultSuggestions},
		Update: UpdateConfig{
			Check:    true,
			Interval: "24h",
			URL:      DefaultUpdateURL,
		},
	}
}

// GetStateDir returns the expanded state directory.
func (c *Config) GetStateDir() string {
	dir := c.StateDir
	if dir == "" {
		dir = DefaultStateDir
	}
	expanded, err := expandPath(dir)
	if err != nil {
		return dir
	}
	return expanded
}

// GetHistoryPath returns the path of the recent-remarks history file.
func (c *Config) GetHistoryPath() string {
	return filepath.Join(c.GetStateDir(), "history.json")
}

// GetUpdateStatePath returns the path of the update check state file.
func (c *Config) GetUpdateStatePath() string {
	return filepath.Join(c.GetStateDir(), "update.json")
}

// UpdateInterval returns the parsed update interval, falling back to the
// default for empty or invalid values.
func (c *Config) UpdateInterval() time.Duration {
	d, err := time.ParseDuration(c.Update.Interval)
	if err != nil || d < 0 {
		return DefaultUpdateInterval
	}
	return d
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return expanded, nil
}

// ConfigPath returns the path to the config file, honoring REMARK_CONFIG.
func ConfigPath() (string, error) {
	if p := os.Getenv("REMARK_CONFIG"); p != "" {
		return expandPath(p)
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "remark", "config.toml"), nil
}

// rawConfig is used for TOML parsing; pointers tell "unset" from false/0
type rawConfig struct {
	MaxLength *int        `toml:"max_length"`
	Confirm   *bool       `toml:"confirm"`
	StateDir  string      `toml:"state_dir"`
	Resolve   rawResolve  `toml:"resolve"`
	Update    rawUpdate   `toml:"update"`
	Theme     ThemeConfig `toml:"theme"`
}

type rawResolve struct {
	CaseSensitive bool `toml:"case_sensitive"`
	Suggestions   *int `toml:"suggestions"`
}

type rawUpdate struct {
	Check    *bool  `toml:"check"`
	Interval string `toml:"interval"`
	URL      string `toml:"url"`
}

// Load reads the config file (see ConfigPath) and applies env overrides.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Default()
		return cfg, applyEnvOverrides(&cfg)
	}
	return LoadFile(path)
}

// LoadFile reads config from path and applies env overrides.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			return cfg, applyEnvOverrides(&cfg)
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Default(), err
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// parse decodes and validates TOML content on top of Default().
func parse(data []byte) (Config, error) {
	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Default()
	if raw.MaxLength != nil {
		cfg.MaxLength = *raw.MaxLength
	}
	if raw.Confirm != nil {
		cfg.Confirm = *raw.Confirm
	}
	if raw.StateDir != "" {
		cfg.StateDir = raw.StateDir
	}
	cfg.Resolve.CaseSensitive = raw.Resolve.CaseSensitive
	if raw.Resolve.Suggestions != nil {
		cfg.Resolve.Suggestions = *raw.Resolve.Suggestions
	}
	if raw.Update.Check != nil {
		cfg.Update.Check = *raw.Update.Check
	}
	if raw.Update.Interval != "" {
		cfg.Update.Interval = raw.Update.Interval
	}
	if raw.Update.URL != "" {
		cfg.Update.URL = raw.Update.URL
	}
	cfg.Theme = raw.Theme

	if err := validate(&cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.MaxLength <= 0 {
		return fmt.Errorf("invalid max_length %d: must be positive", cfg.MaxLength)
	}
	if cfg.Resolve.Suggestions < 0 {
		return fmt.Errorf("invalid resolve.suggestions %d: must not be negative", cfg.Resolve.Suggestions)
	}
	if err := ValidatePath(cfg.StateDir, "state_dir"); err != nil {
		return err
	}
	if d, err := time.ParseDuration(cfg.Update.Interval); err != nil || d < 0 {
		return fmt.Errorf("invalid update.interval %q: must be a duration like \"24h\"", cfg.Update.Interval)
	}
	if cfg.Theme.Name != "" && !isValidThemeName(cfg.Theme.Name) {
		return fmt.Errorf("invalid theme.name %q: must be %s", cfg.Theme.Name, formatOptions(ValidThemeNames))
	}
	return validateEnum(cfg.Theme.Mode, "theme.mode", ValidThemeModes)
}

// applyEnvOverrides applies REMARK_* environment variables on top of cfg.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("REMARK_HOME"); v != "" {
		if err := ValidatePath(v, "REMARK_HOME"); err != nil {
			return err
		}
		cfg.StateDir = v
	}
	if v := os.Getenv("REMARK_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("REMARK_THEME_MODE"); v != "" {
		cfg.Theme.Mode = v
	}
	return nil
}

// DefaultConfig returns the commented default config file content
func DefaultConfig() string {
	return defaultConfig
}

const defaultConfig = `# remark configuration

# Longest remark stored; longer remarks are truncated with a warning.
# Explorer shows at most 260 characters in a folder tooltip.
max_length = 260

# Ask for confirmation before writing a remark to a path that was
# reconstructed from unquoted arguments. Use -y/--yes to skip once.
confirm = true

# Where history and update check state are kept.
# Must be an absolute path or start with ~
# Override with REMARK_HOME.
# state_dir = "~/.remark"

[resolve]
# Match folder names case-sensitively. Windows file systems are
# case-insensitive, so the default is false.
case_sensitive = false

# How many "did you mean" suggestions to print when a path cannot be
# resolved. 0 disables suggestions.
suggestions = 3

[update]
# Check GitHub for a newer release (check only, nothing is downloaded).
check = true

# Minimum time between two checks.
interval = "24h"

# url = "https://api.github.com/repos/piratf/windows-folder-remark/releases/latest"

# Theme settings for prompts and tables
# [theme]
# name = "default"   # none, default, dracula, nord, gruvbox, catppuccin
# mode = "auto"      # auto, light, dark
# nerdfont = false   # use nerd font symbols
#
# Individual color overrides (hex or ANSI 256 color codes):
# primary = "#89b4fa"
# accent = "#f5c2e7"
# success = "#a6e3a1"
# error = "#f38ba8"
# muted = "#6c7086"
# warning = "#fab387"
`

// Init creates a default config file at ConfigPath().
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}
	return path, initAt(path, force)
}

func initAt(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), 0o644)
}
