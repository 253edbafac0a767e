package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.MaxLength != DefaultMaxLength {
		t.Errorf("MaxLength = %d, want %d", cfg.MaxLength, DefaultMaxLength)
	}
	if !cfg.Confirm {
		t.Error("Confirm = false, want true")
	}
	if cfg.Resolve.CaseSensitive {
		t.Error("Resolve.CaseSensitive = true, want false")
	}
	if cfg.UpdateInterval() != DefaultUpdateInterval {
		t.Errorf("UpdateInterval() = %v, want %v", cfg.UpdateInterval(), DefaultUpdateInterval)
	}
}

func TestDefaultConfigIsValidTOML(t *testing.T) {
	t.Parallel()

	content := DefaultConfig()
	var raw rawConfig
	if _, err := toml.Decode(content, &raw); err != nil {
		t.Errorf("DefaultConfig() produces invalid TOML: %v\nContent:\n%s", err, content)
	}
}

// Scenario: the generated default file is parsed back
// Expected: it yields the same values as Default()
func TestDefaultConfigMatchesDefault(t *testing.T) {
	t.Parallel()

	cfg, err := parse([]byte(DefaultConfig()))
	if err != nil {
		t.Fatalf("parse(DefaultConfig()) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("parse(DefaultConfig()) = %+v, want %+v", cfg, Default())
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		toml    string
		check   func(t *testing.T, cfg Config)
		wantErr string
	}{
		{
			name: "empty file keeps defaults",
			toml: ``,
			check: func(t *testing.T, cfg Config) {
				if cfg != Default() {
					t.Errorf("cfg = %+v, want defaults", cfg)
				}
			},
		},
		{
			name: "explicit false overrides true defaults",
			toml: "confirm = false\n[update]\ncheck = false\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Confirm || cfg.Update.Check {
					t.Errorf("Confirm = %v, Update.Check = %v, want both false", cfg.Confirm, cfg.Update.Check)
				}
			},
		},
		{
			name: "resolve settings",
			toml: "[resolve]\ncase_sensitive = true\nsuggestions = 0\n",
			check: func(t *testing.T, cfg Config) {
				if !cfg.Resolve.CaseSensitive || cfg.Resolve.Suggestions != 0 {
					t.Errorf("Resolve = %+v", cfg.Resolve)
				}
			},
		},
		{
			name: "max length and state dir",
			toml: "max_length = 80\nstate_dir = \"~/remark-state\"\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.MaxLength != 80 || cfg.StateDir != "~/remark-state" {
					t.Errorf("MaxLength = %d, StateDir = %q", cfg.MaxLength, cfg.StateDir)
				}
			},
		},
		{
			name: "update interval",
			toml: "[update]\ninterval = \"1h30m\"\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.UpdateInterval() != 90*time.Minute {
					t.Errorf("UpdateInterval() = %v", cfg.UpdateInterval())
				}
			},
		},
		{name: "zero max length", toml: "max_length = 0\n", wantErr: "max_length"},
		{name: "negative suggestions", toml: "[resolve]\nsuggestions = -1\n", wantErr: "suggestions"},
		{name: "relative state dir", toml: "state_dir = \"./state\"\n", wantErr: "state_dir"},
		{name: "bad interval", toml: "[update]\ninterval = \"daily\"\n", wantErr: "update.interval"},
		{name: "bad theme", toml: "[theme]\nname = \"solarized\"\n", wantErr: "theme.name"},
		{name: "bad theme mode", toml: "[theme]\nmode = \"dim\"\n", wantErr: "theme.mode"},
		{name: "invalid toml", toml: "max_length = \n", wantErr: "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := parse([]byte(tt.toml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("parse() error = %v, want mention of %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestIsValidThemeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		valid bool
	}{
		{"none", true},
		{"default", true},
		{"dracula", true},
		{"nord", true},
		{"gruvbox", true},
		{"catppuccin", true},
		{"invalid", false},
		{"", false},
		{"DRACULA", false},
		{"catppuccin-mocha", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isValidThemeName(tt.name); got != tt.valid {
				t.Errorf("isValidThemeName(%q) = %v, want %v", tt.name, got, tt.valid)
			}
		})
	}
}

func TestThemeConfigParsing(t *testing.T) {
	t.Parallel()

	cfg, err := parse([]byte("[theme]\nname = \"nord\"\nmode = \"light\"\nprimary = \"#ff0000\"\nnerdfont = true\n"))
	if err != nil {
		t.Fatalf("parse() error = %v", err)
	}
	want := ThemeConfig{Name: "nord", Mode: "light", Primary: "#ff0000", Nerdfont: true}
	if cfg.Theme != want {
		t.Errorf("Theme = %+v, want %+v", cfg.Theme, want)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("REMARK_HOME", "")
	t.Setenv("REMARK_THEME", "")
	t.Setenv("REMARK_THEME_MODE", "")

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if cfg != Default() {
			t.Errorf("LoadFile() = %+v, want defaults", cfg)
		}
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("max_length = 120\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if cfg.MaxLength != 120 {
			t.Errorf("MaxLength = %d, want 120", cfg.MaxLength)
		}
	})

	t.Run("invalid file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("max_length = -3\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Error("LoadFile() error = nil for negative max_length")
		}
	})
}

func TestConfigPath_Env(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv("REMARK_CONFIG", want)

	got, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	if got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestInitAt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := initAt(path, false); err != nil {
		t.Fatalf("initAt() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != DefaultConfig() {
		t.Error("written config differs from DefaultConfig()")
	}

	if err := initAt(path, false); err == nil {
		t.Error("second initAt() without force succeeded")
	}
	if err := initAt(path, true); err != nil {
		t.Errorf("initAt() with force error = %v", err)
	}
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{MaxLength: 42}
		ctx := WithConfig(context.Background(), cfg)
		got := FromContext(ctx)
		if got != cfg {
			t.Error("FromContext did not return the stored config")
		}
	})

	t.Run("nil when not set", func(t *testing.T) {
		t.Parallel()
		if got := FromContext(context.Background()); got != nil {
			t.Errorf("FromContext on empty context = %v, want nil", got)
		}
	})

	t.Run("default when not set", func(t *testing.T) {
		t.Parallel()
		got := FromContextOrDefault(context.Background())
		if got == nil || *got != Default() {
			t.Errorf("FromContextOrDefault = %+v, want defaults", got)
		}
	})
}

func TestStatePaths(t *testing.T) {
	t.Parallel()

	t.Run("override", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{StateDir: "/custom/state"}
		if got := cfg.GetHistoryPath(); got != filepath.Join("/custom/state", "history.json") {
			t.Errorf("GetHistoryPath = %q", got)
		}
		if got := cfg.GetUpdateStatePath(); got != filepath.Join("/custom/state", "update.json") {
			t.Errorf("GetUpdateStatePath = %q", got)
		}
	})

	t.Run("default", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{}
		home, err := homedir.Dir()
		if err != nil {
			t.Skip("no home directory")
		}
		want := filepath.Join(home, ".remark", "history.json")
		if got := cfg.GetHistoryPath(); got != want {
			t.Errorf("GetHistoryPath = %q, want %q", got, want)
		}
	})
}

func TestValidatePath(t *testing.T) {
	t.Parallel()

	abs := filepath.Join(t.TempDir(), "x")
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"", false},
		{"~/state", false},
		{abs, false},
		{".", true},
		{"../state", true},
	}
	for _, tt := range tests {
		if err := ValidatePath(tt.path, "state_dir"); (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	// Cannot use t.Parallel() because t.Setenv mutates process env
	t.Run("REMARK_THEME overrides theme name", func(t *testing.T) {
		t.Setenv("REMARK_THEME", "nord")
		cfg := Default()
		if err := applyEnvOverrides(&cfg); err != nil {
			t.Fatalf("applyEnvOverrides error: %v", err)
		}
		if cfg.Theme.Name != "nord" {
			t.Errorf("Theme.Name = %q, want %q", cfg.Theme.Name, "nord")
		}
	})

	t.Run("REMARK_THEME_MODE overrides theme mode", func(t *testing.T) {
		t.Setenv("REMARK_THEME_MODE", "dark")
		cfg := Default()
		if err := applyEnvOverrides(&cfg); err != nil {
			t.Fatalf("applyEnvOverrides error: %v", err)
		}
		if cfg.Theme.Mode != "dark" {
			t.Errorf("Theme.Mode = %q, want %q", cfg.Theme.Mode, "dark")
		}
	})

	t.Run("REMARK_HOME overrides state dir", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("REMARK_HOME", dir)
		cfg := Default()
		if err := applyEnvOverrides(&cfg); err != nil {
			t.Fatalf("applyEnvOverrides error: %v", err)
		}
		if cfg.GetStateDir() != dir {
			t.Errorf("GetStateDir() = %q, want %q", cfg.GetStateDir(), dir)
		}
	})

	t.Run("relative REMARK_HOME rejected", func(t *testing.T) {
		t.Setenv("REMARK_HOME", "state")
		cfg := Default()
		if err := applyEnvOverrides(&cfg); err == nil {
			t.Error("applyEnvOverrides accepted relative REMARK_HOME")
		}
	})

	t.Run("empty env vars leave config unchanged", func(t *testing.T) {
		t.Setenv("REMARK_THEME", "")
		t.Setenv("REMARK_THEME_MODE", "")
		t.Setenv("REMARK_HOME", "")
		cfg := Config{Theme: ThemeConfig{Name: "dracula", Mode: "light"}}
		if err := applyEnvOverrides(&cfg); err != nil {
			t.Fatalf("applyEnvOverrides error: %v", err)
		}
		if cfg.Theme.Name != "dracula" || cfg.Theme.Mode != "light" {
			t.Errorf("Theme = %+v, want unchanged", cfg.Theme)
		}
	})
}

func TestValidateEnum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		allowed []string
		wantErr bool
	}{
		{"empty value is ok", "", []string{"a", "b"}, false},
		{"valid value", "a", []string{"a", "b"}, false},
		{"invalid value", "c", []string{"a", "b"}, true},
		{"case sensitive", "A", []string{"a", "b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateEnum(tt.value, "test", tt.allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateEnum(%q, %v) error = %v, wantErr %v", tt.value, tt.allowed, err, tt.wantErr)
			}
		})
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []string
		want string
	}{
		{"single option", []string{"a"}, `"a"`},
		{"two options", []string{"a", "b"}, `"a" or "b"`},
		{"three options", []string{"a", "b", "c"}, `"a", "b", or "c"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatOptions(tt.opts); got != tt.want {
				t.Errorf("formatOptions(%v) = %q, want %q", tt.opts, got, tt.want)
			}
		})
	}
}
