// Package config handles loading and validation of remark configuration.
//
// Configuration is read from ~/.config/remark/config.toml with environment
// variable overrides.
//
// # Configuration Sources (highest priority first)
//
//   - REMARK_CONFIG env var: alternate config file path
//   - REMARK_HOME env var: directory for history and update state
//   - REMARK_THEME / REMARK_THEME_MODE env vars: theme overrides
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - max_length: longest remark stored before truncation (default: 260)
//   - confirm: ask before writing a remark for a resolved path (default: true)
//   - state_dir: where history and update state live (default: ~/.remark)
//   - [resolve] case_sensitive: match folder names exactly (default: false)
//   - [update] check, interval, url: update check behavior
//   - [theme] name, mode, nerdfont and color overrides
//
// # Path Validation
//
// state_dir must be absolute or start with ~ (no relative paths like "." or
// "..") so it does not depend on the working directory.
package config
