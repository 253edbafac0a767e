// Package prompt provides the interactive prompts of remark.
//
// Prompts render to stderr so stdout stays clean for --json and piping.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation with a configurable default
//   - [TextInput]: Single-line remark input
//   - [Select]: Pick one of several resolved paths
package prompt

import "errors"

// ErrCancelled is returned by callers when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled")
