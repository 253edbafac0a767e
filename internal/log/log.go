// Package log provides context-aware logging for remark.
//
// Diagnostics go to stderr through a Logger carried on the context.
// Primary data (paths, remarks, tables) goes through the output package.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

type ctxKey struct{}

// Logger writes diagnostics. Debug output only appears in verbose mode,
// and quiet mode suppresses everything. It is safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a new logger.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	l.write(fmt.Sprintf(format, args...))
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	l.write(fmt.Sprintln(args...))
}

// Warnf writes a "Warning: " prefixed line.
func (l *Logger) Warnf(format string, args ...any) {
	if l.quiet {
		return
	}
	l.write(fmt.Sprintf("Warning: "+format+"\n", args...))
}

// Debug writes msg followed by key=value pairs when verbose.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	b.WriteByte('\n')
	l.write(b.String())
}

func (l *Logger) write(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.out, s)
}

// IsVerbose reports whether debug output is enabled.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
