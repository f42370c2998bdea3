// Package tracelog provides the diagnostic trace logging described in §9
// of the solver spec: human-readable lines emitted during propagation and
// branching that are purely informational and never influence the result.
package tracelog

import (
	"io"
	"log"
)

// Logger wraps the standard library's log.Logger. A nil *Logger is valid
// and every method on it is a no-op, so callers can pass a nil logger
// unconditionally without branching on whether tracing is enabled.
type Logger struct {
	id  string
	std *log.Logger
}

// New creates a Logger that writes to w, prefixing every line with id (the
// per-Solve correlation id) so interleaved or repeated Solve calls in the
// same process remain distinguishable in the output.
func New(w io.Writer, id string) *Logger {
	return &Logger{
		id:  id,
		std: log.New(w, "", log.LstdFlags),
	}
}

// Tracef logs a formatted diagnostic line. It is a no-op on a nil Logger.
func (l *Logger) Tracef(format string, args ...any) {
	if l == nil || l.std == nil {
		return
	}
	l.std.Printf("[%s] "+format, append([]any{l.id}, args...)...)
}
