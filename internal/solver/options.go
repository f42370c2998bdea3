package solver

import "io"

// Options configures a Solve invocation. It is intentionally small,
// mirroring the shape of the teacher's generator.Options: a struct of
// knobs with a constructor that fills in sane defaults, no environment
// variables and no config files (the original spec forbids both in §6).
type Options struct {
	// Trace enables diagnostic trace logging during propagation and
	// branching (§9). Tracing never affects the result set.
	Trace bool
	// TraceWriter receives trace output when Trace is true. Defaults to
	// io.Discard via DefaultOptions if left nil.
	TraceWriter io.Writer
}

// DefaultOptions returns an Options with tracing disabled.
func DefaultOptions() *Options {
	return &Options{
		Trace:       false,
		TraceWriter: io.Discard,
	}
}
