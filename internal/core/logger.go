package core

// Logger receives diagnostic messages from a simulation. *log.Logger
// satisfies it; sims treat the sink as an injected capability rather than
// writing to process-global state.
type Logger interface {
	Printf(format string, args ...any)
}

// NopLogger discards all messages.
type NopLogger struct{}

// Printf implements Logger by doing nothing.
func (NopLogger) Printf(string, ...any) {}
