// Package log defines the logging contract shared by every runtime package.
//
// Overview:
//   - Responsibility: Stable structured logging interface for communicators and their services
//   - Key Types: Logger interface, pair helpers (Str, Int, Bool, Dur)
//   - Concurrency Model: Logger implementations must be safe for concurrent use
//   - Error Semantics: Error takes the error as first parameter
//   - Performance Notes: Pair helpers allocate one small slice per field
//
// Usage:
//
//	logger.Info("adapter activated", log.Str("adapter", "Hello"), log.Int("servants", 3))
package log

import "time"

// Logger is the structured logger consumed by the runtime.
// Implementations must be safe for concurrent use: a communicator keeps
// handing out its logger after it has been destroyed.
type Logger interface {
	// With returns a Logger that adds kv to every entry.
	With(kv ...any) Logger

	// Debug logs a trace-level message.
	Debug(msg string, kv ...any)

	// Info logs an informational message.
	Info(msg string, kv ...any)

	// Warn logs a warning, e.g. an unknown or deprecated property.
	Warn(msg string, kv ...any)

	// Error logs err with msg.
	Error(err error, msg string, kv ...any)
}

// Str creates a string key-value pair.
func Str(k, v string) any {
	return []any{k, v}
}

// Int creates an integer key-value pair.
func Int(k string, v int) any {
	return []any{k, v}
}

// Bool creates a boolean key-value pair.
func Bool(k string, v bool) any {
	return []any{k, v}
}

// Dur creates a duration key-value pair.
func Dur(k string, v time.Duration) any {
	return []any{k, v}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (l nopLogger) With(kv ...any) Logger              { return l }
func (nopLogger) Debug(msg string, kv ...any)            {}
func (nopLogger) Info(msg string, kv ...any)             {}
func (nopLogger) Warn(msg string, kv ...any)             {}
func (nopLogger) Error(err error, msg string, kv ...any) {}
