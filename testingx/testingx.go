// Package testingx provides test helpers shared by the runtime packages.
//
// Overview:
//   - Responsibility: Recording logger, error-code assertions, context fixtures
//   - Key Types: MockLogger, LogEntry
//   - Concurrency Model: MockLogger is safe for concurrent use; derived loggers share one record
//   - Error Semantics: Failures are reported through testing.TB
//
// Usage:
//
//	logger := testingx.NewMockLogger(t)
//	comm.SetLogger(logger)
//	logger.AssertLogged("WARN", "unknown property")
//	testingx.AssertCode(t, err, errors.CodeDestroyed)
package testingx

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/cnlutao/ice/core/errors"
	"github.com/cnlutao/ice/core/log"
	"github.com/cnlutao/ice/core/reqmeta"
)

// LogEntry represents a single log entry.
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]any
	Error   error
}

type sink struct {
	mu      sync.Mutex
	entries []LogEntry
}

// MockLogger records every entry for later assertions.
type MockLogger struct {
	t      testing.TB
	sink   *sink
	fields []any
}

// NewMockLogger creates a new mock logger.
func NewMockLogger(t testing.TB) *MockLogger {
	return &MockLogger{t: t, sink: &sink{}}
}

// With returns a logger that adds kv to its entries and records into the same log.
func (m *MockLogger) With(kv ...any) log.Logger {
	fields := append(append([]any{}, m.fields...), kv...)
	return &MockLogger{t: m.t, sink: m.sink, fields: fields}
}

// Debug logs a debug message.
func (m *MockLogger) Debug(msg string, kv ...any) {
	m.log("DEBUG", msg, nil, kv)
}

// Info logs an info message.
func (m *MockLogger) Info(msg string, kv ...any) {
	m.log("INFO", msg, nil, kv)
}

// Warn logs a warning message.
func (m *MockLogger) Warn(msg string, kv ...any) {
	m.log("WARN", msg, nil, kv)
}

// Error logs an error message.
func (m *MockLogger) Error(err error, msg string, kv ...any) {
	m.log("ERROR", msg, err, kv)
}

func (m *MockLogger) log(level, msg string, err error, kv []any) {
	fields := fieldMap(append(append([]any{}, m.fields...), kv...))
	m.sink.mu.Lock()
	defer m.sink.mu.Unlock()
	m.sink.entries = append(m.sink.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  fields,
		Error:   err,
	})
}

// fieldMap flattens pair helpers and raw key/value lists into a map.
func fieldMap(kv []any) map[string]any {
	out := make(map[string]any)
	var flat []any
	for _, item := range kv {
		if pair, ok := item.([]any); ok && len(pair) == 2 {
			flat = append(flat, pair...)
			continue
		}
		flat = append(flat, item)
	}
	for i := 0; i+1 < len(flat); i += 2 {
		out[fmt.Sprint(flat[i])] = flat[i+1]
	}
	return out
}

// Entries returns all log entries.
func (m *MockLogger) Entries() []LogEntry {
	m.sink.mu.Lock()
	defer m.sink.mu.Unlock()
	return append([]LogEntry(nil), m.sink.entries...)
}

// Find returns the entries with the given level and message.
func (m *MockLogger) Find(level, msg string) []LogEntry {
	var out []LogEntry
	for _, e := range m.Entries() {
		if e.Level == level && e.Message == msg {
			out = append(out, e)
		}
	}
	return out
}

// AssertLogged asserts that a message was logged.
func (m *MockLogger) AssertLogged(level, msg string) {
	m.t.Helper()
	if len(m.Find(level, msg)) == 0 {
		m.t.Errorf("expected log message not found: level=%s msg=%q", level, msg)
	}
}

// AssertNotLogged asserts that a message was never logged.
func (m *MockLogger) AssertNotLogged(level, msg string) {
	m.t.Helper()
	if n := len(m.Find(level, msg)); n > 0 {
		m.t.Errorf("unexpected log message (%d times): level=%s msg=%q", n, level, msg)
	}
}

// Clear clears all log entries.
func (m *MockLogger) Clear() {
	m.sink.mu.Lock()
	defer m.sink.mu.Unlock()
	m.sink.entries = nil
}

// NewContextWithMeta creates a context carrying dispatch metadata.
func NewContextWithMeta(t testing.TB, meta *reqmeta.Meta) context.Context {
	t.Helper()
	ctx := context.Background()
	if meta != nil {
		ctx = reqmeta.With(ctx, meta)
	}
	return ctx
}

// AssertCode asserts that err carries code somewhere in its chain.
func AssertCode(t testing.TB, err error, code errors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	if !errors.IsCode(err, code) {
		t.Errorf("expected error code %s, got %s (%v)", code, errors.CodeOf(err), err)
	}
}

// AssertNoError asserts that no error occurred.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}
