// Package logx provides the core/log.Logger implementations used by the runtime.
//
// Overview:
//   - Responsibility: Structured logfmt/JSON output through slog, and a zerolog adapter
//   - Key Types: Logger (slog-backed), Options, ZerologLogger
//   - Concurrency Model: All loggers are safe for concurrent use; derived loggers share one writer lock
//   - Error Semantics: No errors returned; write failures are dropped
//   - Performance Notes: Fields are sorted per record; payloads can be truncated
//
// Usage:
//
//	logger := logx.New(logx.WithFormat(logx.FormatJSON), logx.WithLevel(slog.LevelDebug))
//	logger.Info("adapter activated", log.Str("adapter", "Hello"))
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cnlutao/ice/core/log"
	"github.com/cnlutao/ice/core/reqmeta"
	"github.com/cnlutao/ice/logx/internal"
)

// Format specifies the output format for logs.
type Format string

const (
	// FormatLogfmt outputs logs in logfmt format (key=value pairs).
	FormatLogfmt Format = "logfmt"
	// FormatJSON outputs one JSON object per line.
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "logfmt":
		return FormatLogfmt, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q", s)
	}
}

// Options configures the logger behavior.
type Options struct {
	Format           Format     // Output format: logfmt or json
	Level            slog.Level // Minimum log level
	Color            bool       // Enable colorization for level field only
	Writer           io.Writer  // Output writer (default: os.Stderr)
	PayloadMaxBytes  int        // Maximum bytes to log for large payloads (0 = unlimited)
	SensitiveFields  []string   // Field names to mask (e.g., "password", "IceSSL.Password")
	DisableTimestamp bool       // Disable timestamp in output
}

// Logger implements the core/log.Logger interface using slog.
type Logger struct {
	handler *internal.Handler
	attrs   []slog.Attr
}

// New creates a new Logger with the given options.
func New(opts ...Option) log.Logger {
	options := Options{
		Format:          FormatLogfmt,
		Level:           slog.LevelInfo,
		Writer:          os.Stderr,
		SensitiveFields: []string{"IceSSL.Password", "password"},
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.Writer == nil {
		options.Writer = os.Stderr
	}

	handler := internal.NewHandler(internal.Options{
		Format:           string(options.Format),
		Level:            options.Level,
		Color:            options.Color,
		PayloadMaxBytes:  options.PayloadMaxBytes,
		SensitiveFields:  options.SensitiveFields,
		DisableTimestamp: options.DisableTimestamp,
	}, options.Writer)

	return &Logger{
		handler: handler,
	}
}

// Option configures logger behavior.
type Option func(*Options)

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *Options) {
		o.Level = level
	}
}

// WithColor enables colorization for the level field only.
func WithColor(enabled bool) Option {
	return func(o *Options) {
		o.Color = enabled
	}
}

// WithWriter sets the output writer.
func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		o.Writer = w
	}
}

// WithPayloadLimit sets the maximum bytes to log for large payloads.
func WithPayloadLimit(maxBytes int) Option {
	return func(o *Options) {
		o.PayloadMaxBytes = maxBytes
	}
}

// WithSensitiveFields sets field names to mask in logs.
func WithSensitiveFields(fields ...string) Option {
	return func(o *Options) {
		o.SensitiveFields = fields
	}
}

// WithoutTimestamp drops the time field, e.g. for golden output in tests.
func WithoutTimestamp() Option {
	return func(o *Options) {
		o.DisableTimestamp = true
	}
}

// Slog exposes the handler as a *slog.Logger for libraries that want one.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(l.handler.WithAttrs(l.attrs))
}

// With returns a new Logger with the given key-value pairs attached.
func (l *Logger) With(kv ...any) log.Logger {
	newAttrs := append([]slog.Attr{}, l.attrs...)
	newAttrs = append(newAttrs, internal.KVToAttrs(kv)...)

	return &Logger{
		handler: l.handler,
		attrs:   newAttrs,
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, kv ...any) {
	l.log(slog.LevelDebug, msg, internal.KVToAttrs(kv))
}

// Info logs an informational message.
func (l *Logger) Info(msg string, kv ...any) {
	l.log(slog.LevelInfo, msg, internal.KVToAttrs(kv))
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, kv ...any) {
	l.log(slog.LevelWarn, msg, internal.KVToAttrs(kv))
}

// Error logs an error message.
func (l *Logger) Error(err error, msg string, kv ...any) {
	attrs := internal.KVToAttrs(kv)
	if err != nil {
		attrs = append([]slog.Attr{slog.Any("error", err)}, attrs...)
	}
	l.log(slog.LevelError, msg, attrs)
}

func (l *Logger) log(level slog.Level, msg string, attrs []slog.Attr) {
	all := append([]slog.Attr{}, l.attrs...)
	all = append(all, attrs...)
	l.handler.LogRecord(level, msg, all)
}

// FromContext returns base enriched with the dispatch metadata found in ctx.
func FromContext(ctx context.Context, base log.Logger) log.Logger {
	meta, ok := reqmeta.From(ctx)
	if !ok {
		return base
	}

	var kv []any
	if meta.RequestID != "" {
		kv = append(kv, log.Str("request_id", meta.RequestID))
	}
	if meta.Adapter != "" {
		kv = append(kv, log.Str("adapter", meta.Adapter))
	}
	if meta.Identity != "" {
		kv = append(kv, log.Str("identity", meta.Identity))
	}
	if meta.Operation != "" {
		kv = append(kv, log.Str("operation", meta.Operation))
	}
	if len(kv) == 0 {
		return base
	}
	return base.With(kv...)
}
