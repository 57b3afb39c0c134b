// Package internal provides the slog handler behind logx.
package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Options configures the handler.
type Options struct {
	Format           string     // Output format: logfmt or json
	Level            slog.Level // Minimum log level
	Color            bool       // Colorize the level field (logfmt only)
	PayloadMaxBytes  int        // Maximum bytes per string value (0 = unlimited)
	SensitiveFields  []string   // Field names to mask
	DisableTimestamp bool       // Omit the time field
}

const redacted = "***REDACTED***"

// Handler is a slog.Handler writing one line per record with fields sorted by key.
// Handlers derived through WithAttrs share the writer lock of their parent.
type Handler struct {
	opts   Options
	mu     *sync.Mutex
	writer io.Writer
	attrs  []slog.Attr
	group  string
}

// NewHandler creates a new Handler writing to writer.
func NewHandler(opts Options, writer io.Writer) *Handler {
	return &Handler{
		opts:   opts,
		mu:     &sync.Mutex{},
		writer: writer,
	}
}

// LogRecord writes a record with pre-converted attributes.
func (h *Handler) LogRecord(level slog.Level, msg string, attrs []slog.Attr) {
	if level < h.opts.Level {
		return
	}

	all := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	all = append(all, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		all = append(all, a)
	}
	sorted := SortAttrs(all)

	var line []byte
	if h.opts.Format == "json" {
		line = h.formatJSON(level, msg, sorted)
	} else {
		line = h.formatLogfmt(level, msg, sorted)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, _ = h.writer.Write(line)
}

func (h *Handler) formatLogfmt(level slog.Level, msg string, attrs []slog.Attr) []byte {
	var buf strings.Builder

	if !h.opts.DisableTimestamp {
		buf.WriteString("time=")
		buf.WriteString(time.Now().Format(time.RFC3339))
		buf.WriteString(" ")
	}

	levelStr := LevelString(level)
	buf.WriteString("level=")
	if h.opts.Color {
		buf.WriteString(ColorizeLevel(levelStr))
	} else {
		buf.WriteString(levelStr)
	}

	buf.WriteString(" msg=")
	buf.WriteString(strconv.Quote(msg))

	for _, attr := range attrs {
		buf.WriteString(" ")
		buf.WriteString(attr.Key)
		buf.WriteString("=")
		buf.WriteString(FormatValue(attr.Key, attr.Value, h.opts))
	}

	buf.WriteString("\n")
	return []byte(buf.String())
}

// formatJSON builds the object by hand so that keys keep their sorted order.
func (h *Handler) formatJSON(level slog.Level, msg string, attrs []slog.Attr) []byte {
	var buf strings.Builder
	buf.WriteString("{")

	if !h.opts.DisableTimestamp {
		writeJSONField(&buf, "time", time.Now().Format(time.RFC3339))
		buf.WriteString(",")
	}
	writeJSONField(&buf, "level", LevelString(level))
	buf.WriteString(",")
	writeJSONField(&buf, "msg", msg)

	for _, attr := range attrs {
		buf.WriteString(",")
		writeJSONField(&buf, attr.Key, JSONValue(attr.Key, attr.Value, h.opts))
	}

	buf.WriteString("}\n")
	return []byte(buf.String())
}

func writeJSONField(buf *strings.Builder, key string, value any) {
	k, _ := json.Marshal(key)
	v, err := json.Marshal(value)
	if err != nil {
		v, _ = json.Marshal(fmt.Sprint(value))
	}
	buf.Write(k)
	buf.WriteString(":")
	buf.Write(v)
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	attrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	h.LogRecord(r.Level, r.Message, attrs)
	return nil
}

// WithAttrs returns a new Handler with the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		newAttrs = append(newAttrs, a)
	}

	return &Handler{
		opts:   h.opts,
		mu:     h.mu,
		writer: h.writer,
		attrs:  newAttrs,
		group:  h.group,
	}
}

// WithGroup returns a new Handler that prefixes subsequent keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &Handler{
		opts:   h.opts,
		mu:     h.mu,
		writer: h.writer,
		attrs:  h.attrs,
		group:  group,
	}
}

// KVToAttrs converts key-value pairs to a slog.Attr slice.
// Pairs built by the core/log helpers arrive as two-element []any values.
func KVToAttrs(kv []any) []slog.Attr {
	flat := make([]any, 0, len(kv))
	for _, item := range kv {
		switch v := item.(type) {
		case []any:
			if len(v) == 2 {
				flat = append(flat, v[0], v[1])
			} else {
				flat = append(flat, v)
			}
		case slog.Attr:
			flat = append(flat, v.Key, v.Value)
		default:
			flat = append(flat, v)
		}
	}

	attrs := make([]slog.Attr, 0, len(flat)/2)
	for i := 0; i < len(flat)-1; i += 2 {
		key := fmt.Sprintf("%v", flat[i])
		if v, ok := flat[i+1].(slog.Value); ok {
			attrs = append(attrs, slog.Attr{Key: key, Value: v})
			continue
		}
		attrs = append(attrs, slog.Any(key, flat[i+1]))
	}
	return attrs
}

// SortAttrs returns a copy of attrs sorted by key.
func SortAttrs(attrs []slog.Attr) []slog.Attr {
	sorted := make([]slog.Attr, len(attrs))
	copy(sorted, attrs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})
	return sorted
}

func isSensitive(key string, opts Options) bool {
	for _, field := range opts.SensitiveFields {
		if strings.EqualFold(key, field) {
			return true
		}
	}
	return false
}

func truncate(s string, opts Options) string {
	if opts.PayloadMaxBytes > 0 && len(s) > opts.PayloadMaxBytes {
		return fmt.Sprintf("%s...(truncated, %d bytes)", s[:opts.PayloadMaxBytes], len(s))
	}
	return s
}

// FormatValue formats a slog.Value for logfmt output.
func FormatValue(key string, v slog.Value, opts Options) string {
	if isSensitive(key, opts) {
		return strconv.Quote(redacted)
	}

	v = v.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return strconv.Quote(truncate(v.String(), opts))
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindDuration:
		return strconv.FormatInt(v.Duration().Milliseconds(), 10)
	case slog.KindTime:
		return strconv.Quote(v.Time().Format(time.RFC3339))
	default:
		if err, ok := v.Any().(error); ok {
			return strconv.Quote(truncate(err.Error(), opts))
		}
		return strconv.Quote(truncate(v.String(), opts))
	}
}

// JSONValue converts a slog.Value to a value encoding/json renders faithfully.
func JSONValue(key string, v slog.Value, opts Options) any {
	if isSensitive(key, opts) {
		return redacted
	}

	v = v.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return truncate(v.String(), opts)
	case slog.KindInt64:
		return v.Int64()
	case slog.KindUint64:
		return v.Uint64()
	case slog.KindFloat64:
		return v.Float64()
	case slog.KindBool:
		return v.Bool()
	case slog.KindDuration:
		return v.Duration().Milliseconds()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	default:
		if err, ok := v.Any().(error); ok {
			return truncate(err.Error(), opts)
		}
		return truncate(v.String(), opts)
	}
}

// LevelString returns the string representation of a log level.
func LevelString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", level)
	}
}

// ColorizeLevel wraps level in ANSI color codes.
func ColorizeLevel(level string) string {
	const (
		reset   = "\033[0m"
		red     = "\033[31m"
		yellow  = "\033[33m"
		cyan    = "\033[36m"
		magenta = "\033[35m"
	)

	switch level {
	case "DEBUG":
		return magenta + level + reset
	case "INFO":
		return cyan + level + reset
	case "WARN":
		return yellow + level + reset
	case "ERROR":
		return red + level + reset
	default:
		return level
	}
}
