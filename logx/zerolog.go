package logx

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/cnlutao/ice/core/log"
)

// ZerologLogger adapts a zerolog.Logger to core/log.Logger.
type ZerologLogger struct {
	zl zerolog.Logger
}

// NewZerolog wraps zl.
func NewZerolog(zl zerolog.Logger) log.Logger {
	return &ZerologLogger{zl: zl}
}

// NewConsole returns a human-friendly zerolog logger writing to w.
func NewConsole(w io.Writer, level zerolog.Level) log.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return NewZerolog(zerolog.New(cw).Level(level).With().Timestamp().Logger())
}

// With returns a logger carrying kv on every entry.
func (z *ZerologLogger) With(kv ...any) log.Logger {
	return &ZerologLogger{zl: z.zl.With().Fields(flattenKV(kv)).Logger()}
}

func (z *ZerologLogger) Debug(msg string, kv ...any) {
	z.zl.Debug().Fields(flattenKV(kv)).Msg(msg)
}

func (z *ZerologLogger) Info(msg string, kv ...any) {
	z.zl.Info().Fields(flattenKV(kv)).Msg(msg)
}

func (z *ZerologLogger) Warn(msg string, kv ...any) {
	z.zl.Warn().Fields(flattenKV(kv)).Msg(msg)
}

func (z *ZerologLogger) Error(err error, msg string, kv ...any) {
	z.zl.Error().Err(err).Fields(flattenKV(kv)).Msg(msg)
}

// flattenKV expands the pair helpers into the flat list zerolog's Fields accepts.
func flattenKV(kv []any) []any {
	flat := make([]any, 0, len(kv))
	for _, item := range kv {
		if pair, ok := item.([]any); ok && len(pair) == 2 {
			flat = append(flat, fmt.Sprint(pair[0]), pair[1])
			continue
		}
		flat = append(flat, item)
	}
	if len(flat)%2 != 0 {
		flat = flat[:len(flat)-1]
	}
	for i := 0; i < len(flat); i += 2 {
		if _, ok := flat[i].(string); !ok {
			flat[i] = fmt.Sprint(flat[i])
		}
	}
	return flat
}
