// Package obslog wraps github.com/rs/zerolog behind a small leveled
// logging interface, so the rest of the module depends on a narrow
// contract rather than the zerolog API directly. Every log line goes to
// stderr; stdout is reserved for verdict output.
package obslog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Level is a logging verbosity threshold.
type Level int

const (
	LevelWarn Level = iota
	LevelInfo
	LevelDebug
)

// ParseLevel maps a --log-level flag value to a Level, defaulting to
// LevelWarn for anything unrecognized.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	default:
		return LevelWarn
	}
}

// Logger emits structured, leveled diagnostics. Each method accepts a
// message plus an even number of key/value pairs.
type Logger interface {
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(err error, msg string, kv ...any)
	Fatal(err error, msg string, kv ...any)
}

type zlogger struct {
	z zerolog.Logger
}

// New returns a Logger writing to w at the given verbosity level.
func New(w io.Writer, level Level) Logger {
	zlevel := zerolog.WarnLevel
	switch level {
	case LevelDebug:
		zlevel = zerolog.DebugLevel
	case LevelInfo:
		zlevel = zerolog.InfoLevel
	}
	z := zerolog.New(w).Level(zlevel).With().Timestamp().Logger()
	return &zlogger{z: z}
}

// NewStderr returns a Logger writing to os.Stderr at the given level.
func NewStderr(level Level) Logger {
	return New(os.Stderr, level)
}

func withFields(e *zerolog.Event, kv []any) *zerolog.Event {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	return e
}

func (l *zlogger) Info(msg string, kv ...any) {
	withFields(l.z.Info(), kv).Msg(msg)
}

func (l *zlogger) Warn(msg string, kv ...any) {
	withFields(l.z.Warn(), kv).Msg(msg)
}

func (l *zlogger) Error(err error, msg string, kv ...any) {
	withFields(l.z.Error().Err(err), kv).Msg(msg)
}

// Fatal logs at the fatal level but, unlike zerolog's own Fatal method,
// never calls os.Exit itself — the caller decides the process's exit
// code and timing (see cmd/ndtmsim, which maps specific errors to
// specific exit statuses after logging).
func (l *zlogger) Fatal(err error, msg string, kv ...any) {
	withFields(l.z.WithLevel(zerolog.FatalLevel).Err(err), kv).Msg(msg)
}
