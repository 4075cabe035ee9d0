package log

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

// Logger is the native-utils logging interface. Only the CLI logs; library
// code stays silent so key material can never leak through a log line.
type Logger interface {
	// Error logs a message at level ERROR.
	Error(msg string, keyvals ...any)
	// Info logs a message at level INFO.
	Info(msg string, keyvals ...any)
	// Warn logs a message at level WARN.
	Warn(msg string, keyvals ...any)
	// Debug logs a message at level DEBUG.
	Debug(msg string, keyvals ...any)

	// With returns a new contextual logger with keyvals prepended to those
	// passed to calls to Info, Warn, Debug or Error.
	With(keyvals ...any) Logger
}

type defaultLogger struct {
	srcLogger *slog.Logger
}

// Interface assertions.
var _ Logger = (*defaultLogger)(nil)

// NewLogger returns a logger that writes msg and keyvals to w at or above
// level, using slog as the underlying logger.
//
// github.com/lmittmann/tint library is used to colorize the output.
//
// NOTE: w must be safe for concurrent use by multiple goroutines if the
// returned Logger will be used concurrently.
func NewLogger(w io.Writer, level slog.Level) Logger {
	return &defaultLogger{slog.New(tint.NewHandler(w, &tint.Options{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if err, ok := a.Value.Any().(error); ok {
				aErr := tint.Err(err)
				aErr.Key = a.Key
				return aErr
			}
			return a
		},
	}))}
}

// NewJSONLogger returns a Logger that writes msg and keyvals to w as JSON
// lines (slog.NewJSONHandler).
func NewJSONLogger(w io.Writer, level slog.Level) Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	return &defaultLogger{logger}
}

func (l *defaultLogger) Error(msg string, keyvals ...any) {
	l.srcLogger.Error(msg, keyvals...)
}

func (l *defaultLogger) Info(msg string, keyvals ...any) {
	l.srcLogger.Info(msg, keyvals...)
}

func (l *defaultLogger) Warn(msg string, keyvals ...any) {
	l.srcLogger.Warn(msg, keyvals...)
}

func (l *defaultLogger) Debug(msg string, keyvals ...any) {
	l.srcLogger.Debug(msg, keyvals...)
}

func (l *defaultLogger) With(keyvals ...any) Logger {
	return &defaultLogger{l.srcLogger.With(keyvals...)}
}
