// Package logging defines the structured logger used by the decoder. Plug in
// slog through NewSlog, or any other backend by implementing Logger.
package logging

import (
	"context"
	"log/slog"
)

// Logger takes a message followed by alternating keys and values.
type Logger interface {
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	Debug(msg string, keysAndValues ...any)
}

// Noop discards everything.
type Noop struct{}

func (Noop) Info(_ string, _ ...any)  {}
func (Noop) Warn(_ string, _ ...any)  {}
func (Noop) Error(_ string, _ ...any) {}
func (Noop) Debug(_ string, _ ...any) {}

type slogLogger struct {
	l *slog.Logger
}

// NewSlog adapts l. A nil l yields Noop.
func NewSlog(l *slog.Logger) Logger {
	if l == nil {
		return Noop{}
	}
	return slogLogger{l: l}
}

func (s slogLogger) Info(msg string, kv ...any)  { s.l.Info(msg, kv...) }
func (s slogLogger) Warn(msg string, kv ...any)  { s.l.Warn(msg, kv...) }
func (s slogLogger) Error(msg string, kv ...any) { s.l.Error(msg, kv...) }
func (s slogLogger) Debug(msg string, kv ...any) { s.l.Debug(msg, kv...) }

// Enabled reports whether l would emit a record at level. Loggers other than
// the slog adapter are assumed to filter on their own.
func Enabled(l Logger, level slog.Level) bool {
	switch v := l.(type) {
	case Noop:
		return false
	case slogLogger:
		return v.l.Enabled(context.Background(), level)
	default:
		return true
	}
}
