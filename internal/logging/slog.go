package logging

import (
	"context"
	"log/slog"
)

// Redacted replaces the value of any attribute named in redactedKeys.
const Redacted = "[redacted]"

// redactedKeys are attribute keys that may carry chat text or key material.
var redactedKeys = map[string]struct{}{
	"content":        {},
	"encryption_key": {},
}

func redacted(key string) bool {
	_, ok := redactedKeys[key]
	return ok
}

// SlogOptions returns handler options that log from level and hide
// message content, at any group depth.
func SlogOptions(level slog.Leveler) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if redacted(a.Key) {
				return slog.String(a.Key, Redacted)
			}
			return a
		},
	}
}

// SlogLogger adapts *slog.Logger to the Logger interface.
type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
