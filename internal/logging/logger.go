// Package logging defines the structured-logging interface used across the
// project together with its slog and zerolog backends.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/rs/zerolog"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "sponsored listings served", "mode", "radius", "count", n)
type Logger interface {
	// Debug logs diagnostic detail, such as which lookup strategy won.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Supported values for the log_format setting.
const (
	FormatJSON    = "json"
	FormatText    = "text"
	FormatZerolog = "zerolog"
)

// New builds a Logger writing to w in the requested format. Unknown formats
// fall back to slog JSON. Every backend hides message content.
func New(format string, w io.Writer) Logger {
	switch format {
	case FormatZerolog:
		return NewZerologLogger(zerolog.New(w).With().Timestamp().Logger())
	case FormatText:
		return NewSlogLogger(slog.New(slog.NewTextHandler(w, SlogOptions(slog.LevelInfo))))
	default:
		return NewSlogLogger(slog.New(slog.NewJSONHandler(w, SlogOptions(slog.LevelInfo))))
	}
}

// Nop discards everything. Handy in tests and for optional components.
type Nop struct{}

func (Nop) Debug(context.Context, string, ...any) {}
func (Nop) Info(context.Context, string, ...any)  {}
func (Nop) Warn(context.Context, string, ...any)  {}
func (Nop) Error(context.Context, string, ...any) {}
func (n Nop) With(...any) Logger                  { return n }
