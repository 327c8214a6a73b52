package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTextLogger(t *testing.T, level slog.Level) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewSlogLogger(slog.New(slog.NewTextHandler(&buf, SlogOptions(level)))), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTextLogger(t, slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "reverse geocode winner", "provider", "nominatim")
	log.Info(ctx, "sponsored listings served", "mode", "radius")
	log.Warn(ctx, "message event not published", "message_id", "m1")
	log.Error(ctx, "impression not recorded", "campaign_id", "c1")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	tests := []struct {
		level string
		attr  string
	}{
		{"DEBUG", "provider=nominatim"},
		{"INFO", "mode=radius"},
		{"WARN", "message_id=m1"},
		{"ERROR", "campaign_id=c1"},
	}
	for i, tt := range tests {
		assert.Contains(t, lines[i], "level="+tt.level)
		assert.Contains(t, lines[i], tt.attr)
	}
}

func TestSlogLogger_LevelThreshold(t *testing.T) {
	log, buf := newTextLogger(t, slog.LevelInfo)

	log.Debug(context.Background(), "reverse geocode winner", "provider", "nominatim")
	assert.Empty(t, buf.String())
}

func TestSlogLogger_WithModule(t *testing.T) {
	log, buf := newTextLogger(t, slog.LevelInfo)

	log.With("module", "campaigns").Info(context.Background(), "campaign created", "campaign_id", "c1")

	out := buf.String()
	assert.Contains(t, out, "module=campaigns")
	assert.Contains(t, out, "campaign_id=c1")
	assert.Contains(t, out, `msg="campaign created"`)
}

func TestLoggers_RedactContent(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatText, FormatZerolog} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(format, &buf).With("encryption_key", "k-secret")

			log.Warn(context.Background(), "message rejected", "message_id", "m1", "content", "meet at 6pm")

			out := buf.String()
			assert.NotContains(t, out, "meet at 6pm")
			assert.NotContains(t, out, "k-secret")
			assert.Contains(t, out, Redacted)
			assert.Contains(t, out, "m1")
		})
	}
}

func TestZerologLogger_RedactsDirectFields(t *testing.T) {
	var buf bytes.Buffer
	NewZerologLogger(zerolog.New(&buf)).Info(context.Background(), "sent", "content", "hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, Redacted, lines[0]["content"])
}
