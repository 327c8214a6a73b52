package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestZerologLogger_LevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", "two")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err", "dangling")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)

	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "dbg", lines[0]["message"])
	assert.EqualValues(t, 1, lines[0]["a"])

	assert.Equal(t, "info", lines[1]["level"])
	assert.Equal(t, "two", lines[1]["b"])

	assert.Equal(t, "warn", lines[2]["level"])

	assert.Equal(t, "error", lines[3]["level"])
	assert.Equal(t, "!MISSING", lines[3]["dangling"])
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	log.With("module", "geocoding").Info(context.Background(), "hello", "k", "v")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "geocoding", lines[0]["module"])
	assert.Equal(t, "v", lines[0]["k"])
}

func TestNew_SelectsBackend(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{FormatJSON, `"msg":"hello"`},
		{FormatText, "msg=hello"},
		{FormatZerolog, `"message":"hello"`},
		{"unknown", `"msg":"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			New(tt.format, &buf).Info(context.Background(), "hello")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	var l Logger = Nop{}
	ctx := context.Background()
	assert.NotPanics(t, func() {
		l.Debug(ctx, "x")
		l.Info(ctx, "x")
		l.Warn(ctx, "x")
		l.Error(ctx, "x")
		l.With("a", 1).Info(ctx, "y")
	})
}
