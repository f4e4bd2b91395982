package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown", "agent", "Managing Agent")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "Managing Agent")
}

func TestEnsureTraceID(t *testing.T) {
	ctx, id := EnsureTraceID(context.Background())
	require.NotEmpty(t, id)
	assert.Len(t, id, 26)
	assert.Equal(t, id, GetTraceID(ctx))

	same, again := EnsureTraceID(ctx)
	assert.Equal(t, id, again)
	assert.Equal(t, ctx, same)
}

func TestGetTraceIDMissing(t *testing.T) {
	assert.Equal(t, "", GetTraceID(context.Background()))
}
