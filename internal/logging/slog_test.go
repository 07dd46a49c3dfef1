package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLogger_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	logger.Debug("search started", "groups", 3)
	logger.Info("search finished", "buckets", 2)
	logger.Warn("search slow", "elapsed", "5s")
	logger.Error("search failed", "reason", "deadline")

	out := buf.String()
	require.Contains(t, out, "search started")
	require.Contains(t, out, "groups=3")
	require.Contains(t, out, "buckets=2")
	require.Contains(t, out, "elapsed=5s")
	require.Contains(t, out, "reason=deadline")
}

func TestNewSlogDefault(t *testing.T) {
	require.NotNil(t, NewSlogDefault())
}
