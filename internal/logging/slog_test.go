package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/placer/types"
)

func TestSlogLogger_ImplementsInterface(t *testing.T) {
	t.Helper()
	var _ types.Logger = (*SlogLogger)(nil)
}

func TestNewSlog(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSlog(slog.New(slog.NewTextHandler(buf, nil)))

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
	require.NotNil(t, NewSlogDefault().logger)
}

func TestNewText_Levels(t *testing.T) {
	t.Run("debug level emits everything", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewText(buf, "debug")

		logger.Debug("probe collided", "request", "Request_A", "attempt", 1)
		logger.Info("batch completed", "accepted", 10)

		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "request=Request_A")
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "accepted=10")
	})

	t.Run("warn level drops info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewText(buf, "warn")

		logger.Info("hidden")
		logger.Warn("request saturated", "request", "Request_J")
		logger.Error("listener failed", "error", "bind")

		output := buf.String()
		assert.NotContains(t, output, "hidden")
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "error=bind")
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for name, want := range tests {
		require.Equal(t, want, ParseLevel(name), "level %q", name)
	}
}
