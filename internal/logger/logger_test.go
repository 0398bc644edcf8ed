package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_SetByName(t *testing.T) {
	defer Level.Set(slog.LevelInfo)

	tests := map[string]slog.Level{
		"error":   slog.LevelError,
		"ERR":     slog.LevelError,
		"warning": slog.LevelWarn,
		"info":    slog.LevelInfo,
		"Debug":   slog.LevelDebug,
	}
	for name, want := range tests {
		assert.True(t, Level.SetByName(name), name)
		assert.Equal(t, want, Level.lvl.Level(), name)
	}

	Level.Set(slog.LevelWarn)
	assert.False(t, Level.SetByName("verbose"))
	assert.Equal(t, slog.LevelWarn, Level.lvl.Level())
}

func TestNew_textHandler(t *testing.T) {
	defer Level.Set(slog.LevelInfo)
	Level.Set(slog.LevelInfo)

	var buf bytes.Buffer
	log := New(&buf)
	log.Debug("hidden")
	log.Info("compiled", "pattern", "a|b", "states", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, `pattern=a|b`)
	assert.Contains(t, out, "states=4")

	assert.True(t, Level.Enabled(slog.LevelWarn))
	assert.False(t, Level.Enabled(slog.LevelDebug))
}
