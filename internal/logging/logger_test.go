package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/prettifier/internal/logging"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("Text Renames Error Key", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewWithWriter(&buf, slog.LevelInfo, logging.FormatText)
		logger.Info("hello", "error", errors.New("boom"))
		assert.Contains(t, buf.String(), "err=boom")
		assert.NotContains(t, buf.String(), "error=")
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewWithWriter(&buf, slog.LevelInfo, logging.FormatJSON)
		logger.Warn("careful", "error", "x")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "careful", line["msg"])
		assert.Equal(t, "x", line["err"])
	})

	t.Run("Level Filters", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewWithWriter(&buf, slog.LevelWarn, logging.FormatText)
		logger.Debug("hidden")
		logger.Info("hidden")
		assert.Empty(t, buf.String())
	})
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, logging.FormatJSON, f)

	f, err = logging.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, logging.FormatText, f)

	_, err = logging.ParseFormat("xml")
	assert.Error(t, err)
}
