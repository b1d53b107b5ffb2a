package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("create logger with console output", func(t *testing.T) {
		logger, err := New(Config{Level: "info", Console: true})
		require.NoError(t, err)
		require.NotNil(t, logger)
		assert.NoError(t, logger.Close())
	})

	t.Run("create logger with file output", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "logs", "toolkit.log")

		logger, err := New(Config{Level: "debug", File: logFile})
		require.NoError(t, err)

		log.Info().Msg("file message")
		require.NoError(t, logger.Close())

		content, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), "file message")
	})

	t.Run("create logger with rotating file", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "toolkit.log")

		logger, err := New(Config{Level: "info", File: logFile, MaxSize: 1})
		require.NoError(t, err)
		defer logger.Close()

		require.Len(t, logger.closers, 1)
		_, ok := logger.closers[0].(*RotatingWriter)
		assert.True(t, ok)
	})

	t.Run("create logger with redaction", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(Config{Level: "info", Output: &buf, Redaction: true})
		require.NoError(t, err)
		defer logger.Close()

		require.NotNil(t, logger.Redactor())
		log.Info().Str("auth", "Bearer A21AAabcdefghijklmnopqrstuvwxyz").Msg("sending")
		assert.Contains(t, buf.String(), "[REDACTED]")
		assert.NotContains(t, buf.String(), "A21AAabcdefghijklmnop")
	})

	t.Run("redaction off", func(t *testing.T) {
		logger, err := New(Config{Level: "info", Output: &bytes.Buffer{}})
		require.NoError(t, err)
		defer logger.Close()
		assert.Nil(t, logger.Redactor())
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		logger, err := New(Config{Level: "loud", Output: &bytes.Buffer{}})
		require.NoError(t, err)
		defer logger.Close()
		assert.Equal(t, zerolog.InfoLevel, logger.GetZerolog().GetLevel())
	})
}

func TestNew_NonBlocking(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "toolkit.log")

	logger, err := New(Config{Level: "info", File: logFile, NonBlocking: true, BufferSize: 16})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		log.Info().Int("n", i).Msg("buffered")
	}

	// Close flushes the diode before closing the file.
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "buffered")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.True(t, cfg.Console)
	assert.True(t, cfg.Redaction)
	assert.True(t, cfg.NonBlocking)
	assert.Equal(t, 1000, cfg.BufferSize)
	assert.Equal(t, 0, cfg.MaxSize)
	assert.Equal(t, 7, cfg.MaxAge)
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Output: &buf})
	require.NoError(t, err)
	defer logger.Close()

	child := logger.With().Str("component", "test").Logger()
	child.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"test"`)
}
