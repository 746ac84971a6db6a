package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewJSONWritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(Config{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Debug("session transition", zap.String("state", "generated"), zap.Int("iteration", 1))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session transition", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "generated", entry["state"])
	assert.EqualValues(t, 1, entry["iteration"])
	assert.Contains(t, entry, "ts")
}

func TestNewDefaultsToWarnConsole(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(Config{}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", zap.String("path", "/tmp/x"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `"path": "/tmp/x"`)
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	_, err := New(Config{Level: "loud"}, &bytes.Buffer{})
	require.ErrorContains(t, err, "parse log level")

	_, err = New(Config{Format: "xml"}, &bytes.Buffer{})
	require.ErrorContains(t, err, "unsupported log format")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zapcore.Level
	}{
		{raw: "", want: zapcore.WarnLevel},
		{raw: "DEBUG", want: zapcore.DebugLevel},
		{raw: " info ", want: zapcore.InfoLevel},
		{raw: "error", want: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseLevel(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
