package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{
			name:        "debug level with text format",
			level:       "debug",
			format:      "text",
			expectLevel: logrus.DebugLevel,
		},
		{
			name:        "info level with json format",
			level:       "info",
			format:      "json",
			expectLevel: logrus.InfoLevel,
		},
		{
			name:        "invalid level defaults to info",
			level:       "invalid",
			format:      "text",
			expectLevel: logrus.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	existing := logrus.New()
	existing.SetLevel(logrus.DebugLevel)

	logger := NewLogrusAdapterFromLogger(existing)
	require.NotNil(t, logger)

	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.Same(t, existing, adapter.logger)

	// A nil logger still produces a working adapter.
	assert.NotNil(t, NewLogrusAdapterFromLogger(nil))
}

func TestLogrusAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	underlying := logrus.New()
	underlying.SetOutput(&buf)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(underlying)
	logger.Info("parsed statement",
		Field{Key: FieldParser, Value: "txt"},
		Field{Key: FieldCount, Value: 3})

	out := buf.String()
	assert.Contains(t, out, "parsed statement")
	assert.Contains(t, out, `"parser":"txt"`)
	assert.Contains(t, out, `"count":3`)
}

func TestLogrusAdapterWithError(t *testing.T) {
	var buf bytes.Buffer
	underlying := logrus.New()
	underlying.SetOutput(&buf)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(underlying)
	logger.WithError(errors.New("boom")).Warn("extraction degraded")

	out := buf.String()
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, "extraction degraded")
}

func TestMockLoggerRecordsEntries(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("first", Field{Key: FieldFile, Value: "a.txt"})
	mock.WithError(errors.New("x")).Warn("second")

	require.Len(t, mock.Entries, 2)
	assert.Equal(t, "info", mock.Entries[0].Level)
	assert.True(t, mock.HasMessage("second"))
	assert.False(t, mock.HasMessage("third"))
}
