package config_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rmachado/extrato-xlsx/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "extrato", cfg.XLSX.Sheet)
	assert.True(t, cfg.Heuristics.RequireDate)
	assert.Equal(t, 2, cfg.Heuristics.MinNumbers)
	assert.Empty(t, cfg.Heuristics.Contains)
	assert.False(t, cfg.Heuristics.KeepAllLines)
	assert.False(t, cfg.PDF.TableMode)
	assert.Equal(t, 2.0, cfg.PDF.Tolerances.Snap)
	assert.Equal(t, 12.0, cfg.PDF.Tolerances.Join)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("EXTRATO_LOG_LEVEL", "debug")
	t.Setenv("EXTRATO_CSV_DELIMITER", ";")
	t.Setenv("EXTRATO_HEURISTICS_MIN_NUMBERS", "1")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
	assert.Equal(t, 1, cfg.Heuristics.MinNumbers)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "EXTRATO_LOG_LEVEL", value: "loud"},
		{name: "bad log format", key: "EXTRATO_LOG_FORMAT", value: "xml"},
		{name: "multi-char delimiter", key: "EXTRATO_CSV_DELIMITER", value: ";;"},
		{name: "negative min numbers", key: "EXTRATO_HEURISTICS_MIN_NUMBERS", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestConfigureLogging(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	cfg.Log.Level = "debug"
	logger := config.ConfigureLogging(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	cfg.Log.Format = "json"
	logger = config.ConfigureLogging(cfg)
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
