package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Difficulty)
	assert.Empty(t, cfg.FirstTurn)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TTT_LOG_LEVEL", "debug")
	t.Setenv("TTT_DIFFICULTY", "easy")
	t.Setenv("TTT_FIRST_TURN", "ai")
	t.Setenv("TTT_TELEMETRY_ENABLED", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "easy", cfg.Difficulty)
	assert.Equal(t, "ai", cfg.FirstTurn)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := []byte("log-level: \"warn\"\ndifficulty: \"medium\"\nfirst-turn: \"human\"\ntelemetry:\n  enabled: true\n  otlp-endpoint: \"collector:4317\"\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "medium", cfg.Difficulty)
	assert.Equal(t, "human", cfg.FirstTurn)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "collector:4317", cfg.Telemetry.Endpoint)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown difficulty", "TTT_DIFFICULTY", "nightmare"},
		{"unknown first turn", "TTT_FIRST_TURN", "referee"},
		{"unknown log level", "TTT_LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
			assert.Error(t, err)
		})
	}
}
