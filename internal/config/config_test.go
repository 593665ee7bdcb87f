package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "12345")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 8080, cfg.HealthPort)
	assert.Equal(t, 60*time.Second, cfg.SaveInterval)
	assert.False(t, cfg.ForceCommandUpdate)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_APP_ID", "12345")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HEALTH_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidSaveInterval(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SAVE_INTERVAL", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SAVE_INTERVAL", "5m")
	t.Setenv("DISCORD_FORCE_COMMAND_UPDATE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5*time.Minute, cfg.SaveInterval)
	assert.True(t, cfg.ForceCommandUpdate)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}
