package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "lottologic", cfg.MongoDB.Database)
	assert.Equal(t, 200, cfg.Lotto.HistorySize)
	assert.Equal(t, 50, cfg.Generator.Attempts)
	assert.Equal(t, 85.0, cfg.Generator.TargetScore)
	assert.Equal(t, 5, cfg.Generator.SetsPerRequest)
	assert.Equal(t, 24*60*60, cfg.JWT.ExpiresIn)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("LOTTO_MOCKAPI", "true")
	t.Setenv("LOTTO_HISTORYSIZE", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.True(t, cfg.Lotto.MockAPI)
	assert.Equal(t, 50, cfg.Lotto.HistorySize)
}
