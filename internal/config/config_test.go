package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Contains(t, cfg.FeedURL, "scores.json")
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 5*time.Minute, cfg.FeedCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.FeedTimeout)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, "configs/roster.yaml", cfg.RosterPath)
	assert.Equal(t, 3, cfg.RetryMaxAttempts)
	assert.Equal(t, 5, cfg.CircuitBreakerThreshold)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL", "90s")
	t.Setenv("CACHE_ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.RefreshInterval)
	assert.False(t, cfg.CacheEnabled)
}
