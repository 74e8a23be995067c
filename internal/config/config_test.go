package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "memory", cfg.Storage.Kind())
	assert.Equal(t, "totalRaised", cfg.Storage.Key)
	assert.Equal(t, int64(1_000_000_000), cfg.Campaign.Goal)
	assert.Equal(t, "checkout_success", cfg.Campaign.CompletionMarker)
	assert.Equal(t, int64(1000), cfg.Campaign.SimulatedIncrement)
	assert.Equal(t, "donated_1000", cfg.Campaign.ReferralToken)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("REDIS_LEDGER_TTL", "24h")
	t.Setenv("CAMPAIGN_SIMULATED_INCREMENT", "50")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/campaign?sslmode=disable")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "redis", cfg.Storage.Kind())
	assert.Equal(t, 24*time.Hour, cfg.Redis.LedgerTTL)
	assert.Equal(t, int64(50), cfg.Campaign.SimulatedIncrement)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)
}
