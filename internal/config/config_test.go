package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreSQLite, cfg.StoreBackend)
	assert.Equal(t, "xallet.db", cfg.SQLitePath)
	assert.Equal(t, 582, cfg.LedgerSeedRank)
	assert.Equal(t, int64(0), cfg.LedgerStartingTokens)
	assert.Equal(t, 6*time.Hour, cfg.LedgerSessionTTL)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.False(t, cfg.AssistantAvailable())
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "placeholder")
	require.NoError(t, os.Unsetenv("TELEGRAM_BOT_TOKEN"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			StoreBackend:            StoreMemory,
			BotMaxInflight:          1,
			BotUpdateTimeoutSeconds: 1,
			LedgerSessionTTL:        time.Hour,
			RateLimitRequests:       1,
			RateLimitWindow:         time.Second,
		}
	}

	cfg := base()
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.StoreBackend = "redis"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.StoreBackend = StorePostgres
	assert.Error(t, cfg.Validate(), "postgres without password")

	cfg.DBPassword = "secret"
	cfg.DBMaxConns = 5
	cfg.DBMinConns = 1
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.LedgerStartingTokens = -1
	assert.Error(t, cfg.Validate())
}

func TestDatabaseDSN(t *testing.T) {
	cfg := Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: 5432, DBName: "d", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", cfg.DatabaseDSN())
}

func TestLocationFallback(t *testing.T) {
	cfg := Config{AppTimezone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.Location())
}
