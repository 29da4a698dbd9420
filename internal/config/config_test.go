package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("TOKEN_EXPIRY", "")
	t.Setenv("SESSION_STORE", "")

	cfg := LoadConfig()

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 8*time.Hour, cfg.JWT.TokenExpiry)
	assert.Equal(t, "database", cfg.Session.Store)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("TOKEN_EXPIRY", "30m")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("REDIS_DB", "3")

	cfg := LoadConfig()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.JWT.TokenExpiry)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_EXPIRY", "forever")
	t.Setenv("DB_MAX_IDLE_CONNS", "lots")

	cfg := LoadConfig()

	assert.Equal(t, 8*time.Hour, cfg.JWT.TokenExpiry)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Len(t, cfg.Warnings, 2)
	assert.Contains(t, cfg.Warnings[0], "lots")
	assert.Contains(t, cfg.Warnings[1], "forever")
}

func TestValidate(t *testing.T) {
	cfg := LoadConfig()
	cfg.Database.Driver = "oracle"
	require.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Session.Store = "memcached"
	require.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.JWT.Secret = ""
	require.Error(t, cfg.Validate())
}

func TestValidate_SweepIntervalMustBePositive(t *testing.T) {
	for _, interval := range []string{"0s", "-5m"} {
		t.Setenv("SESSION_SWEEP_INTERVAL", interval)

		cfg := LoadConfig()

		assert.Empty(t, cfg.Warnings, interval)
		assert.EqualError(t, cfg.Validate(), "SESSION_SWEEP_INTERVAL must be positive", interval)
	}
}
