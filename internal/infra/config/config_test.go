package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so a developer's .env or shell cannot leak in.
func clearEnv(t *testing.T) {
	for _, k := range []string{
		"DATABASE_DRIVER", "DATABASE_URL", "LOG_LEVEL", "ENVIRONMENT", "CRON_SPEC_DAILY_CHECKS",
		"TIMEZONE", "QUERY_TIMEOUT", "RUN_TIMEOUT", "LOCK_TTL", "LOCK_KEY", "REDIS_ADDR",
		"REDIS_PASSWORD", "DEFAULT_CURRENCY", "TELEGRAM_TOKEN", "ADMIN_TELEGRAM_ID",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/rent")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0 9 * * *", cfg.CronSpecDailyChecks)
	assert.Equal(t, 10*time.Second, cfg.QueryTimeout)
	assert.Equal(t, 10*time.Minute, cfg.RunTimeout)
	assert.Equal(t, 30*time.Minute, cfg.LockTTL)
	assert.Equal(t, "rentwatch:checks", cfg.LockKey)
	assert.Equal(t, "USD", cfg.DefaultCurrency)
	assert.Empty(t, cfg.RedisAddr)
	assert.NotNil(t, cfg.Location)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "file:rent.db")
	t.Setenv("TIMEZONE", "Europe/Berlin")
	t.Setenv("RUN_TIMEOUT", "90s")
	t.Setenv("DEFAULT_CURRENCY", "eur")
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("ADMIN_TELEGRAM_ID", "12345")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "Europe/Berlin", cfg.Location.String())
	assert.Equal(t, 90*time.Second, cfg.RunTimeout)
	assert.Equal(t, "EUR", cfg.DefaultCurrency)
	assert.Equal(t, int64(12345), cfg.AdminTelegramID)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing database url", map[string]string{}},
		{"unknown driver", map[string]string{"DATABASE_URL": "x", "DATABASE_DRIVER": "mysql"}},
		{"bad timezone", map[string]string{"DATABASE_URL": "x", "TIMEZONE": "Mars/Olympus"}},
		{"bad duration", map[string]string{"DATABASE_URL": "x", "LOCK_TTL": "soon"}},
		{"negative duration", map[string]string{"DATABASE_URL": "x", "QUERY_TIMEOUT": "-1s"}},
		{"token without admin", map[string]string{"DATABASE_URL": "x", "TELEGRAM_TOKEN": "t"}},
		{"bad admin id", map[string]string{"DATABASE_URL": "x", "TELEGRAM_TOKEN": "t", "ADMIN_TELEGRAM_ID": "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
