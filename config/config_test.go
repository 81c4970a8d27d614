package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, Database{Driver: DriverSQLite, DSN: "hackathon.db"}, cfg.Database)
	assert.Equal(t, 5050, cfg.ServerPort)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "admin", cfg.AdminUser)
	assert.Empty(t, cfg.AdminPasswordHash)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.R2.Enabled())
}

func TestFromLookup_PostgresSelectedByURL(t *testing.T) {
	t.Run("POSTGRES_URL", func(t *testing.T) {
		cfg, err := FromLookup(lookupFrom(map[string]string{
			"POSTGRES_URL": "postgres://u:p@localhost/hack",
			"SQLITE_PATH":  "ignored.db",
		}))
		require.NoError(t, err)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "postgres://u:p@localhost/hack", cfg.Database.DSN)
	})

	t.Run("DATABASE_URL alias", func(t *testing.T) {
		cfg, err := FromLookup(lookupFrom(map[string]string{
			"DATABASE_URL": "postgres://localhost/alt",
		}))
		require.NoError(t, err)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "postgres://localhost/alt", cfg.Database.DSN)
	})
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"SQLITE_PATH":          "/tmp/reg.db",
		"SERVER_PORT":          "8081",
		"LOG_LEVEL":            "debug",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example,",
		"ADMIN_USER":           "root",
		"ADMIN_PASSWORD_HASH":  "$2a$10$hash",
		"R2_ACCOUNT_ID":        "acc",
		"R2_ACCESS_KEY_ID":     "key",
		"R2_SECRET_ACCESS_KEY": "secret",
		"R2_BUCKET_NAME":       "bucket",
		"R2_PUBLIC_BASE_URL":   "https://cdn.example",
	}))
	require.NoError(t, err)

	assert.Equal(t, Database{Driver: DriverSQLite, DSN: "/tmp/reg.db"}, cfg.Database)
	assert.Equal(t, 8081, cfg.ServerPort)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "root", cfg.AdminUser)
	assert.Equal(t, "$2a$10$hash", cfg.AdminPasswordHash)
	assert.True(t, cfg.R2.Enabled())
}

func TestFromLookup_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"non-numeric port", map[string]string{"SERVER_PORT": "abc"}},
		{"port out of range", map[string]string{"SERVER_PORT": "70000"}},
		{"zero port", map[string]string{"SERVER_PORT": "0"}},
		{"unknown log level", map[string]string{"LOG_LEVEL": "verbose"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(tt.env))
			assert.Error(t, err)
		})
	}
}
