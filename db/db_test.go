package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Dosada05/hackathon-registration/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_SQLiteCreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hackathon.db")

	conn, err := Connect(config.Database{Driver: config.DriverSQLite, DSN: path}, time.Second)
	require.NoError(t, err)
	defer conn.Close()

	var name string
	err = conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'registrations'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "registrations", name)

	// Повторная миграция не должна падать.
	require.NoError(t, Migrate(context.Background(), conn, config.DriverSQLite))
}

func TestConnect_SQLiteEnforcesUniqueEmail(t *testing.T) {
	conn, err := Connect(config.Database{Driver: config.DriverSQLite, DSN: filepath.Join(t.TempDir(), "u.db")}, time.Second)
	require.NoError(t, err)
	defer conn.Close()

	insert := `INSERT INTO registrations (full_name, email, participation_type, skill_level, project_idea,
		wants_free_license, availability_confirmed, share_recordings) VALUES (?, ?, 'solo', 'beginner', 'x', 0, 1, 0)`

	_, err = conn.Exec(insert, "A", "a@b.com")
	require.NoError(t, err)
	_, err = conn.Exec(insert, "B", "a@b.com")
	assert.Error(t, err)
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	_, err := schemaFor("mysql")
	assert.ErrorContains(t, err, "unsupported database driver")
}
