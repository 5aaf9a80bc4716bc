package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/B21v/sports-tournament-manager/internal/database"
)

func TestInitDBRunsMigrations(t *testing.T) {
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	var name string
	err = db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'snapshots'",
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "snapshots", name)

	// The snapshot table upserts on its key.
	_, err = db.Exec("INSERT INTO snapshots (key, data) VALUES (?, ?)", "k", "v1")
	require.NoError(t, err)
	_, err = db.Exec(`
		INSERT INTO snapshots (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data
	`, "k", "v2")
	require.NoError(t, err)

	var data string
	require.NoError(t, db.QueryRow("SELECT data FROM snapshots WHERE key = ?", "k").Scan(&data))
	assert.Equal(t, "v2", data)
}

func TestInitDBBadMigrationsDir(t *testing.T) {
	_, _, err := database.InitDB(":memory:", "", "", "./no-such-dir")
	assert.Error(t, err)
}
