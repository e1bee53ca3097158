package db

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-hub/internal/config"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrations, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		data, err := fs.ReadFile(migrations, "migrations/"+entry.Name())
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(entry.Name(), ".sql"), entry.Name())
		assert.Contains(t, string(data), "-- +goose Up", entry.Name())
		assert.Contains(t, string(data), "-- +goose Down", entry.Name())
	}
}

func TestConnectionString(t *testing.T) {
	got := connectionString(configFixture())
	assert.Equal(t, "postgres://app:secret@db:5433/inventory?sslmode=disable", got)
}

func configFixture() config.Postgres {
	return config.Postgres{
		User:     "app",
		Password: "secret",
		Host:     "db",
		Port:     5433,
		DB:       "inventory",
		SSLMode:  "disable",
	}
}
