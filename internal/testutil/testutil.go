// Package testutil holds helpers for the optional live-database tests.
// Those tests are skipped unless RUN_DB_TESTS=1.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hirewire/api/internal/database/postgres"
	platformconfig "github.com/hirewire/api/internal/platform/config"
)

// ShouldRunDatabaseTests reports whether live-database tests are enabled.
func ShouldRunDatabaseTests() bool {
	return os.Getenv("RUN_DB_TESTS") == "1"
}

// NewTestClient builds a postgres client from the environment config and
// registers its cleanup on t.
func NewTestClient(t *testing.T) *postgres.Client {
	t.Helper()

	cfg, err := platformconfig.LoadFromEnv()
	require.NoError(t, err, "failed to load config")

	client, err := postgres.NewClient(context.Background(), &cfg.Database.Postgres)
	require.NoError(t, err, "failed to connect to postgres")
	t.Cleanup(func() { client.Close() })

	return client
}

// ApplySchema runs the given migration SQL against the client.
func ApplySchema(t *testing.T, client *postgres.Client, schemaSQL string) {
	t.Helper()

	_, err := client.DB().ExecContext(context.Background(), schemaSQL)
	require.NoError(t, err, "failed to apply schema")
}
