//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"github.com/cybervault/crypto-engine/internal/pkg/config"
	"github.com/cybervault/crypto-engine/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const postgresTestDSN = "user=postgres password=postgres host=localhost port=5432 sslmode=disable"

// SetupTestKeyStore opens a migrated database of dbType and registers its cleanup
func SetupTestKeyStore(t *testing.T, dbType string) *GormKeyStore {
	t.Helper()

	var settings config.KeyStoreSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.KeyStoreSettings{Type: config.SqliteDbType, DSN: ":memory:"}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.KeyStoreSettings{Type: config.PostgresDbType, DSN: postgresTestDSN, Name: uniqueDBName}
		cleanupFunc = func() {
			_ = DropDatabase(postgresTestDSN+" dbname=postgres", uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")
	require.NoError(t, Migrate(db), "Failed to migrate schema")

	store, err := NewGormKeyStore(db, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
		cleanupFunc()
	})
	return store
}
