//go:build integration
// +build integration

package persistence

import (
	"testing"

	"github.com/cybervault/crypto-engine/internal/pkg/config"
)

func TestGormKeyStorePostgres(t *testing.T) {
	RunKeyStoreContract(t, SetupTestKeyStore(t, config.PostgresDbType))
}
