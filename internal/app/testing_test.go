//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/cybervault/crypto-engine/internal/domain/keys"
	"github.com/cybervault/crypto-engine/internal/infrastructure/cryptography"
	"github.com/cybervault/crypto-engine/internal/infrastructure/persistence"
	"github.com/cybervault/crypto-engine/internal/pkg/config"
	"github.com/cybervault/crypto-engine/internal/pkg/testutil"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// setupEngine wires real processors to an in-memory store
func setupEngine(t *testing.T, settings *config.EngineSettings, opts ...EngineOption) (*CryptoEngine, *persistence.MemoryKeyStore) {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	store, err := persistence.NewMemoryKeyStore(logger)
	require.NoError(t, err)

	engine := setupEngineWithStore(t, store, settings, opts...)
	return engine, store
}

func setupEngineWithStore(t *testing.T, store keys.KeyStore, settings *config.EngineSettings, opts ...EngineOption) *CryptoEngine {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	aesProcessor, err := cryptography.NewAESProcessor(logger)
	require.NoError(t, err)
	rsaProcessor, err := cryptography.NewRSAProcessor(logger)
	require.NoError(t, err)
	hashProcessor, err := cryptography.NewHashProcessor(logger)
	require.NoError(t, err)

	engine, err := NewCryptoEngine(store, aesProcessor, rsaProcessor, hashProcessor, settings, logger, opts...)
	require.NoError(t, err)
	return engine
}

// MockKeyStore is a mock implementation of keys.KeyStore
type MockKeyStore struct {
	mock.Mock
}

// Put mocks keys.KeyStore.Put
func (m *MockKeyStore) Put(ctx context.Context, record *keys.KeyRecord) (string, error) {
	args := m.Called(ctx, record)
	return args.String(0), args.Error(1)
}

// Get mocks keys.KeyStore.Get
func (m *MockKeyStore) Get(ctx context.Context, id string) (*keys.KeyRecord, error) {
	args := m.Called(ctx, id)
	if record, ok := args.Get(0).(*keys.KeyRecord); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}
