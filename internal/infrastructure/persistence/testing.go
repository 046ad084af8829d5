//go:build unit || integration
// +build unit integration

package persistence

import (
	"context"
	"sync"
	"testing"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
	"github.com/cybervault/crypto-engine/internal/domain/keys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test constants
const (
	TestKeySize128  = 128
	TestKeySize2048 = 2048
)

// sequenceIDs returns an id generator yielding ids in order, then repeating the last one
func sequenceIDs(ids ...string) func() string {
	var mu sync.Mutex
	next := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		id := ids[next]
		if next < len(ids)-1 {
			next++
		}
		return id
	}
}

// CreateTestRecord builds a valid record of the given kind
func CreateTestRecord(t *testing.T, kind keys.Kind, material []byte, sizeBits uint32) *keys.KeyRecord {
	t.Helper()
	record := keys.NewKeyRecord(kind, material, sizeBits)
	require.NoError(t, record.Validate())
	return record
}

// RunKeyStoreContract exercises the behaviour every key store backend must share
func RunKeyStoreContract(t *testing.T, store keys.KeyStore) {
	ctx := context.Background()

	t.Run("PutGet", func(t *testing.T) {
		material := []byte("0123456789abcdef")
		record := CreateTestRecord(t, keys.KindSymmetricKey, material, TestKeySize128)

		id, err := store.Put(ctx, record)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Empty(t, record.ID, "caller's record must not be mutated")

		fetched, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, fetched.ID)
		assert.Equal(t, keys.KindSymmetricKey, fetched.Kind)
		assert.Equal(t, material, fetched.Material)
		assert.Equal(t, uint32(TestKeySize128), fetched.SizeBits)
		assert.WithinDuration(t, record.DateTimeCreated, fetched.DateTimeCreated, 0)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.Get(ctx, "does-not-exist")
		assert.ErrorIs(t, err, crypto.ErrKeyNotFound)
	})

	t.Run("DistinctIDs", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 20; i++ {
			id, err := store.Put(ctx, CreateTestRecord(t, keys.KindRSAPublicKey, []byte("pem"), TestKeySize2048))
			require.NoError(t, err)
			_, dup := seen[id]
			require.False(t, dup, "duplicate id %s", id)
			seen[id] = struct{}{}
		}
	})

	t.Run("ReturnedCopiesAreIsolated", func(t *testing.T) {
		id, err := store.Put(ctx, CreateTestRecord(t, keys.KindRSAPrivateKey, []byte("secret-pem"), TestKeySize2048))
		require.NoError(t, err)

		first, err := store.Get(ctx, id)
		require.NoError(t, err)
		first.Material[0] = 'X'

		second, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []byte("secret-pem"), second.Material)
	})

	t.Run("RejectsInvalidRecord", func(t *testing.T) {
		_, err := store.Put(ctx, keys.NewKeyRecord(keys.KindSymmetricKey, nil, TestKeySize128))
		assert.Error(t, err)

		_, err = store.Put(ctx, nil)
		assert.Error(t, err)
	})

	t.Run("ConcurrentPut", func(t *testing.T) {
		const writers = 16
		ids := make(chan string, writers)

		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id, err := store.Put(ctx, keys.NewKeyRecord(keys.KindSymmetricKey, []byte("0123456789abcdef"), TestKeySize128))
				if assert.NoError(t, err) {
					ids <- id
				}
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[string]struct{})
		for id := range ids {
			seen[id] = struct{}{}
		}
		assert.Len(t, seen, writers)
	})
}
