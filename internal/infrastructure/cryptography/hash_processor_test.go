//go:build unit
// +build unit

package cryptography

import (
	"encoding/hex"
	"testing"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
	"github.com/cybervault/crypto-engine/internal/domain/cryptoalg"
	"github.com/cybervault/crypto-engine/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHashProcessor(t *testing.T) cryptoalg.HashProcessor {
	t.Helper()
	processor, err := NewHashProcessor(testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return processor
}

func TestHashProcessor_Digest(t *testing.T) {
	processor := setupHashProcessor(t)

	tests := []struct {
		algorithm crypto.HashAlgorithm
		data      string
		expected  string
	}{
		{crypto.HashSHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{crypto.HashSHA256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{crypto.HashSHA512, "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{crypto.HashMD5, "abc", "900150983cd24fb0d6963f7d28e17f72"},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm)+"/"+tt.data, func(t *testing.T) {
			digest, err := processor.Digest([]byte(tt.data), tt.algorithm)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hex.EncodeToString(digest))
		})
	}

	_, err := processor.Digest([]byte("abc"), crypto.HashAlgorithm("SHA-1"))
	assert.ErrorIs(t, err, crypto.ErrUnsupportedAlgorithm)
}

func TestHashProcessor_MAC(t *testing.T) {
	processor := setupHashProcessor(t)

	// RFC 4231 test case 2
	mac, err := processor.MAC([]byte("what do ya want for nothing?"), []byte("Jefe"), crypto.HashSHA256)
	require.NoError(t, err)
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", hex.EncodeToString(mac))

	mac512, err := processor.MAC([]byte("data"), []byte("key"), crypto.HashSHA512)
	require.NoError(t, err)
	assert.Len(t, mac512, 64)

	_, err = processor.MAC([]byte("data"), []byte("key"), crypto.HashMD5)
	assert.ErrorIs(t, err, crypto.ErrUnsupportedAlgorithm)

	_, err = processor.MAC([]byte("data"), nil, crypto.HashSHA256)
	assert.Error(t, err)
}
