//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateKeyRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   GenerateKeyRequest
		shouldErr bool
	}{
		{"Valid AES 128", GenerateKeyRequest{KeyType: "AES", KeySize: 128}, false},
		{"Valid symmetric 256", GenerateKeyRequest{KeyType: "symmetric", KeySize: 256}, false},
		{"Invalid AES 100", GenerateKeyRequest{KeyType: "AES", KeySize: 100}, true},

		{"Valid RSA 2048", GenerateKeyRequest{KeyType: "RSA", KeySize: 2048}, false},
		{"Valid RSA 1024", GenerateKeyRequest{KeyType: "rsa", KeySize: 1024}, false},
		{"Invalid RSA 1234", GenerateKeyRequest{KeyType: "RSA", KeySize: 1234}, true},

		{"Empty fields", GenerateKeyRequest{}, true},
		{"Invalid key type", GenerateKeyRequest{KeyType: "Unknown", KeySize: 256}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRequestValidation_RequiredFields(t *testing.T) {
	require.Error(t, (&EncryptRequest{Algorithm: "AES"}).Validate())
	require.NoError(t, (&EncryptRequest{KeyID: "k", Algorithm: "AES"}).Validate())

	require.Error(t, (&DecryptRequest{KeyID: "k", Algorithm: "AES"}).Validate())
	require.NoError(t, (&DecryptRequest{KeyID: "k", Ciphertext: "AAAA", Algorithm: "AES"}).Validate())

	require.Error(t, (&HashRequest{Data: "x"}).Validate())
	require.NoError(t, (&HashRequest{Algorithm: "SHA-256"}).Validate())

	require.Error(t, (&VerifyHashRequest{Data: "x", Algorithm: "MD5"}).Validate())
	require.Error(t, (&HMACRequest{Data: "x", Algorithm: "SHA-256"}).Validate())
	require.Error(t, (&VerifyHMACRequest{KeyID: "k", Algorithm: "SHA-256"}).Validate())
}
