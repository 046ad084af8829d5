//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type keyRequest struct {
	KeyType string `validate:"required"`
	KeySize uint32 `validate:"required,keysize"`
}

func TestKeySizeValidation(t *testing.T) {
	validate := New()

	tests := []struct {
		name    string
		request keyRequest
		valid   bool
	}{
		{"aes 128", keyRequest{"AES", 128}, true},
		{"aes 192", keyRequest{"aes", 192}, true},
		{"aes 256 symmetric alias", keyRequest{"symmetric", 256}, true},
		{"aes 512", keyRequest{"AES", 512}, false},
		{"rsa 2048", keyRequest{"RSA", 2048}, true},
		{"rsa 4096 pair alias", keyRequest{"rsa-key-pair", 4096}, true},
		{"rsa 3072", keyRequest{"RSA", 3072}, false},
		{"rsa 512", keyRequest{"RSA", 512}, false},
		{"unknown type", keyRequest{"ECDSA", 256}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.request)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
