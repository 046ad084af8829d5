//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
	"github.com/cybervault/crypto-engine/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDigestHandler_GenerateHash(t *testing.T) {
	mockService := new(MockDigestService)
	handler := NewDigestHandler(mockService, testutil.SetupTestLogger(t))

	mockService.On("Hash", mock.Anything, "abc", crypto.HashSHA256).
		Return(&crypto.HashResult{HashValue: "ungWv48Bz+pBQUDeXa4iI7ADYaOWF3qctBD/YfIAFa0=", Algorithm: crypto.HashSHA256}, nil)

	c, w := newJSONContext("POST", "/generate-hash", `{"data": "abc", "algorithm": "sha-256"}`)
	handler.GenerateHash(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody[HashResponse](t, w)
	assert.Equal(t, "SHA-256", response.Algorithm)
	assert.Equal(t, "ungWv48Bz+pBQUDeXa4iI7ADYaOWF3qctBD/YfIAFa0=", response.HashValue)

	c, w = newJSONContext("POST", "/generate-hash", `{"data": "abc", "algorithm": "sha-1"}`)
	handler.GenerateHash(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "unsupported_algorithm", decodeBody[ErrorResponse](t, w).Code)
}

func TestDigestHandler_VerifyHash(t *testing.T) {
	mockService := new(MockDigestService)
	handler := NewDigestHandler(mockService, testutil.SetupTestLogger(t))

	mockService.On("VerifyHash", mock.Anything, "abc", "digest", crypto.HashSHA512).
		Return(&crypto.VerifyResult{IsValid: false, Message: crypto.MessageHashMismatch}, nil)

	c, w := newJSONContext("POST", "/verify-hash", `{"data": "abc", "hash_value": "digest", "algorithm": "SHA-512"}`)
	handler.VerifyHash(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody[VerifyResponse](t, w)
	assert.False(t, response.IsValid)
	assert.Equal(t, "Hash does not match the data.", response.Message)
	assert.Contains(t, w.Body.String(), `"is_valid":false`)
}

func TestDigestHandler_HMAC(t *testing.T) {
	mockService := new(MockDigestService)
	handler := NewDigestHandler(mockService, testutil.SetupTestLogger(t))

	mockService.On("HMAC", mock.Anything, "k1", "msg", crypto.HashSHA256).
		Return(&crypto.HMACResult{MAC: "bWFj", Algorithm: crypto.HashSHA256}, nil)
	mockService.On("HMAC", mock.Anything, "pub", "msg", crypto.HashSHA256).
		Return(nil, crypto.ErrKeyKindMismatch)
	mockService.On("VerifyHMAC", mock.Anything, "k1", "msg", "bWFj", crypto.HashSHA256).
		Return(&crypto.VerifyResult{IsValid: true, Message: crypto.MessageHMACMatches}, nil)

	c, w := newJSONContext("POST", "/generate-hmac", `{"key_id": "k1", "data": "msg", "algorithm": "sha-256"}`)
	handler.GenerateHMAC(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bWFj", decodeBody[HMACResponse](t, w).MAC)

	c, w = newJSONContext("POST", "/generate-hmac", `{"key_id": "pub", "data": "msg", "algorithm": "sha-256"}`)
	handler.GenerateHMAC(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "key_kind_mismatch", decodeBody[ErrorResponse](t, w).Code)

	c, w = newJSONContext("POST", "/verify-hmac", `{"key_id": "k1", "data": "msg", "mac": "bWFj", "algorithm": "SHA-256"}`)
	handler.VerifyHMAC(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeBody[VerifyResponse](t, w).IsValid)

	c, w = newJSONContext("POST", "/verify-hmac", `{"key_id": "k1", "data": "msg", "algorithm": "SHA-256"}`)
	handler.VerifyHMAC(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.AssertExpectations(t)
}
