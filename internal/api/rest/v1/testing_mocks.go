//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
	"github.com/cybervault/crypto-engine/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyGenerationService is a mock implementation of KeyGenerationService
type MockKeyGenerationService struct {
	mock.Mock
}

func (m *MockKeyGenerationService) GenerateKey(ctx context.Context, keyType crypto.KeyType, keySize uint32) (*keys.GenerateKeyResult, error) {
	args := m.Called(ctx, keyType, keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.GenerateKeyResult), args.Error(1)
}

func (m *MockKeyGenerationService) DescribeKey(ctx context.Context, keyID string) (*keys.KeyDescriptor, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyDescriptor), args.Error(1)
}

// MockCipherService is a mock implementation of CipherService
type MockCipherService struct {
	mock.Mock
}

func (m *MockCipherService) Encrypt(ctx context.Context, keyID, plaintext string, algorithm crypto.Algorithm) (string, error) {
	args := m.Called(ctx, keyID, plaintext, algorithm)
	return args.String(0), args.Error(1)
}

func (m *MockCipherService) Decrypt(ctx context.Context, keyID, ciphertext string, algorithm crypto.Algorithm) (string, error) {
	args := m.Called(ctx, keyID, ciphertext, algorithm)
	return args.String(0), args.Error(1)
}

// MockDigestService is a mock implementation of DigestService
type MockDigestService struct {
	mock.Mock
}

func (m *MockDigestService) Hash(ctx context.Context, data string, algorithm crypto.HashAlgorithm) (*crypto.HashResult, error) {
	args := m.Called(ctx, data, algorithm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.HashResult), args.Error(1)
}

func (m *MockDigestService) VerifyHash(ctx context.Context, data, hashValue string, algorithm crypto.HashAlgorithm) (*crypto.VerifyResult, error) {
	args := m.Called(ctx, data, hashValue, algorithm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.VerifyResult), args.Error(1)
}

func (m *MockDigestService) HMAC(ctx context.Context, keyID, data string, algorithm crypto.HashAlgorithm) (*crypto.HMACResult, error) {
	args := m.Called(ctx, keyID, data, algorithm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.HMACResult), args.Error(1)
}

func (m *MockDigestService) VerifyHMAC(ctx context.Context, keyID, data, mac string, algorithm crypto.HashAlgorithm) (*crypto.VerifyResult, error) {
	args := m.Called(ctx, keyID, data, mac, algorithm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.VerifyResult), args.Error(1)
}
