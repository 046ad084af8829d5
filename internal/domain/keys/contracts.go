package keys

import (
	"context"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
)

// KeyStore owns the mapping from key id to KeyRecord. It offers insertion and lookup only.
type KeyStore interface {
	// Put assigns a fresh unique id to a copy of record, stores it and returns the id.
	Put(ctx context.Context, record *KeyRecord) (string, error)

	// Get returns a copy of the record stored under id, or an error wrapping crypto.ErrKeyNotFound.
	Get(ctx context.Context, id string) (*KeyRecord, error)
}

// KeyGenerationService defines methods for creating keys and describing stored keys.
type KeyGenerationService interface {
	// GenerateKey creates one symmetric record or an RSA private/public record pair.
	GenerateKey(ctx context.Context, keyType crypto.KeyType, keySize uint32) (*GenerateKeyResult, error)

	// DescribeKey returns the non-secret metadata of a stored key.
	DescribeKey(ctx context.Context, keyID string) (*KeyDescriptor, error)
}

// CipherService defines methods for encrypting and decrypting with stored keys.
type CipherService interface {
	// Encrypt returns the base64 ciphertext of plaintext. Symmetric ciphertexts are framed
	// as nonce || tag || ciphertext.
	Encrypt(ctx context.Context, keyID, plaintext string, algorithm crypto.Algorithm) (string, error)

	// Decrypt reverses Encrypt and returns the UTF-8 plaintext.
	Decrypt(ctx context.Context, keyID, ciphertext string, algorithm crypto.Algorithm) (string, error)
}

// DigestService defines methods for unkeyed and keyed hashing.
type DigestService interface {
	Hash(ctx context.Context, data string, algorithm crypto.HashAlgorithm) (*crypto.HashResult, error)
	VerifyHash(ctx context.Context, data, hashValue string, algorithm crypto.HashAlgorithm) (*crypto.VerifyResult, error)
	HMAC(ctx context.Context, keyID, data string, algorithm crypto.HashAlgorithm) (*crypto.HMACResult, error)
	VerifyHMAC(ctx context.Context, keyID, data, mac string, algorithm crypto.HashAlgorithm) (*crypto.VerifyResult, error)
}
