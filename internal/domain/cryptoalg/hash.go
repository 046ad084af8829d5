package cryptoalg

import "github.com/cybervault/crypto-engine/internal/domain/crypto"

// HashProcessor computes unkeyed and keyed digests.
type HashProcessor interface {
	// Digest returns the digest of data under algorithm.
	Digest(data []byte, algorithm crypto.HashAlgorithm) ([]byte, error)

	// MAC returns the HMAC of data under key. MD5 is rejected.
	MAC(data, key []byte, algorithm crypto.HashAlgorithm) ([]byte, error)
}
