package cryptography

import (
	"crypto/hmac"
	"crypto/md5" // #nosec G501 -- MD5 digests are offered for compatibility only
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
	"github.com/cybervault/crypto-engine/internal/domain/cryptoalg"
	"github.com/cybervault/crypto-engine/internal/pkg/logger"
)

// hashProcessor struct that implements the HashProcessor interface
type hashProcessor struct {
	logger logger.Logger
}

// NewHashProcessor creates and returns a new instance of hashProcessor
func NewHashProcessor(logger logger.Logger) (cryptoalg.HashProcessor, error) {
	return &hashProcessor{
		logger: logger,
	}, nil
}

// Digest returns the digest of data under algorithm.
func (h *hashProcessor) Digest(data []byte, algorithm crypto.HashAlgorithm) ([]byte, error) {
	newHash, err := hashConstructor(algorithm)
	if err != nil {
		return nil, err
	}

	digest := newHash()
	digest.Write(data)

	h.logger.Info("Computed ", algorithm, " digest")
	return digest.Sum(nil), nil
}

// MAC returns the HMAC of data under key. Only SHA-256 and SHA-512 are accepted.
func (h *hashProcessor) MAC(data, key []byte, algorithm crypto.HashAlgorithm) ([]byte, error) {
	if algorithm == crypto.HashMD5 {
		return nil, fmt.Errorf("%w: %s is not accepted for HMAC", crypto.ErrUnsupportedAlgorithm, algorithm)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("HMAC key cannot be empty")
	}

	newHash, err := hashConstructor(algorithm)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(newHash, key)
	mac.Write(data)

	h.logger.Info("Computed HMAC-", algorithm)
	return mac.Sum(nil), nil
}

func hashConstructor(algorithm crypto.HashAlgorithm) (func() hash.Hash, error) {
	switch algorithm {
	case crypto.HashSHA256:
		return sha256.New, nil
	case crypto.HashSHA512:
		return sha512.New, nil
	case crypto.HashMD5:
		return md5.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", crypto.ErrUnsupportedAlgorithm, algorithm)
	}
}
