package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
	"github.com/cybervault/crypto-engine/internal/domain/cryptoalg"
	"github.com/cybervault/crypto-engine/internal/pkg/logger"
)

// aesProcessor struct that implements the AESProcessor interface
type aesProcessor struct {
	random io.Reader
	logger logger.Logger
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger) (cryptoalg.AESProcessor, error) {
	return &aesProcessor{
		random: rand.Reader,
		logger: logger,
	}, nil
}

// GenerateKey generates a random AES key of the specified size in bytes.
func (a *aesProcessor) GenerateKey(keySize int) ([]byte, error) {
	switch keySize {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: AES key size %d bytes", crypto.ErrInvalidKeySpec, keySize)
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(a.random, key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}

	a.logger.Info("Generated AES key")
	return key, nil
}

// Encrypt seals data with AES-GCM and returns nonce || tag || ciphertext.
func (a *aesProcessor) Encrypt(data, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(a.random, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal appends the tag after the ciphertext
	sealed := gcm.Seal(nil, nonce, data, nil)
	split := len(sealed) - TagSize

	envelope, err := SealEnvelope(nonce, sealed[split:], sealed[:split])
	if err != nil {
		return nil, err
	}

	a.logger.Info("AES encryption succeeded")
	return envelope, nil
}

// Decrypt opens an envelope produced by Encrypt.
func (a *aesProcessor) Decrypt(envelope, key []byte) ([]byte, error) {
	nonce, tag, ciphertext, err := OpenEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plainText, err := gcm.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		a.logger.Warn("AES decryption rejected")
		return nil, crypto.ErrAuthenticationFailed
	}

	a.logger.Info("AES decryption succeeded")
	return plainText, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithTagSize(block, TagSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}
