package cryptography

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1" // #nosec G505 -- OAEP label hash, not used for signatures
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
	"github.com/cybervault/crypto-engine/internal/domain/cryptoalg"
	"github.com/cybervault/crypto-engine/internal/pkg/logger"
)

// PEM block types used for stored RSA material
const (
	pemTypeRSAPrivateKey = "RSA PRIVATE KEY"
	pemTypePrivateKey    = "PRIVATE KEY"
	pemTypePublicKey     = "PUBLIC KEY"
	pemTypeRSAPublicKey  = "RSA PUBLIC KEY"
)

// oaepHashSize is the output size of the OAEP hash (SHA-1, as in PKCS#1 v2 defaults)
const oaepHashSize = sha1.Size

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	random io.Reader
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	return &rsaProcessor{
		random: rand.Reader,
		logger: logger,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified bit size.
func (r *rsaProcessor) GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(r.random, keySize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	publicKey := &privateKey.PublicKey
	r.logger.Info("Generated RSA key pairs")
	return privateKey, publicKey, nil
}

// MaxPlaintextSize returns k - 2*hLen - 2, the OAEP capacity of publicKey.
func (r *rsaProcessor) MaxPlaintextSize(publicKey *rsa.PublicKey) int {
	return publicKey.Size() - 2*oaepHashSize - 2
}

// Encrypt encrypts plaintext using RSA-OAEP (SHA-1, MGF1-SHA-1) with the public key.
func (r *rsaProcessor) Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}

	if maxSize := r.MaxPlaintextSize(publicKey); len(plainText) > maxSize {
		return nil, fmt.Errorf("%w: %d bytes, at most %d allowed", crypto.ErrPlaintextTooLarge, len(plainText), maxSize)
	}

	encryptedData, err := rsa.EncryptOAEP(sha1.New(), r.random, publicKey, plainText, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Info("RSA encryption succeeded")
	return encryptedData, nil
}

// Decrypt decrypts RSA-OAEP ciphertext using the private key.
// Every failure maps to the same error so callers learn nothing about which check failed.
func (r *rsaProcessor) Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}

	decryptedData, err := rsa.DecryptOAEP(sha1.New(), nil, privateKey, ciphertext, nil)
	if err != nil {
		r.logger.Warn("RSA decryption rejected")
		return nil, crypto.ErrDecryptionFailed
	}

	r.logger.Info("RSA decryption succeeded")
	return decryptedData, nil
}

// EncodePrivateKey returns the PEM encoded PKCS#1 form of privateKey.
func (r *rsaProcessor) EncodePrivateKey(privateKey *rsa.PrivateKey) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  pemTypeRSAPrivateKey,
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})
}

// EncodePublicKey returns the PEM encoded PKIX form of publicKey.
func (r *rsaProcessor) EncodePublicKey(publicKey *rsa.PublicKey) ([]byte, error) {
	pubKeyBytes, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  pemTypePublicKey,
		Bytes: pubKeyBytes,
	}), nil
}

// DecodePrivateKey parses a PEM encoded RSA private key in PKCS#1 or PKCS#8 format.
func (r *rsaProcessor) DecodePrivateKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("failed to parse PEM block containing the private key")
	}

	switch block.Type {
	case pemTypeRSAPrivateKey:
		privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("unable to parse PKCS#1 private key: %w", err)
		}
		return privateKey, nil
	case pemTypePrivateKey:
		privateKeyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("unable to parse PKCS#8 private key: %w", err)
		}
		privateKey, ok := privateKeyInterface.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("private key is not of type RSA")
		}
		return privateKey, nil
	default:
		return nil, fmt.Errorf("unexpected PEM block type %q for private key", block.Type)
	}
}

// DecodePublicKey parses a PEM encoded RSA public key in PKIX or PKCS#1 format.
func (r *rsaProcessor) DecodePublicKey(pemBytes []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("failed to parse PEM block containing the public key")
	}

	switch block.Type {
	case pemTypePublicKey:
		pubKeyInterface, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("unable to parse PKIX public key: %w", err)
		}
		publicKey, ok := pubKeyInterface.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("public key is not of type RSA")
		}
		return publicKey, nil
	case pemTypeRSAPublicKey:
		publicKey, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("unable to parse PKCS#1 public key: %w", err)
		}
		return publicKey, nil
	default:
		return nil, fmt.Errorf("unexpected PEM block type %q for public key", block.Type)
	}
}
