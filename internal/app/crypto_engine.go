package app

import (
	"context"
	"crypto/hmac"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
	"github.com/cybervault/crypto-engine/internal/domain/cryptoalg"
	"github.com/cybervault/crypto-engine/internal/domain/keys"
	"github.com/cybervault/crypto-engine/internal/pkg/config"
	"github.com/cybervault/crypto-engine/internal/pkg/logger"
)

// CryptoEngine implements key generation, cipher and digest services over one key store.
// It holds no mutable state of its own; all shared state lives in the store.
type CryptoEngine struct {
	store         keys.KeyStore
	aesProcessor  cryptoalg.AESProcessor
	rsaProcessor  cryptoalg.RSAProcessor
	hashProcessor cryptoalg.HashProcessor
	settings      *config.EngineSettings
	metrics       *engineMetrics
	logger        logger.Logger
}

var (
	_ keys.KeyGenerationService = (*CryptoEngine)(nil)
	_ keys.CipherService        = (*CryptoEngine)(nil)
	_ keys.DigestService        = (*CryptoEngine)(nil)
)

// NewCryptoEngine creates an engine over store. A nil settings value selects DefaultEngineSettings.
func NewCryptoEngine(
	store keys.KeyStore,
	aesProcessor cryptoalg.AESProcessor,
	rsaProcessor cryptoalg.RSAProcessor,
	hashProcessor cryptoalg.HashProcessor,
	settings *config.EngineSettings,
	logger logger.Logger,
	opts ...EngineOption,
) (*CryptoEngine, error) {
	if store == nil {
		return nil, fmt.Errorf("key store cannot be nil")
	}
	if aesProcessor == nil || rsaProcessor == nil || hashProcessor == nil {
		return nil, fmt.Errorf("cryptographic processors cannot be nil")
	}
	if settings == nil {
		settings = config.DefaultEngineSettings()
	}

	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	metrics, err := newEngineMetrics(options.meterProvider)
	if err != nil {
		return nil, err
	}

	return &CryptoEngine{
		store:         store,
		aesProcessor:  aesProcessor,
		rsaProcessor:  rsaProcessor,
		hashProcessor: hashProcessor,
		settings:      settings,
		metrics:       metrics,
		logger:        logger,
	}, nil
}

// GenerateKey creates one symmetric record, or a private and a public record for an RSA pair.
func (e *CryptoEngine) GenerateKey(ctx context.Context, keyType crypto.KeyType, keySize uint32) (result *keys.GenerateKeyResult, err error) {
	defer func() { e.metrics.record(ctx, opGenerateKey, err) }()

	if err := crypto.ValidateKeySpec(keyType, keySize); err != nil {
		return nil, err
	}

	switch keyType {
	case crypto.KeyTypeSymmetric:
		return e.generateSymmetricKey(ctx, keySize)
	case crypto.KeyTypeRSAKeyPair:
		return e.generateRSAKeyPair(ctx, keySize)
	default:
		return nil, fmt.Errorf("%w: unknown key type %q", crypto.ErrInvalidKeySpec, keyType)
	}
}

func (e *CryptoEngine) generateSymmetricKey(ctx context.Context, keySize uint32) (*keys.GenerateKeyResult, error) {
	key, err := e.aesProcessor.GenerateKey(int(keySize / 8))
	if err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}
	defer clear(key)

	generated, err := e.put(ctx, keys.KindSymmetricKey, key, keySize)
	if err != nil {
		return nil, err
	}

	e.logger.Info("Generated ", keySize, "-bit AES key ", generated.ID)
	return &keys.GenerateKeyResult{KeyType: crypto.KeyTypeSymmetric, Symmetric: generated}, nil
}

func (e *CryptoEngine) generateRSAKeyPair(ctx context.Context, keySize uint32) (*keys.GenerateKeyResult, error) {
	privateKey, publicKey, err := e.rsaProcessor.GenerateKeys(int(keySize))
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	privatePEM := e.rsaProcessor.EncodePrivateKey(privateKey)
	defer clear(privatePEM)

	publicPEM, err := e.rsaProcessor.EncodePublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	private, err := e.put(ctx, keys.KindRSAPrivateKey, privatePEM, keySize)
	if err != nil {
		return nil, err
	}

	public, err := e.put(ctx, keys.KindRSAPublicKey, publicPEM, keySize)
	if err != nil {
		return nil, err
	}

	e.logger.Info("Generated ", keySize, "-bit RSA key pair ", private.ID, " / ", public.ID)
	return &keys.GenerateKeyResult{KeyType: crypto.KeyTypeRSAKeyPair, Private: private, Public: public}, nil
}

// put stores one record and reports it, echoing the material only when export is enabled
func (e *CryptoEngine) put(ctx context.Context, kind keys.Kind, material []byte, keySize uint32) (*keys.GeneratedKey, error) {
	id, err := e.store.Put(ctx, keys.NewKeyRecord(kind, material, keySize))
	if err != nil {
		return nil, fmt.Errorf("failed to store %s key: %w", kind, err)
	}

	generated := &keys.GeneratedKey{ID: id, Kind: kind}
	if e.settings.ExportKeyMaterial {
		generated.Material = base64.StdEncoding.EncodeToString(material)
	}
	return generated, nil
}

// DescribeKey returns the metadata of a stored key without its material.
func (e *CryptoEngine) DescribeKey(ctx context.Context, keyID string) (descriptor *keys.KeyDescriptor, err error) {
	defer func() { e.metrics.record(ctx, opDescribeKey, err) }()

	record, err := e.store.Get(ctx, keyID)
	if err != nil {
		return nil, err
	}
	record.Wipe()

	return record.Descriptor(), nil
}

// Encrypt encrypts plaintext under the stored key and returns base64 ciphertext.
// AES needs a symmetric key; RSA needs a public key.
func (e *CryptoEngine) Encrypt(ctx context.Context, keyID, plaintext string, algorithm crypto.Algorithm) (ciphertext string, err error) {
	defer func() { e.metrics.record(ctx, opEncrypt, err) }()

	if err := checkAlgorithm(algorithm); err != nil {
		return "", err
	}

	record, err := e.store.Get(ctx, keyID)
	if err != nil {
		return "", err
	}
	defer record.Wipe()

	var out []byte
	switch algorithm {
	case crypto.AlgorithmSymmetric:
		key, err := record.SymmetricKey()
		if err != nil {
			return "", err
		}
		if out, err = e.aesProcessor.Encrypt([]byte(plaintext), key); err != nil {
			return "", err
		}

	case crypto.AlgorithmAsymmetric:
		publicPEM, err := record.RSAPublicKey()
		if err != nil {
			return "", err
		}
		publicKey, err := e.rsaProcessor.DecodePublicKey(publicPEM)
		if err != nil {
			return "", fmt.Errorf("failed to load public key %s: %w", keyID, err)
		}
		if out, err = e.rsaProcessor.Encrypt([]byte(plaintext), publicKey); err != nil {
			return "", err
		}
	}

	e.logger.Info("Encrypted ", len(plaintext), " bytes with ", algorithm, " key ", keyID)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt decrypts base64 ciphertext under the stored key and returns the UTF-8 plaintext.
// AES needs a symmetric key; RSA needs a private key.
func (e *CryptoEngine) Decrypt(ctx context.Context, keyID, ciphertext string, algorithm crypto.Algorithm) (plaintext string, err error) {
	defer func() { e.metrics.record(ctx, opDecrypt, err) }()

	if err := checkAlgorithm(algorithm); err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext is not valid base64", crypto.ErrMalformedCiphertext)
	}

	record, err := e.store.Get(ctx, keyID)
	if err != nil {
		return "", err
	}
	defer record.Wipe()

	var out []byte
	switch algorithm {
	case crypto.AlgorithmSymmetric:
		key, err := record.SymmetricKey()
		if err != nil {
			return "", err
		}
		if out, err = e.aesProcessor.Decrypt(raw, key); err != nil {
			return "", err
		}

	case crypto.AlgorithmAsymmetric:
		privatePEM, err := record.RSAPrivateKey()
		if err != nil {
			return "", err
		}
		privateKey, err := e.rsaProcessor.DecodePrivateKey(privatePEM)
		if err != nil {
			return "", fmt.Errorf("failed to load private key %s: %w", keyID, err)
		}
		if out, err = e.rsaProcessor.Decrypt(raw, privateKey); err != nil {
			return "", err
		}
	}

	if !utf8.Valid(out) {
		clear(out)
		return "", crypto.ErrEncodingError
	}

	e.logger.Info("Decrypted ", len(out), " bytes with ", algorithm, " key ", keyID)
	return string(out), nil
}

// Hash returns the base64 digest of the UTF-8 bytes of data.
func (e *CryptoEngine) Hash(ctx context.Context, data string, algorithm crypto.HashAlgorithm) (result *crypto.HashResult, err error) {
	defer func() { e.metrics.record(ctx, opHash, err) }()

	digest, err := e.hashProcessor.Digest([]byte(data), algorithm)
	if err != nil {
		return nil, err
	}

	return &crypto.HashResult{
		HashValue: base64.StdEncoding.EncodeToString(digest),
		Algorithm: algorithm,
	}, nil
}

// VerifyHash recomputes the digest of data and compares it to hashValue in constant time.
func (e *CryptoEngine) VerifyHash(ctx context.Context, data, hashValue string, algorithm crypto.HashAlgorithm) (result *crypto.VerifyResult, err error) {
	defer func() { e.metrics.record(ctx, opVerifyHash, err) }()

	digest, err := e.hashProcessor.Digest([]byte(data), algorithm)
	if err != nil {
		return nil, err
	}

	computed := base64.StdEncoding.EncodeToString(digest)
	if subtle.ConstantTimeCompare([]byte(computed), []byte(hashValue)) == 1 {
		return &crypto.VerifyResult{IsValid: true, Message: crypto.MessageHashMatches}, nil
	}
	return &crypto.VerifyResult{IsValid: false, Message: crypto.MessageHashMismatch}, nil
}

// HMAC returns the base64 HMAC of data under a stored symmetric key.
func (e *CryptoEngine) HMAC(ctx context.Context, keyID, data string, algorithm crypto.HashAlgorithm) (result *crypto.HMACResult, err error) {
	defer func() { e.metrics.record(ctx, opHMAC, err) }()

	mac, err := e.mac(ctx, keyID, data, algorithm)
	if err != nil {
		return nil, err
	}

	return &crypto.HMACResult{
		MAC:       base64.StdEncoding.EncodeToString(mac),
		Algorithm: algorithm,
	}, nil
}

// VerifyHMAC recomputes the HMAC of data and compares it to the base64 mac in constant time.
func (e *CryptoEngine) VerifyHMAC(ctx context.Context, keyID, data, mac string, algorithm crypto.HashAlgorithm) (result *crypto.VerifyResult, err error) {
	defer func() { e.metrics.record(ctx, opVerifyHMAC, err) }()

	computed, err := e.mac(ctx, keyID, data, algorithm)
	if err != nil {
		return nil, err
	}

	supplied, err := base64.StdEncoding.DecodeString(mac)
	if err != nil {
		return &crypto.VerifyResult{IsValid: false, Message: crypto.MessageHMACMalformed}, nil
	}

	if hmac.Equal(computed, supplied) {
		return &crypto.VerifyResult{IsValid: true, Message: crypto.MessageHMACMatches}, nil
	}
	return &crypto.VerifyResult{IsValid: false, Message: crypto.MessageHMACMismatch}, nil
}

func (e *CryptoEngine) mac(ctx context.Context, keyID, data string, algorithm crypto.HashAlgorithm) ([]byte, error) {
	record, err := e.store.Get(ctx, keyID)
	if err != nil {
		return nil, err
	}
	defer record.Wipe()

	key, err := record.SymmetricKey()
	if err != nil {
		return nil, err
	}
	return e.hashProcessor.MAC([]byte(data), key, algorithm)
}

// checkAlgorithm rejects algorithms outside the closed set before any key lookup
func checkAlgorithm(algorithm crypto.Algorithm) error {
	switch algorithm {
	case crypto.AlgorithmSymmetric, crypto.AlgorithmAsymmetric:
		return nil
	default:
		return fmt.Errorf("%w: %q", crypto.ErrUnsupportedAlgorithm, algorithm)
	}
}
