package cryptoalg

import "crypto/rsa"

// RSAProcessor handles RSA asymmetric encryption operations.
type RSAProcessor interface {
	// GenerateKeys generates an RSA key pair with the specified bit size.
	GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// Encrypt encrypts plaintext using RSA-OAEP with the public key.
	// NOTE: RSA can only encrypt small amounts of data, see MaxPlaintextSize.
	Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// Decrypt decrypts RSA-OAEP ciphertext using the private key.
	Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// MaxPlaintextSize returns the largest plaintext in bytes Encrypt accepts for publicKey.
	MaxPlaintextSize(publicKey *rsa.PublicKey) int

	// EncodePrivateKey returns the PEM encoded PKCS#1 form of privateKey.
	EncodePrivateKey(privateKey *rsa.PrivateKey) []byte

	// EncodePublicKey returns the PEM encoded PKIX form of publicKey.
	EncodePublicKey(publicKey *rsa.PublicKey) ([]byte, error)

	// DecodePrivateKey parses a PEM encoded private key (PKCS#1 or PKCS#8).
	DecodePrivateKey(pemBytes []byte) (*rsa.PrivateKey, error)

	// DecodePublicKey parses a PEM encoded public key (PKIX or PKCS#1).
	DecodePublicKey(pemBytes []byte) (*rsa.PublicKey, error)
}
