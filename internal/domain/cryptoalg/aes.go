package cryptoalg

// AESProcessor handles AES symmetric encryption operations.
// AES is used for encrypting/decrypting data with a shared secret key.
type AESProcessor interface {
	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// Encrypt encrypts plaintext with AES-GCM under a fresh random nonce and returns
	// the envelope nonce || tag || ciphertext.
	Encrypt(data, key []byte) ([]byte, error)

	// Decrypt opens an envelope produced by Encrypt. It returns no plaintext unless the tag verifies.
	Decrypt(envelope, key []byte) ([]byte, error)
}
