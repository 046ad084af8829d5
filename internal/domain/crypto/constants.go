package crypto

// KeyType identifies what a key generation request produces.
type KeyType string

const (
	// KeyTypeSymmetric produces a single AES key
	KeyTypeSymmetric KeyType = "AES"
	// KeyTypeRSAKeyPair produces an RSA private key and its public half as two records
	KeyTypeRSAKeyPair KeyType = "RSA"
)

// Algorithm identifies the cipher used by encrypt and decrypt.
type Algorithm string

const (
	// AlgorithmSymmetric is AES-GCM over a symmetric key
	AlgorithmSymmetric Algorithm = "AES"
	// AlgorithmAsymmetric is RSA-OAEP over a public (encrypt) or private (decrypt) key
	AlgorithmAsymmetric Algorithm = "RSA"
)

// HashAlgorithm identifies a digest function. The value is the canonical, uppercased name.
type HashAlgorithm string

const (
	// HashSHA256 is SHA-256
	HashSHA256 HashAlgorithm = "SHA-256"
	// HashSHA512 is SHA-512
	HashSHA512 HashAlgorithm = "SHA-512"
	// HashMD5 is MD5. It is cryptographically broken and offers no collision resistance;
	// it is kept for compatibility only and must not protect integrity-sensitive data.
	HashMD5 HashAlgorithm = "MD5"
)

// AESKeySize128 is the 128-bit AES key size in bits
const AESKeySize128 = 128

// AESKeySize192 is the 192-bit AES key size in bits
const AESKeySize192 = 192

// AESKeySize256 is the 256-bit AES key size in bits
const AESKeySize256 = 256

// RSAKeySize1024 is the 1024-bit RSA modulus size
const RSAKeySize1024 = 1024

// RSAKeySize2048 is the 2048-bit RSA modulus size
const RSAKeySize2048 = 2048

// RSAKeySize4096 is the 4096-bit RSA modulus size
const RSAKeySize4096 = 4096

// Verification messages
const (
	MessageHashMatches   = "Hash matches the data."
	MessageHashMismatch  = "Hash does not match the data."
	MessageHMACMatches   = "MAC matches the data."
	MessageHMACMismatch  = "MAC does not match the data."
	MessageHMACMalformed = "MAC is not valid base64."
)
