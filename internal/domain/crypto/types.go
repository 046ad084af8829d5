package crypto

import (
	"fmt"
	"strings"
)

// ParseKeyType normalizes a caller supplied key type. Matching is case-insensitive.
func ParseKeyType(value string) (KeyType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "aes", "symmetric":
		return KeyTypeSymmetric, nil
	case "rsa", "rsakeypair", "rsa-key-pair", "asymmetric":
		return KeyTypeRSAKeyPair, nil
	default:
		return "", fmt.Errorf("%w: unknown key type %q", ErrInvalidKeySpec, value)
	}
}

// ParseAlgorithm normalizes a caller supplied cipher algorithm. Matching is case-insensitive.
func ParseAlgorithm(value string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "aes", "symmetric":
		return AlgorithmSymmetric, nil
	case "rsa", "asymmetric":
		return AlgorithmAsymmetric, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, value)
	}
}

// ParseHashAlgorithm normalizes a caller supplied hash algorithm. Only sha-256, sha-512 and md5
// are accepted, case-insensitively.
func ParseHashAlgorithm(value string) (HashAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "sha-256":
		return HashSHA256, nil
	case "sha-512":
		return HashSHA512, nil
	case "md5":
		return HashMD5, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, value)
	}
}

// IsSupportedKeySize reports whether keySize (in bits) is allowed for keyType.
func IsSupportedKeySize(keyType KeyType, keySize uint32) bool {
	switch keyType {
	case KeyTypeSymmetric:
		return keySize == AESKeySize128 || keySize == AESKeySize192 || keySize == AESKeySize256
	case KeyTypeRSAKeyPair:
		return keySize == RSAKeySize1024 || keySize == RSAKeySize2048 || keySize == RSAKeySize4096
	default:
		return false
	}
}

// ValidateKeySpec returns ErrInvalidKeySpec unless keySize is allowed for keyType.
func ValidateKeySpec(keyType KeyType, keySize uint32) error {
	if !IsSupportedKeySize(keyType, keySize) {
		return fmt.Errorf("%w: key size %d not supported for %s", ErrInvalidKeySpec, keySize, keyType)
	}
	return nil
}
