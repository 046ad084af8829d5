package crypto

import "errors"

var (
	// ErrInvalidKeySpec is returned for an unsupported key type or key size combination.
	ErrInvalidKeySpec = errors.New("invalid key specification")

	// ErrKeyNotFound is returned when no record exists for a key id.
	ErrKeyNotFound = errors.New("key not found")

	// ErrKeyKindMismatch is returned when a record exists but its kind cannot serve the operation.
	ErrKeyKindMismatch = errors.New("key kind does not match the requested operation")

	// ErrUnsupportedAlgorithm is returned for an unrecognized cipher or hash algorithm.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrMalformedCiphertext is returned when a ciphertext cannot be decoded or is too short.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrAuthenticationFailed is returned when an AEAD tag does not verify.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrDecryptionFailed is returned for any asymmetric decryption failure.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrPlaintextTooLarge is returned when a plaintext exceeds the asymmetric key capacity.
	ErrPlaintextTooLarge = errors.New("plaintext too large for key")

	// ErrEncodingError is returned when decrypted bytes are not valid UTF-8.
	ErrEncodingError = errors.New("decrypted data is not valid UTF-8")
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrInvalidKeySpec, "invalid_key_spec"},
	{ErrKeyNotFound, "key_not_found"},
	{ErrKeyKindMismatch, "key_kind_mismatch"},
	{ErrUnsupportedAlgorithm, "unsupported_algorithm"},
	{ErrMalformedCiphertext, "malformed_ciphertext"},
	{ErrAuthenticationFailed, "authentication_failed"},
	{ErrDecryptionFailed, "decryption_failed"},
	{ErrPlaintextTooLarge, "plaintext_too_large"},
	{ErrEncodingError, "encoding_error"},
}

// ErrorCode returns a stable machine readable code for err. Errors outside the taxonomy
// map to "internal"; a nil error maps to "success".
func ErrorCode(err error) string {
	if err == nil {
		return "success"
	}
	for _, entry := range errorCodes {
		if errors.Is(err, entry.err) {
			return entry.code
		}
	}
	return "internal"
}

// IsClientError returns true if err is or wraps one of the taxonomy errors.
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code != "internal" && code != "success"
}

// IsKeyNotFound returns true if the error is or wraps ErrKeyNotFound.
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// IsKeyKindMismatch returns true if the error is or wraps ErrKeyKindMismatch.
func IsKeyKindMismatch(err error) bool {
	return errors.Is(err, ErrKeyKindMismatch)
}

// IsAuthenticationFailed returns true if the error is or wraps ErrAuthenticationFailed.
func IsAuthenticationFailed(err error) bool {
	return errors.Is(err, ErrAuthenticationFailed)
}

// IsDecryptionFailed returns true if the error is or wraps ErrDecryptionFailed.
func IsDecryptionFailed(err error) bool {
	return errors.Is(err, ErrDecryptionFailed)
}
