package crypto

// HashResult is the outcome of an unkeyed digest.
type HashResult struct {
	// HashValue is the base64 encoded digest
	HashValue string
	// Algorithm is the canonical algorithm name, e.g. SHA-256
	Algorithm HashAlgorithm
}

// HMACResult is the outcome of a keyed digest.
type HMACResult struct {
	MAC       string
	Algorithm HashAlgorithm
}

// VerifyResult reports whether a supplied digest matched. A mismatch is a normal result, not an error.
type VerifyResult struct {
	IsValid bool
	Message string
}
