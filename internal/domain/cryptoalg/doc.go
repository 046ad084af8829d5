// Package cryptoalg defines the primitive processors the cryptographic engine delegates to:
// AES-GCM authenticated encryption, RSA-OAEP encryption with PEM key encoding, and digests.
package cryptoalg
