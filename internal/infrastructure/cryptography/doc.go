// Package cryptography implements the cryptoalg processors on top of the Go standard
// crypto packages: AES-GCM with a self-describing envelope, RSA-OAEP with PEM key
// encoding, and SHA-2/MD5 digests with HMAC.
package cryptography
