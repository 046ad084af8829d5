// Package app implements the cryptographic engine: key generation, encryption, decryption and
// digests over keys held in an injected key store.
package app
