// Package crypto defines the vocabulary shared by the key store and the cryptographic engine:
// the closed enumerations for key types, cipher algorithms and hash algorithms, the supported
// key sizes, the operation results and the error taxonomy surfaced to callers.
package crypto
