// Package keys defines the stored unit of key material, the key store contract and the
// service contracts the cryptographic engine exposes to its transports.
package keys
