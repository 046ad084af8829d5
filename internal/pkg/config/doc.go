// Package config holds the settings structs of the crypto engine binaries and their validation.
//
// Settings are read from an optional YAML file, merged with defaults and
// CRYPTO_ENGINE_* environment overrides, then validated before any
// component is constructed.
package config
