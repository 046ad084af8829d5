// Package persistence provides the key store backends: a sealed in-memory store,
// a GORM store for sqlite and postgres, and a redis store. Every backend hands out
// copies of records, never references to its own state.
package persistence
