package persistence

import (
	"errors"
	"fmt"

	"github.com/cybervault/crypto-engine/internal/domain/keys"

	"github.com/google/uuid"
)

// maxIDAttempts bounds retries when a freshly drawn id is already taken
const maxIDAttempts = 3

// errIDTaken is returned by an insert callback when the id already exists
var errIDTaken = errors.New("key id already taken")

// insertWithFreshID draws ids from newID until insert succeeds with one that is not taken.
// The record is validated and cloned first so callers never share state with the store.
func insertWithFreshID(record *keys.KeyRecord, newID func() string, insert func(*keys.KeyRecord) error) (string, error) {
	if record == nil {
		return "", fmt.Errorf("key record cannot be nil")
	}
	if err := record.Validate(); err != nil {
		return "", fmt.Errorf("validation error: %w", err)
	}

	stored := record.Clone()
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		stored.ID = newID()

		err := insert(stored)
		if err == nil {
			return stored.ID, nil
		}
		if !errors.Is(err, errIDTaken) {
			return "", err
		}
	}
	return "", fmt.Errorf("failed to allocate a unique key id after %d attempts", maxIDAttempts)
}

func defaultIDGenerator() string {
	return uuid.NewString()
}
