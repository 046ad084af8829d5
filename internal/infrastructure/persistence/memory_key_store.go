package persistence

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
	"github.com/cybervault/crypto-engine/internal/domain/keys"
	"github.com/cybervault/crypto-engine/internal/pkg/logger"

	"github.com/awnumar/memguard"
)

// sealedEntry keeps key material encrypted at rest inside the process
type sealedEntry struct {
	kind            keys.Kind
	sizeBits        uint32
	dateTimeCreated time.Time
	material        *memguard.Enclave
}

// MemoryKeyStore keeps records in process memory with their material sealed in memguard enclaves.
type MemoryKeyStore struct {
	mu      sync.RWMutex
	entries map[string]*sealedEntry
	newID   func() string
	logger  logger.Logger
}

// NewMemoryKeyStore creates an empty in-memory key store
func NewMemoryKeyStore(logger logger.Logger) (*MemoryKeyStore, error) {
	return &MemoryKeyStore{
		entries: make(map[string]*sealedEntry),
		newID:   defaultIDGenerator,
		logger:  logger,
	}, nil
}

// Put seals a copy of the record material and stores it under a fresh id.
func (s *MemoryKeyStore) Put(_ context.Context, record *keys.KeyRecord) (string, error) {
	id, err := insertWithFreshID(record, s.newID, func(r *keys.KeyRecord) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, taken := s.entries[r.ID]; taken {
			return errIDTaken
		}

		// NewEnclave wipes the buffer it is given; r is already a private clone
		s.entries[r.ID] = &sealedEntry{
			kind:            r.Kind,
			sizeBits:        r.SizeBits,
			dateTimeCreated: r.DateTimeCreated,
			material:        memguard.NewEnclave(r.Material),
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Stored key record with id ", id)
	return id, nil
}

// Get unseals the material stored under id and returns it in a new record.
func (s *MemoryKeyStore) Get(_ context.Context, id string) (*keys.KeyRecord, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", crypto.ErrKeyNotFound, id)
	}

	buf, err := entry.material.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to unseal key record %s: %w", id, err)
	}
	defer buf.Destroy()

	return &keys.KeyRecord{
		ID:              id,
		Kind:            entry.kind,
		Material:        append([]byte(nil), buf.Bytes()...),
		SizeBits:        entry.sizeBits,
		DateTimeCreated: entry.dateTimeCreated,
	}, nil
}

// Len returns the number of stored records
func (s *MemoryKeyStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close drops every record. Sealed material becomes unreachable.
func (s *MemoryKeyStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*sealedEntry)
	return nil
}
