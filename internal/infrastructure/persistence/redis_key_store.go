package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
	"github.com/cybervault/crypto-engine/internal/domain/keys"
	"github.com/cybervault/crypto-engine/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// redisKeyRecord is the JSON value stored under prefix+id
type redisKeyRecord struct {
	Kind            string    `json:"kind"`
	Material        []byte    `json:"material"`
	SizeBits        uint32    `json:"size_bits"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// RedisKeyStore persists records as JSON values. Ids are claimed with SETNX so concurrent
// writers never overwrite each other.
type RedisKeyStore struct {
	client *redis.Client
	prefix string
	newID  func() string
	logger logger.Logger
}

// NewRedisKeyStore creates a key store on an existing client. Keys are namespaced by prefix.
func NewRedisKeyStore(client *redis.Client, prefix string, logger logger.Logger) (*RedisKeyStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	return &RedisKeyStore{
		client: client,
		prefix: prefix,
		newID:  defaultIDGenerator,
		logger: logger,
	}, nil
}

func (s *RedisKeyStore) key(id string) string {
	return s.prefix + id
}

// Put stores a copy of record under a fresh id.
func (s *RedisKeyStore) Put(ctx context.Context, record *keys.KeyRecord) (string, error) {
	id, err := insertWithFreshID(record, s.newID, func(r *keys.KeyRecord) error {
		value, err := json.Marshal(redisKeyRecord{
			Kind:            string(r.Kind),
			Material:        r.Material,
			SizeBits:        r.SizeBits,
			DateTimeCreated: r.DateTimeCreated,
		})
		if err != nil {
			return fmt.Errorf("failed to encode key record: %w", err)
		}

		ok, err := s.client.SetNX(ctx, s.key(r.ID), value, 0).Result()
		if err != nil {
			return fmt.Errorf("failed to store key record: %w", err)
		}
		if !ok {
			return errIDTaken
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Stored key record with id ", id)
	return id, nil
}

// Get loads the record stored under id.
func (s *RedisKeyStore) Get(ctx context.Context, id string) (*keys.KeyRecord, error) {
	value, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", crypto.ErrKeyNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch key record: %w", err)
	}

	var stored redisKeyRecord
	if err := json.Unmarshal(value, &stored); err != nil {
		return nil, fmt.Errorf("corrupt key record %s: %w", id, err)
	}

	kind, err := keys.ParseKind(stored.Kind)
	if err != nil {
		return nil, fmt.Errorf("corrupt key record %s: %w", id, err)
	}

	return &keys.KeyRecord{
		ID:              id,
		Kind:            kind,
		Material:        stored.Material,
		SizeBits:        stored.SizeBits,
		DateTimeCreated: stored.DateTimeCreated.UTC(),
	}, nil
}

// Close closes the redis client
func (s *RedisKeyStore) Close() error {
	return s.client.Close()
}
