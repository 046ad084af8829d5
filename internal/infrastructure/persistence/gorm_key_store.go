package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
	"github.com/cybervault/crypto-engine/internal/domain/keys"
	"github.com/cybervault/crypto-engine/internal/infrastructure/persistence/models"
	"github.com/cybervault/crypto-engine/internal/pkg/logger"

	"gorm.io/gorm"
)

// GormKeyStore persists records to a sqlite or postgres table. Rows are insert-only.
type GormKeyStore struct {
	db     *gorm.DB
	newID  func() string
	logger logger.Logger
}

// NewGormKeyStore creates a key store on top of an open, migrated database
func NewGormKeyStore(db *gorm.DB, logger logger.Logger) (*GormKeyStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}
	return &GormKeyStore{
		db:     db,
		newID:  defaultIDGenerator,
		logger: logger,
	}, nil
}

// Put inserts a copy of record under a fresh id.
func (s *GormKeyStore) Put(ctx context.Context, record *keys.KeyRecord) (string, error) {
	id, err := insertWithFreshID(record, s.newID, func(r *keys.KeyRecord) error {
		model := &models.KeyRecordModel{}
		model.FromDomain(r)

		err := s.db.WithContext(ctx).Create(model).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errIDTaken
		}
		if err != nil {
			return fmt.Errorf("failed to create key record: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Created key record with id ", id)
	return id, nil
}

// Get loads the record stored under id.
func (s *GormKeyStore) Get(ctx context.Context, id string) (*keys.KeyRecord, error) {
	var model models.KeyRecordModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", crypto.ErrKeyNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch key record: %w", err)
	}
	return model.ToDomain()
}

// Close closes the underlying database connection
func (s *GormKeyStore) Close() error {
	return CloseDB(s.db)
}
