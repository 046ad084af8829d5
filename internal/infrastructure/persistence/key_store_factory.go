package persistence

import (
	"context"
	"fmt"

	"github.com/cybervault/crypto-engine/internal/domain/keys"
	"github.com/cybervault/crypto-engine/internal/pkg/config"
	"github.com/cybervault/crypto-engine/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ClosableKeyStore is a key store holding a connection or memory that must be released
type ClosableKeyStore interface {
	keys.KeyStore
	Close() error
}

// NewKeyStore builds the backend selected by settings. Databases are migrated and redis is pinged
// before the store is returned.
func NewKeyStore(ctx context.Context, settings config.KeyStoreSettings, logger logger.Logger) (ClosableKeyStore, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid key store settings: %w", err)
	}

	switch settings.Type {
	case config.MemoryStoreType:
		return NewMemoryKeyStore(logger)

	case config.SqliteDbType, config.PostgresDbType:
		db, err := NewDBConnection(settings)
		if err != nil {
			return nil, fmt.Errorf("failed to create db connection: %w", err)
		}
		if err := Migrate(db); err != nil {
			_ = CloseDB(db)
			return nil, err
		}
		logger.Info("Database migrations completed successfully")
		return NewGormKeyStore(db, logger)

	case config.RedisStoreType:
		client := redis.NewClient(&redis.Options{
			Addr:     settings.RedisAddr,
			Password: settings.RedisPassword,
			DB:       settings.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to reach redis at %s: %w", settings.RedisAddr, err)
		}
		return NewRedisKeyStore(client, settings.Prefix(), logger)

	default:
		return nil, fmt.Errorf("unsupported key store type: %s", settings.Type)
	}
}
