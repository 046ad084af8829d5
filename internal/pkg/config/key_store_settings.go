package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Key store backends
const (
	MemoryStoreType = "memory"
	SqliteDbType    = "sqlite"
	PostgresDbType  = "postgres"
	RedisStoreType  = "redis"
)

// DefaultRedisPrefix namespaces key records in a shared redis instance
const DefaultRedisPrefix = "crypto-engine:key:"

// KeyStoreSettings selects and configures the backend holding key records
type KeyStoreSettings struct {
	Type          string `mapstructure:"type" validate:"required,oneof=memory sqlite postgres redis"`
	DSN           string `mapstructure:"dsn"`
	Name          string `mapstructure:"name"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db" validate:"gte=0"`
	RedisPrefix   string `mapstructure:"redis_prefix"`
}

// Validate checks that all fields in KeyStoreSettings are valid
func (s *KeyStoreSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyStoreSettings: %w", err)
	}

	switch s.Type {
	case SqliteDbType:
		if s.DSN == "" {
			return fmt.Errorf("dsn is required for the %s key store", s.Type)
		}
	case PostgresDbType:
		if s.DSN == "" || s.Name == "" {
			return fmt.Errorf("dsn and name are required for the %s key store", s.Type)
		}
	case RedisStoreType:
		if s.RedisAddr == "" {
			return fmt.Errorf("redis address is required for the %s key store", s.Type)
		}
	}

	return nil
}

// Prefix returns the configured redis key prefix or the default one.
func (s *KeyStoreSettings) Prefix() string {
	if s.RedisPrefix == "" {
		return DefaultRedisPrefix
	}
	return s.RedisPrefix
}
