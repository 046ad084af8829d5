package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CRYPTO_ENGINE_KEY_STORE_TYPE
const EnvPrefix = "CRYPTO_ENGINE"

// CORSSettings lists origins allowed to call the REST API
type CORSSettings struct {
	AllowOrigins []string `mapstructure:"allow_origins" validate:"required,min=1"`
}

// RestConfig is the configuration of the REST server binary
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	KeyStore KeyStoreSettings `mapstructure:"key_store"`
	Engine   EngineSettings   `mapstructure:"engine"`
	CORS     CORSSettings     `mapstructure:"cors"`
}

// Validate checks the top level fields and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.KeyStore.Validate()
}

// InitializeRestConfig reads configPath, if not empty, merged with defaults and CRYPTO_ENGINE_* env overrides.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)

	v.SetDefault("key_store.type", MemoryStoreType)
	v.SetDefault("key_store.dsn", "")
	v.SetDefault("key_store.name", "")
	v.SetDefault("key_store.redis_addr", "")
	v.SetDefault("key_store.redis_password", "")
	v.SetDefault("key_store.redis_db", 0)
	v.SetDefault("key_store.redis_prefix", DefaultRedisPrefix)

	v.SetDefault("engine.export_key_material", true)

	v.SetDefault("cors.allow_origins", []string{"http://localhost:3000", "localhost:3000"})
}
