package commands

import (
	"fmt"
	"os"

	"github.com/cybervault/crypto-engine/internal/app"
	"github.com/cybervault/crypto-engine/internal/infrastructure/cryptography"
	"github.com/cybervault/crypto-engine/internal/infrastructure/persistence"
	"github.com/cybervault/crypto-engine/internal/pkg/config"
	"github.com/cybervault/crypto-engine/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Environment variables read as flag defaults
const (
	envStore     = "CRYPTO_ENGINE_KEY_STORE_TYPE"
	envDSN       = "CRYPTO_ENGINE_KEY_STORE_DSN"
	envRedisAddr = "CRYPTO_ENGINE_KEY_STORE_REDIS_ADDR"
)

const defaultSqliteDSN = "crypto-engine.db"

// CommandContext owns the engine shared by all sub-commands of one root command.
// The engine and its key store are built on first use.
type CommandContext struct {
	storeType   string
	dsn         string
	redisAddr   string
	redisPrefix string
	logLevel    string
	noExport    bool

	store  persistence.ClosableKeyStore
	engine *app.CryptoEngine
}

// NewRootCommand creates the root command with every sub-command registered.
func NewRootCommand() (*cobra.Command, *CommandContext) {
	cmdContext := &CommandContext{}

	rootCmd := &cobra.Command{
		Use:   "crypto-engine-cli",
		Short: "Key management and cryptographic operations CLI tool",
		Long: `crypto-engine-cli generates AES keys and RSA key pairs into a key store and
runs encryption, decryption, hashing and HMAC operations against the stored keys.

Key ids only survive across invocations with a durable store (sqlite or redis).
The memory store forgets every key when the command exits.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cmdContext.storeType, "store", envOrDefault(envStore, config.SqliteDbType), "Key store backend: memory, sqlite or redis")
	flags.StringVar(&cmdContext.dsn, "dsn", envOrDefault(envDSN, defaultSqliteDSN), "SQLite database file")
	flags.StringVar(&cmdContext.redisAddr, "redis-addr", os.Getenv(envRedisAddr), "Redis address (host:port)")
	flags.StringVar(&cmdContext.redisPrefix, "redis-prefix", config.DefaultRedisPrefix, "Redis key prefix")
	flags.StringVar(&cmdContext.logLevel, "log-level", config.LogLevelError, "Log level written to stderr")
	flags.BoolVar(&cmdContext.noExport, "no-export", false, "Do not print generated key material")

	registerKeyCommands(rootCmd, cmdContext)
	registerCipherCommands(rootCmd, cmdContext)
	registerDigestCommands(rootCmd, cmdContext)

	return rootCmd, cmdContext
}

// Engine returns the engine, opening the key store on first call.
func (c *CommandContext) Engine(cmd *cobra.Command) (*app.CryptoEngine, error) {
	if c.engine != nil {
		return c.engine, nil
	}

	log := logger.NewConsoleLoggerTo(c.logLevel, cmd.ErrOrStderr())

	settings := config.KeyStoreSettings{
		Type:        c.storeType,
		RedisAddr:   c.redisAddr,
		RedisPrefix: c.redisPrefix,
	}
	if c.storeType == config.SqliteDbType {
		settings.DSN = c.dsn
	}

	store, err := persistence.NewKeyStore(cmd.Context(), settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open key store: %w", err)
	}

	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}
	rsaProcessor, err := cryptography.NewRSAProcessor(log)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}
	hashProcessor, err := cryptography.NewHashProcessor(log)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to create hash processor: %w", err)
	}

	engineSettings := &config.EngineSettings{ExportKeyMaterial: !c.noExport}
	engine, err := app.NewCryptoEngine(store, aesProcessor, rsaProcessor, hashProcessor, engineSettings, log)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to create crypto engine: %w", err)
	}

	c.store = store
	c.engine = engine
	return engine, nil
}

// Close releases the key store if one was opened.
func (c *CommandContext) Close() error {
	if c.store == nil {
		return nil
	}
	err := c.store.Close()
	c.store = nil
	c.engine = nil
	return err
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
