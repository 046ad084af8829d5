// cmd/crypto-engine-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/cybervault/crypto-engine/internal/api/rest/v1"
	"github.com/cybervault/crypto-engine/internal/app"
	"github.com/cybervault/crypto-engine/internal/infrastructure/cryptography"
	"github.com/cybervault/crypto-engine/internal/infrastructure/persistence"
	"github.com/cybervault/crypto-engine/internal/pkg/config"
	"github.com/cybervault/crypto-engine/internal/pkg/logger"

	"github.com/awnumar/memguard"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Purge enclaves and locked buffers on every return path
	defer memguard.Purge()

	// A missing .env file is fine; the environment may already be set
	_ = godotenv.Load()

	restConfig, err := config.InitializeRestConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	store, engine, err := initializeEngine(context.Background(), restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("Failed to close key store: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, engine, log)
}

// initializeEngine opens the configured key store and builds the engine over it
func initializeEngine(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (persistence.ClosableKeyStore, *app.CryptoEngine, error) {
	store, err := persistence.NewKeyStore(ctx, cfg.KeyStore, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create key store: %w", err)
	}
	log.Info("Key store initialized: ", cfg.KeyStore.Type)

	engine, err := newEngine(store, &cfg.Engine, log)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return store, engine, nil
}

func newEngine(store persistence.ClosableKeyStore, settings *config.EngineSettings, log logger.Logger) (*app.CryptoEngine, error) {
	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	hashProcessor, err := cryptography.NewHashProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create hash processor: %w", err)
	}
	log.Info("Cryptographic processors initialized successfully")

	engine, err := app.NewCryptoEngine(store, aesProcessor, rsaProcessor, hashProcessor, settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto engine: %w", err)
	}
	return engine, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, engine *app.CryptoEngine, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	v1.SetupRoutes(r, engine, engine, engine, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
