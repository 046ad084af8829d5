// Package main is the entry point for the crypto-engine-cli application.
// It builds the root command with key, cipher and digest sub-commands and executes it.
package main

import (
	"fmt"
	"os"

	"github.com/cybervault/crypto-engine/cmd/crypto-engine-cli/internal/commands"

	"github.com/awnumar/memguard"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	defer memguard.Purge()

	// A missing .env file is fine; flags and the environment still apply
	_ = godotenv.Load()

	rootCmd, cmdContext := commands.NewRootCommand()
	defer func() {
		_ = cmdContext.Close()
	}()

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}
