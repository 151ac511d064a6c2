// Package main is the entry point for the rsa-cli application.
// It initializes the root command and registers the key, cipher, explanation
// and interactive menu sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mykola-Nikolayev/RSA-algo/cmd/rsa-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-cli",
		Short: "Textbook RSA teaching CLI",
		Long: `rsa-cli demonstrates textbook RSA step by step.
It generates key pairs from randomly sampled primes, encrypts and decrypts
messages character by character with modular exponentiation, and can print
the intermediate steps of the underlying algorithms.

This is unpadded textbook RSA for teaching purposes only - never use it to
protect real data.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitCipherCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize cipher commands: %w", err)
	}

	if err := commands.InitExplainCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize explain commands: %w", err)
	}

	if err := commands.InitMenuCommand(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize menu command: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
