package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Mykola-Nikolayev/RSA-algo/internal/domain/crypto"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/infrastructure/cryptography"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/pkg/config"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/pkg/logger"
)

// KeyCommandHandler encapsulates logic for handling key generation via CLI.
type KeyCommandHandler struct {
	rsaProcessor crypto.RSAProcessor
	logger       logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler with logging and
// an RSA processor.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(config.NewDefaultKeyGenSettings(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &KeyCommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// GenerateKeysCmd generates a textbook RSA key pair and persists it in a
// selected directory, one PEM file per half, named by the pair's ID.
func (commandHandler *KeyCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: ", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: ", err)
		return
	}

	pair, err := commandHandler.rsaProcessor.GenerateKeys(keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("Public Key:  (e=%v, n=%v)\n", pair.Public.E, pair.Public.N)
	fmt.Printf("Private Key: (d=%v, n=%v)\n", pair.Private.D, pair.Private.N)

	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.pem", pair.ID))
	if err := commandHandler.rsaProcessor.SavePublicKeyToFile(pair.Public, publicKeyFilePath); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.pem", pair.ID))
	if err := commandHandler.rsaProcessor.SavePrivateKeyToFile(pair.Private, privateKeyFilePath); err != nil {
		commandHandler.logger.Error(err)
		return
	}
}

// InitKeyCommands registers key-related commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key command handler: %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-rsa-keys",
		Short: "Generate a textbook RSA key pair",
		Run:   handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("key-size", "", crypto.DefaultKeySize, "Modulus width in bits (split between two primes)")
	generateKeysCmd.Flags().StringP("key-dir", "", ".", "Directory to store the key pair PEM files")
	rootCmd.AddCommand(generateKeysCmd)

	return nil
}
