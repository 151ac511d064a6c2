package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mykola-Nikolayev/RSA-algo/internal/domain/crypto"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/domain/keys"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/infrastructure/cryptography"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/pkg/config"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/pkg/logger"
)

// CipherCommandHandler encapsulates logic for one-shot encryption and
// decryption over key files.
type CipherCommandHandler struct {
	rsaProcessor crypto.RSAProcessor
	logger       logger.Logger
}

// NewCipherCommandHandler initializes a new CipherCommandHandler with logging
// and an RSA processor.
func NewCipherCommandHandler() (*CipherCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(config.NewDefaultKeyGenSettings(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &CipherCommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// EncryptCmd encrypts a message character by character with a public key file
// and prints the comma-separated ciphertext.
func (commandHandler *CipherCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		commandHandler.logger.Error("invalid message flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}

	publicKey, err := commandHandler.rsaProcessor.ReadPublicKey(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ciphertext, err := commandHandler.rsaProcessor.Encrypt(message, publicKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("Encrypted Message: %s\n", ciphertext)
}

// DecryptCmd decrypts a comma-separated ciphertext with a private key file
// and prints the recovered message.
func (commandHandler *CipherCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	ciphertextFlag, err := cmd.Flags().GetString("ciphertext")
	if err != nil {
		commandHandler.logger.Error("invalid ciphertext flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}

	ciphertext, err := keys.ParseCiphertext(ciphertextFlag)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKey, err := commandHandler.rsaProcessor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	message, err := commandHandler.rsaProcessor.Decrypt(ciphertext, privateKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("Decrypted Message: %s\n", message)
}

// InitCipherCommands registers encryption and decryption commands
func InitCipherCommands(rootCmd *cobra.Command) error {
	handler, err := NewCipherCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create cipher command handler: %w", err)
	}

	var encryptCmd = &cobra.Command{
		Use:   "encrypt-rsa",
		Short: "Encrypt a message using textbook RSA",
		Run:   handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("message", "", "", "Message to encrypt")
	encryptCmd.Flags().StringP("public-key", "", "", "Path to the public key PEM file")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt-rsa",
		Short: "Decrypt a comma-separated ciphertext using textbook RSA",
		Run:   handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("ciphertext", "", "", "Ciphertext as comma-separated decimal numbers")
	decryptCmd.Flags().StringP("private-key", "", "", "Path to the private key PEM file")
	rootCmd.AddCommand(decryptCmd)

	return nil
}
