package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mykola-Nikolayev/RSA-algo/internal/app"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/domain/keys"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/infrastructure/cryptography"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/pkg/config"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/pkg/logger"
)

// MenuCommandHandler runs the interactive RSA operations menu. Generated keys
// live only for the duration of the session.
type MenuCommandHandler struct {
	session *app.RSASessionService
	logger  logger.Logger
	input   io.Reader
	output  io.Writer
	keySize int
}

// NewMenuCommandHandler initializes a new MenuCommandHandler bound to stdin
// and stdout.
func NewMenuCommandHandler() (*MenuCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	settings := config.NewDefaultKeyGenSettings()

	rsaProcessor, err := cryptography.NewRSAProcessor(settings, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	session, err := app.NewRSASessionService(rsaProcessor, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	return &MenuCommandHandler{
		session: session,
		logger:  loggerInstance,
		input:   os.Stdin,
		output:  os.Stdout,
		keySize: settings.KeySize,
	}, nil
}

// MenuCmd runs the interactive loop until the user exits or input ends.
func (commandHandler *MenuCommandHandler) MenuCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: ", err)
		return
	}
	commandHandler.keySize = keySize

	commandHandler.runLoop()
}

func (commandHandler *MenuCommandHandler) runLoop() {
	scanner := bufio.NewScanner(commandHandler.input)

	for {
		fmt.Fprintln(commandHandler.output)
		fmt.Fprintln(commandHandler.output, "RSA Operations Menu")
		fmt.Fprintln(commandHandler.output, "1. Generate RSA Keys")
		fmt.Fprintln(commandHandler.output, "2. Encrypt a Message")
		fmt.Fprintln(commandHandler.output, "3. Decrypt a Message")
		fmt.Fprintln(commandHandler.output, "4. Exit")
		fmt.Fprint(commandHandler.output, "Enter your choice: ")

		choice, ok := commandHandler.readLine(scanner)
		if !ok {
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			commandHandler.handleGenerateKeys()
		case "2":
			commandHandler.handleEncrypt(scanner)
		case "3":
			commandHandler.handleDecrypt(scanner)
		case "4":
			fmt.Fprintln(commandHandler.output, "Exiting RSA Operations. Goodbye!")
			return
		default:
			fmt.Fprintln(commandHandler.output, "Invalid choice. Please try again.")
		}
	}
}

func (commandHandler *MenuCommandHandler) handleGenerateKeys() {
	fmt.Fprintln(commandHandler.output, "\nGenerating RSA Keys...")

	pair, err := commandHandler.session.GenerateKeys(commandHandler.keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintf(commandHandler.output, "Public Key:  (e=%v, n=%v)\n", pair.Public.E, pair.Public.N)
	fmt.Fprintf(commandHandler.output, "Private Key: (d=%v, n=%v)\n", pair.Private.D, pair.Private.N)
}

func (commandHandler *MenuCommandHandler) handleEncrypt(scanner *bufio.Scanner) {
	fmt.Fprint(commandHandler.output, "Enter the message to encrypt: ")
	message, ok := commandHandler.readLine(scanner)
	if !ok {
		return
	}

	ciphertext, err := commandHandler.session.Encrypt(message)
	if errors.Is(err, app.ErrNoKeyPair) {
		fmt.Fprintln(commandHandler.output, "\nPlease generate keys first (Option 1).")
		return
	}
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintf(commandHandler.output, "Encrypted Message: %s\n", ciphertext)
}

func (commandHandler *MenuCommandHandler) handleDecrypt(scanner *bufio.Scanner) {
	fmt.Fprint(commandHandler.output, "Enter the encrypted message (comma-separated numbers): ")
	line, ok := commandHandler.readLine(scanner)
	if !ok {
		return
	}

	ciphertext, err := keys.ParseCiphertext(line)
	if err != nil {
		fmt.Fprintf(commandHandler.output, "Invalid ciphertext: %v\n", err)
		return
	}

	message, err := commandHandler.session.Decrypt(ciphertext)
	if errors.Is(err, app.ErrNoKeyPair) {
		fmt.Fprintln(commandHandler.output, "\nPlease generate keys first (Option 1).")
		return
	}
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintf(commandHandler.output, "Decrypted Message: %s\n", message)
}

func (commandHandler *MenuCommandHandler) readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}

// InitMenuCommand registers the interactive menu command
func InitMenuCommand(rootCmd *cobra.Command) error {
	handler, err := NewMenuCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create menu command handler: %w", err)
	}

	var menuCmd = &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive RSA operations menu",
		Run:   handler.MenuCmd,
	}
	menuCmd.Flags().IntP("key-size", "", handler.keySize, "Modulus width in bits for generated keys")
	rootCmd.AddCommand(menuCmd)

	return nil
}
