// Package app wires the textbook RSA processor into session-scoped services
// consumed by the CLI.
package app

import (
	"errors"
	"fmt"

	"github.com/Mykola-Nikolayev/RSA-algo/internal/domain/crypto"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/domain/keys"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/pkg/logger"
)

// ErrNoKeyPair is returned when an encryption operation is requested before
// any key pair has been generated in the session. It is a precondition
// violation reported to the user, not a crash.
var ErrNoKeyPair = errors.New("no key pair generated yet")

// RSASessionService holds the key pair generated during an interactive
// session and dispatches encryption operations to the processor. Generating
// again replaces the previous pair; nothing is persisted.
type RSASessionService struct {
	processor crypto.RSAProcessor
	logger    logger.Logger
	current   *keys.KeyPair
}

// NewRSASessionService creates a session service around the given processor.
func NewRSASessionService(processor crypto.RSAProcessor, logger logger.Logger) (*RSASessionService, error) {
	if processor == nil {
		return nil, errors.New("processor cannot be nil")
	}
	return &RSASessionService{
		processor: processor,
		logger:    logger,
	}, nil
}

// GenerateKeys creates a fresh key pair for the session, replacing any
// previous one.
func (s *RSASessionService) GenerateKeys(keySize int) (*keys.KeyPair, error) {
	pair, err := s.processor.GenerateKeys(keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session key pair: %w", err)
	}

	if s.current != nil {
		s.logger.Info("Replacing session key pair ", s.current.ID)
	}
	s.current = pair
	return pair, nil
}

// CurrentKeyPair returns the session key pair, or nil when none has been
// generated.
func (s *RSASessionService) CurrentKeyPair() *keys.KeyPair {
	return s.current
}

// Encrypt encrypts message with the session public key.
func (s *RSASessionService) Encrypt(message string) (keys.Ciphertext, error) {
	if s.current == nil {
		return nil, ErrNoKeyPair
	}
	return s.processor.Encrypt(message, s.current.Public)
}

// Decrypt decrypts ciphertext with the session private key.
func (s *RSASessionService) Decrypt(ciphertext keys.Ciphertext) (string, error) {
	if s.current == nil {
		return "", ErrNoKeyPair
	}
	return s.processor.Decrypt(ciphertext, s.current.Private)
}
