package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Mykola-Nikolayev/RSA-algo/internal/domain/crypto"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/pkg/validators"
)

// KeyGenSettings holds configuration settings for textbook RSA key generation:
// the default modulus width, the Miller-Rabin round count and the attempt
// budgets that bound the rejection-sampling loops.
type KeyGenSettings struct {
	KeySize             int `mapstructure:"key_size" validate:"required,textbook_keysize"`
	MillerRabinRounds   int `mapstructure:"miller_rabin_rounds" validate:"required,min=1"`
	MaxPrimeAttempts    int `mapstructure:"max_prime_attempts" validate:"required,min=1"`
	MaxExponentAttempts int `mapstructure:"max_exponent_attempts" validate:"required,min=1"`
}

// NewDefaultKeyGenSettings returns settings with the package defaults.
func NewDefaultKeyGenSettings() *KeyGenSettings {
	return &KeyGenSettings{
		KeySize:             crypto.DefaultKeySize,
		MillerRabinRounds:   crypto.DefaultMillerRabinRounds,
		MaxPrimeAttempts:    crypto.DefaultMaxPrimeAttempts,
		MaxExponentAttempts: crypto.DefaultMaxExponentAttempts,
	}
}

// Validate checks that all fields in KeyGenSettings are valid
func (s *KeyGenSettings) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("textbook_keysize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register key size validation: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyGenSettings: %w", err)
	}

	return nil
}
