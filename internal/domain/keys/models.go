package keys

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/go-playground/validator/v10"
)

// PublicKey is the shared half of a textbook RSA key pair: the public
// exponent e and the modulus n.
type PublicKey struct {
	E *big.Int `validate:"required"`
	N *big.Int `validate:"required"`
}

// PrivateKey is the secret half of a textbook RSA key pair: the private
// exponent d and the modulus n.
type PrivateKey struct {
	D *big.Int `validate:"required"`
	N *big.Int `validate:"required"`
}

// KeyPair ties both halves of a generated key pair together under a unique ID.
// Both halves always share the same modulus; the primes behind it are used
// only during generation and are never stored.
type KeyPair struct {
	ID      string      `validate:"required,uuid4"`
	Public  *PublicKey  `validate:"required"`
	Private *PrivateKey `validate:"required"`
}

// Validate checks structural completeness and the shared-modulus invariant.
func (k *KeyPair) Validate() error {
	validate := validator.New()

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	if k.Public.N.Cmp(k.Private.N) != 0 {
		return fmt.Errorf("public and private moduli differ")
	}

	return nil
}
