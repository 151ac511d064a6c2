package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/Mykola-Nikolayev/RSA-algo/internal/domain/crypto"
)

// KeySizeValidation validates a requested textbook RSA modulus width: it must
// leave room for two non-degenerate primes after the p/q split.
func KeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Int()
	return keySize >= crypto.MinKeySize
}
