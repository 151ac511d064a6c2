package crypto

import (
	"github.com/Mykola-Nikolayev/RSA-algo/internal/domain/keys"
)

// RSAProcessor handles textbook RSA key generation and per-character
// encryption/decryption over arbitrary-precision integers.
//
// NOTE: this is unpadded textbook RSA for pedagogy. Each character is
// encrypted independently, which leaks repeated plaintext and enables
// frequency analysis. Do not use it to protect real data.
type RSAProcessor interface {
	// GenerateKeys generates a textbook RSA key pair whose modulus is the
	// product of two keySize/2-bit primes. Widths below MinKeySize fail with
	// ErrInvalidKeySize.
	GenerateKeys(keySize int) (*keys.KeyPair, error)

	// Encrypt encrypts each character of message independently with the
	// public key, preserving input order. Correct decryption requires every
	// code point to be below the modulus; larger values silently alias.
	Encrypt(message string, publicKey *keys.PublicKey) (keys.Ciphertext, error)

	// Decrypt decrypts each ciphertext element with the private key. Values
	// outside the valid code point range, or in the UTF-16 surrogate range,
	// decode to PlaceholderRune instead of failing the operation.
	Decrypt(ciphertext keys.Ciphertext, privateKey *keys.PrivateKey) (string, error)

	// SavePublicKeyToFile saves the public key to a PEM-encoded file.
	SavePublicKeyToFile(publicKey *keys.PublicKey, filename string) error

	// SavePrivateKeyToFile saves the private key to a PEM-encoded file.
	SavePrivateKeyToFile(privateKey *keys.PrivateKey, filename string) error

	// ReadPublicKey reads a public key from a PEM-encoded file.
	ReadPublicKey(publicKeyPath string) (*keys.PublicKey, error)

	// ReadPrivateKey reads a private key from a PEM-encoded file.
	ReadPrivateKey(privateKeyPath string) (*keys.PrivateKey, error)
}
