package cryptography

import (
	"crypto/rand"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/google/uuid"

	cryptoDomain "github.com/Mykola-Nikolayev/RSA-algo/internal/domain/crypto"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/domain/keys"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/infrastructure/numtheory"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/pkg/config"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/pkg/logger"
)

const (
	publicKeyPEMType  = "TEXTBOOK RSA PUBLIC KEY"
	privateKeyPEMType = "TEXTBOOK RSA PRIVATE KEY"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger   logger.Logger
	random   io.Reader
	settings *config.KeyGenSettings
}

// NewRSAProcessor creates a textbook RSA processor drawing randomness from
// the process-wide crypto/rand source.
func NewRSAProcessor(settings *config.KeyGenSettings, logger logger.Logger) (cryptoDomain.RSAProcessor, error) {
	return NewRSAProcessorWithRandom(settings, logger, rand.Reader)
}

// NewRSAProcessorWithRandom creates a processor with an injected randomness
// source, so tests can supply a deterministic or seeded reader.
func NewRSAProcessorWithRandom(settings *config.KeyGenSettings, logger logger.Logger, random io.Reader) (cryptoDomain.RSAProcessor, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid key generation settings: %w", err)
	}
	return &rsaProcessor{
		logger:   logger,
		random:   random,
		settings: settings,
	}, nil
}

// GenerateKeys generates a textbook RSA key pair whose modulus is the product
// of two keySize/2-bit primes. The primes are discarded after use; only the
// exponents and modulus survive in the returned pair.
func (r *rsaProcessor) GenerateKeys(keySize int) (*keys.KeyPair, error) {
	if keySize < cryptoDomain.MinKeySize {
		return nil, fmt.Errorf("%w: %d bits", cryptoDomain.ErrInvalidKeySize, keySize)
	}

	primeBits := keySize / 2

	p, err := numtheory.GeneratePrime(primeBits, r.settings.MillerRabinRounds, r.random, r.settings.MaxPrimeAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate first prime: %w", err)
	}

	q, err := numtheory.GeneratePrime(primeBits, r.settings.MillerRabinRounds, r.random, r.settings.MaxPrimeAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate second prime: %w", err)
	}

	// phi = (p-1)(q-1) is Euler's totient only for distinct primes, so equal
	// draws are re-sampled. At small teaching widths this actually happens.
	for p.Cmp(q) == 0 {
		q, err = numtheory.GeneratePrime(primeBits, r.settings.MillerRabinRounds, r.random, r.settings.MaxPrimeAttempts)
		if err != nil {
			return nil, fmt.Errorf("failed to re-sample second prime: %w", err)
		}
	}

	n := new(big.Int).Mul(p, q)

	pMinusOne := new(big.Int).Sub(p, bigOne)
	qMinusOne := new(big.Int).Sub(q, bigOne)
	phi := new(big.Int).Mul(pMinusOne, qMinusOne)

	e, d, err := r.drawExponents(phi)
	if err != nil {
		return nil, err
	}

	pair := &keys.KeyPair{
		ID:      uuid.New().String(),
		Public:  &keys.PublicKey{E: e, N: n},
		Private: &keys.PrivateKey{D: d, N: n},
	}
	if err := pair.Validate(); err != nil {
		return nil, fmt.Errorf("generated key pair is invalid: %w", err)
	}

	r.logger.Info("Generated textbook RSA key pair with ", n.BitLen(), "-bit modulus")
	return pair, nil
}

// drawExponents selects a public exponent e uniformly from [2, phi-1] until
// gcd(e, phi) == 1, then derives the private exponent d as the modular
// inverse of e via the extended Euclidean algorithm, normalized into [0, phi).
func (r *rsaProcessor) drawExponents(phi *big.Int) (*big.Int, *big.Int, error) {
	span := new(big.Int).Sub(phi, bigTwo)
	if span.Sign() <= 0 {
		return nil, nil, fmt.Errorf("%w: totient %v admits no public exponent", cryptoDomain.ErrInvalidKeySize, phi)
	}

	for attempt := 0; attempt < r.settings.MaxExponentAttempts; attempt++ {
		e, err := rand.Int(r.random, span)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to draw public exponent: %w", err)
		}
		e.Add(e, bigTwo)

		g, x, _ := numtheory.ExtGCD(e, phi)
		if g.Cmp(bigOne) != 0 {
			continue
		}

		// The Bezout coefficient may be negative; Mod brings it into [0, phi).
		d := new(big.Int).Mod(x, phi)
		return e, d, nil
	}

	return nil, nil, fmt.Errorf("no public exponent coprime to the totient after %d attempts: %w",
		r.settings.MaxExponentAttempts, numtheory.ErrGenerationTimeout)
}

// Encrypt encrypts each character of message independently with the public
// key, in input order. Code points at or above the modulus silently alias
// modulo n; that is the textbook correctness boundary, not an error.
func (r *rsaProcessor) Encrypt(message string, publicKey *keys.PublicKey) (keys.Ciphertext, error) {
	if publicKey == nil || publicKey.E == nil || publicKey.N == nil {
		return nil, errors.New("public key cannot be nil")
	}

	ciphertext := make(keys.Ciphertext, 0, len(message))
	for _, char := range message {
		value, err := numtheory.ModExp(big.NewInt(int64(char)), publicKey.E, publicKey.N)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt character: %w", err)
		}
		ciphertext = append(ciphertext, value)
	}

	r.logger.Info("RSA encryption succeeded for ", len(ciphertext), " characters")
	return ciphertext, nil
}

// Decrypt decrypts each ciphertext element with the private key. Elements
// that decode outside the valid code point range, or into the UTF-16
// surrogate range, become PlaceholderRune, so a single corrupted element
// never aborts the rest of the message.
func (r *rsaProcessor) Decrypt(ciphertext keys.Ciphertext, privateKey *keys.PrivateKey) (string, error) {
	if privateKey == nil || privateKey.D == nil || privateKey.N == nil {
		return "", errors.New("private key cannot be nil")
	}

	var message strings.Builder
	for _, element := range ciphertext {
		value, err := numtheory.ModExp(element, privateKey.D, privateKey.N)
		if err != nil {
			return "", fmt.Errorf("failed to decrypt element: %w", err)
		}

		// Surrogates are not encodable in UTF-8; WriteRune would silently
		// substitute U+FFFD, so they take the explicit placeholder instead.
		if value.IsInt64() && value.Int64() <= cryptoDomain.MaxCodePoint &&
			!utf16.IsSurrogate(rune(value.Int64())) {
			message.WriteRune(rune(value.Int64()))
		} else {
			message.WriteRune(cryptoDomain.PlaceholderRune)
		}
	}

	r.logger.Info("RSA decryption succeeded for ", len(ciphertext), " elements")
	return message.String(), nil
}

// publicKeyEnvelope is the JSON body of a public key PEM block. Exponent and
// modulus are decimal strings; textbook keys have no PKCS#1 form.
type publicKeyEnvelope struct {
	E string `json:"e"`
	N string `json:"n"`
}

// privateKeyEnvelope is the JSON body of a private key PEM block.
type privateKeyEnvelope struct {
	D string `json:"d"`
	N string `json:"n"`
}

// SavePublicKeyToFile saves the public key to a PEM-encoded file.
func (r *rsaProcessor) SavePublicKeyToFile(publicKey *keys.PublicKey, filename string) error {
	if publicKey == nil || publicKey.E == nil || publicKey.N == nil {
		return errors.New("public key cannot be nil")
	}
	envelope := publicKeyEnvelope{E: publicKey.E.String(), N: publicKey.N.String()}
	return r.saveKeyFile(envelope, publicKeyPEMType, filename)
}

// SavePrivateKeyToFile saves the private key to a PEM-encoded file.
func (r *rsaProcessor) SavePrivateKeyToFile(privateKey *keys.PrivateKey, filename string) error {
	if privateKey == nil || privateKey.D == nil || privateKey.N == nil {
		return errors.New("private key cannot be nil")
	}
	envelope := privateKeyEnvelope{D: privateKey.D.String(), N: privateKey.N.String()}
	return r.saveKeyFile(envelope, privateKeyPEMType, filename)
}

func (r *rsaProcessor) saveKeyFile(envelope interface{}, pemType, filename string) error {
	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to encode key: %w", err)
	}

	pemData := pem.EncodeToMemory(&pem.Block{Type: pemType, Bytes: data})
	if err := os.WriteFile(filename, pemData, 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	r.logger.Info("Saved key to ", filename)
	return nil
}

// ReadPublicKey reads a public key from a PEM-encoded file.
func (r *rsaProcessor) ReadPublicKey(publicKeyPath string) (*keys.PublicKey, error) {
	var envelope publicKeyEnvelope
	if err := r.readKeyFile(publicKeyPath, publicKeyPEMType, &envelope); err != nil {
		return nil, err
	}

	e, err := parseKeyComponent(envelope.E, "public exponent")
	if err != nil {
		return nil, err
	}
	n, err := parseKeyComponent(envelope.N, "modulus")
	if err != nil {
		return nil, err
	}

	return &keys.PublicKey{E: e, N: n}, nil
}

// ReadPrivateKey reads a private key from a PEM-encoded file.
func (r *rsaProcessor) ReadPrivateKey(privateKeyPath string) (*keys.PrivateKey, error) {
	var envelope privateKeyEnvelope
	if err := r.readKeyFile(privateKeyPath, privateKeyPEMType, &envelope); err != nil {
		return nil, err
	}

	d, err := parseKeyComponent(envelope.D, "private exponent")
	if err != nil {
		return nil, err
	}
	n, err := parseKeyComponent(envelope.N, "modulus")
	if err != nil {
		return nil, err
	}

	return &keys.PrivateKey{D: d, N: n}, nil
}

func (r *rsaProcessor) readKeyFile(path, pemType string, envelope interface{}) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read key file: %w", err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return fmt.Errorf("no PEM block found in %s", path)
	}
	if block.Type != pemType {
		return fmt.Errorf("unexpected PEM block type %q, want %q", block.Type, pemType)
	}

	if err := json.Unmarshal(block.Bytes, envelope); err != nil {
		return fmt.Errorf("failed to decode key: %w", err)
	}
	return nil
}

func parseKeyComponent(value, name string) (*big.Int, error) {
	component, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("invalid %s %q", name, value)
	}
	if component.Sign() <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %q", name, value)
	}
	return component, nil
}
