package keys

import (
	"fmt"
	"math/big"
	"strings"
)

// Ciphertext is an ordered sequence of per-character RSA values. Order is the
// decoding order; the length equals the plaintext character count.
type Ciphertext []*big.Int

// String renders the external representation: decimal values joined by commas.
func (c Ciphertext) String() string {
	parts := make([]string, len(c))
	for i, value := range c {
		parts[i] = value.String()
	}
	return strings.Join(parts, ",")
}

// ParseCiphertext parses the comma-separated decimal representation back into
// a Ciphertext. Any sequence of non-negative integers is accepted, regardless
// of how it was produced; surrounding whitespace per element is tolerated.
// An empty or blank input yields an empty Ciphertext.
func ParseCiphertext(s string) (Ciphertext, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Ciphertext{}, nil
	}

	parts := strings.Split(trimmed, ",")
	ciphertext := make(Ciphertext, 0, len(parts))
	for _, part := range parts {
		value, ok := new(big.Int).SetString(strings.TrimSpace(part), 10)
		if !ok {
			return nil, fmt.Errorf("invalid ciphertext element %q", strings.TrimSpace(part))
		}
		if value.Sign() < 0 {
			return nil, fmt.Errorf("ciphertext element %q must be non-negative", strings.TrimSpace(part))
		}
		ciphertext = append(ciphertext, value)
	}

	return ciphertext, nil
}
