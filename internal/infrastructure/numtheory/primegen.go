package numtheory

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrGenerationTimeout is returned when a rejection-sampling loop exhausts
// its attempt budget without finding an acceptable value.
var ErrGenerationTimeout = errors.New("exceeded attempt budget during generation")

// GeneratePrime returns a probable prime with exactly bits significant bits,
// i.e. the top bit is always set. Candidates are drawn uniformly from random
// and tested with rounds Miller-Rabin rounds; after maxAttempts rejected
// candidates the search stops with ErrGenerationTimeout.
func GeneratePrime(bits, rounds int, random io.Reader, maxAttempts int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("prime bit width must be at least 2, got %d", bits)
	}
	if maxAttempts < 1 {
		return nil, fmt.Errorf("max attempts must be at least 1, got %d", maxAttempts)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate, err := randomWithTopBit(bits, random)
		if err != nil {
			return nil, err
		}

		prime, err := IsProbablyPrime(candidate, rounds, random)
		if err != nil {
			return nil, err
		}
		if prime {
			return candidate, nil
		}
	}

	return nil, fmt.Errorf("no %d-bit prime found after %d attempts: %w", bits, maxAttempts, ErrGenerationTimeout)
}

// randomWithTopBit draws a uniform bits-bit value with the highest bit forced,
// so the result always has exactly bits significant bits.
func randomWithTopBit(bits int, random io.Reader) (*big.Int, error) {
	limit := new(big.Int).Lsh(bigOne, uint(bits-1))
	candidate, err := rand.Int(random, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to draw prime candidate: %w", err)
	}
	return candidate.SetBit(candidate, bits-1, 1), nil
}
