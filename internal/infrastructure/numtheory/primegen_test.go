//go:build unit
// +build unit

package numtheory

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrimeRounds = 5

// zeroReader always reads zero bytes, so every drawn candidate is the even
// value 2^(bits-1) and the search can never succeed.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestGeneratePrime(t *testing.T) {
	t.Run("ExactBitWidth", func(t *testing.T) {
		for _, bits := range []int{8, 16, 32, 64} {
			prime, err := GeneratePrime(bits, testPrimeRounds, rand.Reader, 10000)
			require.NoError(t, err)
			assert.Equal(t, bits, prime.BitLen(), "requested %d bits", bits)

			isPrime, err := IsProbablyPrime(prime, 10, rand.Reader)
			require.NoError(t, err)
			assert.True(t, isPrime)
		}
	})

	t.Run("TinyWidths", func(t *testing.T) {
		// 2-bit candidates are 2 and 3, both prime.
		prime, err := GeneratePrime(2, testPrimeRounds, rand.Reader, 100)
		require.NoError(t, err)
		assert.Equal(t, 2, prime.BitLen())
	})

	t.Run("IndependentDraws", func(t *testing.T) {
		first, err := GeneratePrime(64, testPrimeRounds, rand.Reader, 10000)
		require.NoError(t, err)
		second, err := GeneratePrime(64, testPrimeRounds, rand.Reader, 10000)
		require.NoError(t, err)

		// Collisions at 64 bits would indicate a broken random source.
		assert.NotEqual(t, 0, first.Cmp(second))
	})

	t.Run("AttemptBudgetExhaustion", func(t *testing.T) {
		_, err := GeneratePrime(16, testPrimeRounds, zeroReader{}, 50)
		assert.ErrorIs(t, err, ErrGenerationTimeout)
	})

	t.Run("InvalidBitWidth", func(t *testing.T) {
		for _, bits := range []int{-1, 0, 1} {
			_, err := GeneratePrime(bits, testPrimeRounds, rand.Reader, 100)
			assert.Error(t, err)
		}
	})

	t.Run("InvalidAttemptBudget", func(t *testing.T) {
		_, err := GeneratePrime(16, testPrimeRounds, rand.Reader, 0)
		assert.Error(t, err)
	})
}

func TestRandomWithTopBit(t *testing.T) {
	for i := 0; i < 50; i++ {
		candidate, err := randomWithTopBit(32, rand.Reader)
		require.NoError(t, err)
		assert.Equal(t, 32, candidate.BitLen())
	}

	// All-zero entropy still yields the forced top bit.
	candidate, err := randomWithTopBit(8, zeroReader{})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(128), candidate)
}
