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

func TestIsProbablyPrime(t *testing.T) {
	t.Run("KnownPrimes", func(t *testing.T) {
		primes := []int64{2, 3, 5, 7, 97, 7919, 2147483647, 2305843009213693951}
		for _, p := range primes {
			prime, err := IsProbablyPrime(big.NewInt(p), 5, rand.Reader)
			require.NoError(t, err)
			assert.True(t, prime, "%d should be prime", p)
		}
	})

	t.Run("KnownComposites", func(t *testing.T) {
		composites := []int64{4, 9, 100, 561, 1105, 341550071728321}
		for _, c := range composites {
			prime, err := IsProbablyPrime(big.NewInt(c), 5, rand.Reader)
			require.NoError(t, err)
			assert.False(t, prime, "%d should be composite", c)
		}
	})

	// 561 = 3 * 11 * 17 is a Carmichael number: it fools the plain Fermat
	// test for every coprime witness, but not Miller-Rabin.
	t.Run("CarmichaelNumber", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			prime, err := IsProbablyPrime(big.NewInt(561), 5, rand.Reader)
			require.NoError(t, err)
			assert.False(t, prime)
		}
	})

	t.Run("TrivialCases", func(t *testing.T) {
		tests := []struct {
			n        int64
			expected bool
		}{
			{-7, false},
			{0, false},
			{1, false},
			{2, true},
			{3, true},
			{4, false},
		}
		for _, tt := range tests {
			prime, err := IsProbablyPrime(big.NewInt(tt.n), 5, rand.Reader)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, prime, "n=%d", tt.n)
		}
	})

	t.Run("NilIsNotPrime", func(t *testing.T) {
		prime, err := IsProbablyPrime(nil, 5, rand.Reader)
		require.NoError(t, err)
		assert.False(t, prime)
	})

	t.Run("InvalidRounds", func(t *testing.T) {
		_, err := IsProbablyPrime(big.NewInt(97), 0, rand.Reader)
		assert.Error(t, err)
	})

	t.Run("LargePrime", func(t *testing.T) {
		// 2^127 - 1, a Mersenne prime well beyond the int64 range.
		mersenne := new(big.Int).Lsh(big.NewInt(1), 127)
		mersenne.Sub(mersenne, big.NewInt(1))

		prime, err := IsProbablyPrime(mersenne, 10, rand.Reader)
		require.NoError(t, err)
		assert.True(t, prime)
	})
}
