//go:build unit
// +build unit

package numtheory

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModExp(t *testing.T) {
	t.Run("KnownValues", func(t *testing.T) {
		tests := []struct {
			name                    string
			base, exponent, modulus int64
			expected                int64
		}{
			{"small cube", 2, 3, 5, 3},
			{"textbook encrypt", 65, 17, 3233, 2790},
			{"textbook decrypt", 2790, 2753, 3233, 65},
			{"base reduced first", 10, 1, 7, 3},
			{"base larger than modulus", 1000, 3, 7, 6},
			{"exponent one", 42, 1, 100, 42},
			{"result zero", 14, 2, 7, 0},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				result, err := ModExp(big.NewInt(tt.base), big.NewInt(tt.exponent), big.NewInt(tt.modulus))
				require.NoError(t, err)
				// Cmp, not Equal: a computed zero and big.NewInt(0) hold
				// different internal representations of the same value.
				assert.Equal(t, 0, result.Cmp(big.NewInt(tt.expected)))
			})
		}
	})

	t.Run("ZeroExponentIsOne", func(t *testing.T) {
		for _, base := range []int64{0, 1, 2, 17, 1000} {
			result, err := ModExp(big.NewInt(base), big.NewInt(0), big.NewInt(13))
			require.NoError(t, err)
			assert.Equal(t, big.NewInt(1), result)
		}
	})

	t.Run("MatchesReference", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(1))
		for i := 0; i < 200; i++ {
			base := big.NewInt(rnd.Int63n(1 << 20))
			exponent := big.NewInt(rnd.Int63n(1 << 10))
			modulus := big.NewInt(rnd.Int63n(1<<20) + 2)

			result, err := ModExp(base, exponent, modulus)
			require.NoError(t, err)

			expected := new(big.Int).Exp(base, exponent, modulus)
			assert.Equal(t, 0, result.Cmp(expected), "base=%v exponent=%v modulus=%v", base, exponent, modulus)
		}
	})

	t.Run("InputsNotMutated", func(t *testing.T) {
		base := big.NewInt(65)
		exponent := big.NewInt(17)
		modulus := big.NewInt(3233)

		_, err := ModExp(base, exponent, modulus)
		require.NoError(t, err)

		assert.Equal(t, big.NewInt(65), base)
		assert.Equal(t, big.NewInt(17), exponent)
		assert.Equal(t, big.NewInt(3233), modulus)
	})

	t.Run("InvalidModulus", func(t *testing.T) {
		for _, modulus := range []int64{1, 0, -5} {
			_, err := ModExp(big.NewInt(2), big.NewInt(3), big.NewInt(modulus))
			assert.ErrorIs(t, err, ErrInvalidModulus)
		}

		_, err := ModExp(big.NewInt(2), big.NewInt(3), nil)
		assert.ErrorIs(t, err, ErrInvalidModulus)
	})

	t.Run("InvalidExponent", func(t *testing.T) {
		_, err := ModExp(big.NewInt(2), big.NewInt(-1), big.NewInt(7))
		assert.ErrorIs(t, err, ErrInvalidExponent)

		_, err = ModExp(big.NewInt(2), nil, big.NewInt(7))
		assert.ErrorIs(t, err, ErrInvalidExponent)
	})
}

func TestModExpSteps(t *testing.T) {
	t.Run("TraceMatchesResult", func(t *testing.T) {
		result, steps, err := ModExpSteps(big.NewInt(65), big.NewInt(17), big.NewInt(3233))
		require.NoError(t, err)
		require.NotEmpty(t, steps)

		// One snapshot per bit of the exponent.
		assert.Len(t, steps, big.NewInt(17).BitLen())

		last := steps[len(steps)-1]
		assert.Equal(t, result, last.Accumulator)
		assert.Equal(t, 0, last.Exponent.Sign())
	})

	t.Run("ExponentShrinksEachStep", func(t *testing.T) {
		_, steps, err := ModExpSteps(big.NewInt(7), big.NewInt(1000), big.NewInt(9973))
		require.NoError(t, err)

		previous := big.NewInt(1000)
		for _, step := range steps {
			assert.True(t, step.Exponent.Cmp(previous) < 0)
			previous = step.Exponent
		}
	})

	t.Run("ZeroExponentHasNoSteps", func(t *testing.T) {
		result, steps, err := ModExpSteps(big.NewInt(5), big.NewInt(0), big.NewInt(7))
		require.NoError(t, err)
		assert.Empty(t, steps)
		assert.Equal(t, big.NewInt(1), result)
	})

	t.Run("InvalidInputs", func(t *testing.T) {
		_, _, err := ModExpSteps(big.NewInt(5), big.NewInt(3), big.NewInt(1))
		assert.ErrorIs(t, err, ErrInvalidModulus)
	})
}
