package numtheory

import (
	"errors"
	"math/big"
)

var (
	// ErrInvalidModulus is returned when the modulus is nil, negative, zero or one.
	ErrInvalidModulus = errors.New("modulus must be greater than 1")

	// ErrInvalidExponent is returned when the exponent is nil or negative.
	ErrInvalidExponent = errors.New("exponent must be non-negative")
)

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// ModExpStep is a snapshot of the square-and-multiply loop state taken after
// one iteration: the accumulated result, the squared base and the remaining
// (already shifted) exponent.
type ModExpStep struct {
	Accumulator *big.Int
	Base        *big.Int
	Exponent    *big.Int
}

// ModExp computes base^exponent mod modulus using binary (square-and-multiply)
// exponentiation. The result is always in [0, modulus). The inputs are not
// mutated.
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	return modExp(base, exponent, modulus, nil)
}

// ModExpSteps computes the same value as ModExp and additionally returns the
// intermediate loop states in execution order, one per iteration. It exists
// for the step-by-step explanations the CLI prints; the algorithm is the one
// ModExp runs.
func ModExpSteps(base, exponent, modulus *big.Int) (*big.Int, []ModExpStep, error) {
	var steps []ModExpStep
	result, err := modExp(base, exponent, modulus, func(step ModExpStep) {
		steps = append(steps, step)
	})
	if err != nil {
		return nil, nil, err
	}
	return result, steps, nil
}

func modExp(base, exponent, modulus *big.Int, trace func(ModExpStep)) (*big.Int, error) {
	if modulus == nil || modulus.Cmp(bigOne) <= 0 {
		return nil, ErrInvalidModulus
	}
	if exponent == nil || exponent.Sign() < 0 {
		return nil, ErrInvalidExponent
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exponent)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
		e.Rsh(e, 1)

		if trace != nil {
			trace(ModExpStep{
				Accumulator: new(big.Int).Set(result),
				Base:        new(big.Int).Set(b),
				Exponent:    new(big.Int).Set(e),
			})
		}
	}

	return result, nil
}
