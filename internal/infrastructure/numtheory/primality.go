package numtheory

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// IsProbablyPrime runs the Miller-Rabin primality test on n with the given
// number of independent witness rounds, drawing witnesses from random.
// A false result is definite; a true result is probabilistic with a
// false-positive rate bounded by 4^-rounds.
func IsProbablyPrime(n *big.Int, rounds int, random io.Reader) (bool, error) {
	if rounds < 1 {
		return false, fmt.Errorf("rounds must be at least 1, got %d", rounds)
	}
	if n == nil || n.Cmp(bigOne) <= 0 {
		return false, nil
	}
	if n.Cmp(bigTwo) == 0 || n.Cmp(bigThree) == 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	nMinusOne := new(big.Int).Sub(n, bigOne)

	// Write n-1 = 2^r * d with d odd.
	d := new(big.Int).Set(nMinusOne)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	// Witnesses are drawn uniformly from [2, n-2], a range of n-3 values.
	witnessSpan := new(big.Int).Sub(n, bigThree)

	for i := 0; i < rounds; i++ {
		a, err := rand.Int(random, witnessSpan)
		if err != nil {
			return false, fmt.Errorf("failed to draw witness: %w", err)
		}
		a.Add(a, bigTwo)

		x, err := ModExp(a, d, n)
		if err != nil {
			return false, err
		}
		if x.Cmp(bigOne) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}

		composite := true
		for j := 0; j < r-1; j++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinusOne) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false, nil
		}
	}

	return true, nil
}
