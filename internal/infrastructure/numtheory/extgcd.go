package numtheory

import (
	"fmt"
	"math/big"
)

// ExtGCD computes g = gcd(a, b) together with Bezout coefficients x, y
// satisfying a*x + b*y = g, using the classic recursive extended Euclidean
// algorithm. The recursion depth is O(log min(a, b)). The inputs are not
// mutated.
func ExtGCD(a, b *big.Int) (g, x, y *big.Int) {
	return extGCD(a, b, nil)
}

// ExtGCDSteps computes the same values as ExtGCD and additionally returns one
// textual record per recursion frame, in unwinding (bottom-up) order, showing
// the coefficient pair computed at that level.
func ExtGCDSteps(a, b *big.Int) (g, x, y *big.Int, steps []string) {
	g, x, y = extGCD(a, b, &steps)
	return g, x, y, steps
}

func extGCD(a, b *big.Int, trace *[]string) (*big.Int, *big.Int, *big.Int) {
	if b.Sign() == 0 {
		if trace != nil {
			*trace = append(*trace, fmt.Sprintf("base case: gcd(%v, 0) = %v", a, a))
		}
		return new(big.Int).Set(a), big.NewInt(1), big.NewInt(0)
	}

	quotient, remainder := new(big.Int).QuoRem(a, b, new(big.Int))
	g, x1, y1 := extGCD(b, remainder, trace)

	x := new(big.Int).Set(y1)
	y := new(big.Int).Sub(x1, new(big.Int).Mul(quotient, y1))

	if trace != nil {
		*trace = append(*trace, fmt.Sprintf("gcd(%v, %v): x = %v, y = %v", a, b, x, y))
	}
	return g, x, y
}
