// Package numtheory implements the number-theoretic primitives behind textbook RSA:
// binary modular exponentiation, the Miller-Rabin probabilistic primality test,
// random prime generation and the extended Euclidean algorithm.
//
// All routines operate on arbitrary-precision integers (math/big) and take their
// randomness as an explicit io.Reader so callers can inject a deterministic source.
package numtheory
