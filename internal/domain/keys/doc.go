// Package keys defines the textbook RSA key material and ciphertext types:
// public/private exponent-modulus pairs over arbitrary-precision integers and
// the ordered per-character ciphertext sequence with its comma-separated
// decimal external representation.
package keys
