// Package crypto defines the core contracts and constants for textbook RSA
// operations: key pair generation from randomly sampled primes, per-character
// encryption/decryption via modular exponentiation, and key file persistence.
package crypto
