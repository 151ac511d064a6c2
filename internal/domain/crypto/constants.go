package crypto

// MaxCodePoint is the highest valid Unicode code point. Decrypted values above
// it cannot be mapped back to a character.
const MaxCodePoint = 0x10FFFF

// PlaceholderRune substitutes decrypted values that fall outside the valid
// code point range, so one corrupted element never aborts the whole operation.
const PlaceholderRune = '?'

// MinKeySize is the smallest modulus width (in bits) that still splits into
// two non-degenerate primes.
const MinKeySize = 4

// DefaultKeySize is the modulus width used when the caller does not choose one.
const DefaultKeySize = 512

// DefaultMillerRabinRounds bounds the false-positive rate of primality
// testing by 4^-rounds.
const DefaultMillerRabinRounds = 5

// DefaultMaxPrimeAttempts caps the prime rejection-sampling loop. The
// expected attempt count grows linearly with the bit width, so this budget
// leaves enormous headroom even for 1024-bit primes.
const DefaultMaxPrimeAttempts = 100000

// DefaultMaxExponentAttempts caps the public exponent search. Almost all
// draws are coprime to phi, so exhaustion indicates a broken random source.
const DefaultMaxExponentAttempts = 10000
