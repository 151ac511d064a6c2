package crypto

import "errors"

// ErrInvalidKeySize is returned when the requested modulus width would leave
// degenerate prime sizes after the p/q split.
var ErrInvalidKeySize = errors.New("key size leaves degenerate prime sizes")
