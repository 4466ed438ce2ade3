package separator

import (
	"crypto/rand"
	"fmt"
	"io"
)

// alphabet is the 64-symbol set used for random separators. Every symbol is
// visible ASCII, so any generated token passes Validate, and 64 symbols
// carry exactly 6 bits each.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// DefaultRandomLength is the token length used when Random is called with a
// non-positive n. 16 symbols carry 96 bits of entropy.
const DefaultRandomLength = 16

// Random returns a randomly generated separator of n symbols drawn from the
// platform's cryptographically secure source. Random tokens are the
// streaming-mode alternative to Select: when records cannot be materialized
// for verification, a token of 10 or more symbols (60+ bits) is accepted as
// vanishingly unlikely to collide rather than proven collision free.
func Random(n int) ([]byte, error) {
	return RandomFrom(rand.Reader, n)
}

// RandomFrom is Random with an explicit entropy source.
func RandomFrom(src io.Reader, n int) ([]byte, error) {
	if n <= 0 {
		n = DefaultRandomLength
	}
	token := make([]byte, n)
	if _, err := io.ReadFull(src, token); err != nil {
		return nil, fmt.Errorf("separator: reading random source: %w", err)
	}
	for i, b := range token {
		token[i] = alphabet[b&0x3f]
	}
	return token, nil
}
