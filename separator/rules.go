package separator

import (
	"errors"
	"fmt"
)

// Separator tokens are limited to the visible ASCII range. Newlines can
// never appear in a token, which is what makes line-oriented boundary
// matching unambiguous.
const (
	minByte = 0x21
	maxByte = 0x7E
)

// ErrEmpty is returned when a candidate separator token has no bytes.
var ErrEmpty = errors.New("separator: token is empty")

// InvalidByteError reports a token byte outside the visible ASCII range.
type InvalidByteError struct {
	Byte     byte
	Position int
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("separator: byte 0x%02x at position %d is outside the visible range 0x21..0x7e", e.Byte, e.Position)
}

// IsValid reports whether token is a legal separator: nonempty, with every
// byte in the inclusive range 0x21..0x7E. Whitespace and control bytes are
// never legal. No other constraint applies; a token may look like markup or
// anything else.
func IsValid(token []byte) bool {
	return Validate(token) == nil
}

// Validate checks token against the separator rules, returning ErrEmpty or
// an *InvalidByteError naming the first offending byte.
func Validate(token []byte) error {
	if len(token) == 0 {
		return ErrEmpty
	}
	for i, b := range token {
		if b < minByte || b > maxByte {
			return &InvalidByteError{Byte: b, Position: i}
		}
	}
	return nil
}
