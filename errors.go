package hex

import (
	"errors"
	"fmt"
)

var (
	// ErrOddLength is returned when decode input contains an odd number of
	// characters, making nibble pairing impossible. It is reported before any
	// character-level validation takes place.
	ErrOddLength = errors.New("hex: odd length hex string")

	// ErrInvalidStringLength is returned when a caller-provided buffer does
	// not match the length implied by the other side of the conversion: twice
	// the input for encode targets, half the input for decode targets.
	ErrInvalidStringLength = errors.New("hex: invalid string length")
)

// InvalidByteError reports an input byte that is not a hex digit, along with
// its 0-based position in the original input. When multiple bytes are bad,
// the leftmost one is reported.
type InvalidByteError struct {
	Byte  byte
	Index int
}

func (e InvalidByteError) Error() string {
	return fmt.Sprintf("hex: invalid byte %q at index %d", e.Byte, e.Index)
}
