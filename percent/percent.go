// Package percent decodes URI-style percent escapes on top of the shared hex
// digit table. It is a format adapter: everything outside %XY sequences
// passes through untouched.
package percent

import (
	"bytes"
	"errors"

	"github.com/indigo-web/hex"
	"github.com/indigo-web/hex/internal/hexconv"
)

// ErrTruncatedEscape is returned when the input ends in the middle of an
// escape sequence.
var ErrTruncatedEscape = errors.New("percent: truncated escape sequence")

// Decode translates %XY escapes in src into their byte values, appending the
// result to buff. A bad escape digit is reported as hex.InvalidByteError with
// its position in src. If src contains no escapes and buff is empty, src is
// returned as-is without copying.
func Decode(src, buff []byte) ([]byte, error) {
	offset := 0

	for i := bytes.IndexByte(src, '%'); i != -1; i = bytes.IndexByte(src, '%') {
		if i >= len(src)-2 {
			return nil, ErrTruncatedEscape
		}

		high := hexconv.Nibble(src[i+1])
		if high == hexconv.Invalid {
			return nil, hex.InvalidByteError{Byte: src[i+1], Index: offset + i + 1}
		}

		low := hexconv.Nibble(src[i+2])
		if low == hexconv.Invalid {
			return nil, hex.InvalidByteError{Byte: src[i+2], Index: offset + i + 2}
		}

		buff = append(buff, src[:i]...)
		buff = append(buff, high<<4|low)
		offset += i + 3
		src = src[i+3:]
	}

	if len(buff) == 0 {
		return src, nil
	}

	return append(buff, src...), nil
}
