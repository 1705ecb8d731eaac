package hex

import (
	"iter"

	"github.com/indigo-web/hex/internal/hexconv"
)

// chars walks src one hex character at a time. After emitting the high digit
// of a byte, the low digit is held back, so every step produces exactly one
// character without any intermediate buffer.
type chars struct {
	src      []byte
	table    *[16]byte
	pending  byte
	buffered bool
}

func (c *chars) next() (char byte, ok bool) {
	if c.buffered {
		c.buffered = false
		return c.pending, true
	}

	if len(c.src) == 0 {
		return 0, false
	}

	b := c.src[0]
	c.src = c.src[1:]
	c.pending, c.buffered = c.table[b&0x0f], true

	return c.table[b>>4], true
}

// Chars returns an iterator over the lowercase hex characters of src, two per
// input byte. The sequence is restartable: every range over it walks src from
// the beginning. It allows collecting the encoding into an arbitrary target
// (strings.Builder, []byte, etc.) without materializing it first.
func Chars(src []byte) iter.Seq[byte] {
	return charSeq(src, &hexconv.Lower)
}

// CharsUpper is Chars using uppercase digits.
func CharsUpper(src []byte) iter.Seq[byte] {
	return charSeq(src, &hexconv.Upper)
}

func charSeq(src []byte, table *[16]byte) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		c := chars{src: src, table: table}

		for char, ok := c.next(); ok; char, ok = c.next() {
			if !yield(char) {
				return
			}
		}
	}
}
