// Package hex converts byte sequences to their hexadecimal textual
// representation and back. Encoding always produces exactly two characters
// per byte, most significant nibble first, with no separators or prefix.
// Decoding accepts upper and lower case digits, even mixed within a single
// string, and reports malformed input as error values.
//
// All functions are pure and allocation-behavior is explicit: the ToSlice
// forms write into caller-provided buffers, the Append forms grow an existing
// slice, and the plain forms allocate exactly what they return.
package hex

import (
	"github.com/indigo-web/hex/internal/hexconv"
	"github.com/indigo-web/utils/uf"
)

// EncodedLen returns the length of the hex encoding of n source bytes.
func EncodedLen(n int) int {
	return n * 2
}

// DecodedLen returns the number of bytes n hex characters decode into.
func DecodedLen(n int) int {
	return n / 2
}

// Encode returns the lowercase hex encoding of src. The resulting string is
// always exactly twice as long as src.
func Encode(src []byte) string {
	buff := make([]byte, EncodedLen(len(src)))
	encode(buff, src, &hexconv.Lower)

	return uf.B2S(buff)
}

// EncodeUpper returns the uppercase hex encoding of src.
func EncodeUpper(src []byte) string {
	buff := make([]byte, EncodedLen(len(src)))
	encode(buff, src, &hexconv.Upper)

	return uf.B2S(buff)
}

// EncodeToSlice encodes src as lowercase hex into dst, which must be exactly
// twice as long as src, otherwise ErrInvalidStringLength is returned. The
// returned string is a view over dst: every byte written is a provably-ASCII
// hex digit, so no re-validation of the buffer is needed.
func EncodeToSlice(src, dst []byte) (string, error) {
	if len(dst) != EncodedLen(len(src)) {
		return "", ErrInvalidStringLength
	}

	encode(dst, src, &hexconv.Lower)

	return uf.B2S(dst), nil
}

// EncodeToSliceUpper is EncodeToSlice using uppercase digits.
func EncodeToSliceUpper(src, dst []byte) (string, error) {
	if len(dst) != EncodedLen(len(src)) {
		return "", ErrInvalidStringLength
	}

	encode(dst, src, &hexconv.Upper)

	return uf.B2S(dst), nil
}

// AppendEncode appends the lowercase hex encoding of src to dst and returns
// the extended slice, reusing its capacity when possible.
func AppendEncode(dst, src []byte) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, EncodedLen(len(src)))...)
	encode(dst[n:], src, &hexconv.Lower)

	return dst
}

// AppendEncodeUpper appends the uppercase hex encoding of src to dst.
func AppendEncodeUpper(dst, src []byte) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, EncodedLen(len(src)))...)
	encode(dst[n:], src, &hexconv.Upper)

	return dst
}

func encode(dst, src []byte, table *[16]byte) {
	for i, b := range src {
		dst[i*2] = table[b>>4]
		dst[i*2+1] = table[b&0x0f]
	}
}

// Decode decodes hex input into a freshly allocated byte slice. Input length
// must be even (ErrOddLength otherwise), and every character must be a hex
// digit of either case (InvalidByteError otherwise).
func Decode(src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, ErrOddLength
	}

	dst := make([]byte, DecodedLen(len(src)))
	if err := DecodeToSlice(src, dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecodeToSlice decodes hex input into dst, which must be exactly half as
// long as src. The odd-length check precedes the buffer length check, which
// precedes character validation. An output byte is written only after both of
// its digits proved valid; decoding stops at the first bad character, leaving
// the rest of dst untouched.
func DecodeToSlice(src, dst []byte) error {
	if len(src)%2 != 0 {
		return ErrOddLength
	}

	if len(dst) != DecodedLen(len(src)) {
		return ErrInvalidStringLength
	}

	for i := 0; i < len(src); i += 2 {
		high := hexconv.Nibble(src[i])
		if high == hexconv.Invalid {
			return InvalidByteError{Byte: src[i], Index: i}
		}

		low := hexconv.Nibble(src[i+1])
		if low == hexconv.Invalid {
			return InvalidByteError{Byte: src[i+1], Index: i + 1}
		}

		dst[i/2] = high<<4 | low
	}

	return nil
}

// AppendDecode appends the decoded bytes of src to dst and returns the
// extended slice. On malformed input dst is returned at its original length.
func AppendDecode(dst, src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return dst, ErrOddLength
	}

	n := len(dst)
	dst = append(dst, make([]byte, DecodedLen(len(src)))...)
	if err := DecodeToSlice(src, dst[n:]); err != nil {
		return dst[:n], err
	}

	return dst, nil
}
