package hex

import "errors"

var errNotAString = errors.New("hex: value is not a quoted string")

// Bytes is a byte sequence that serializes itself as a lowercase hex string.
// It implements the text and JSON marshaler pairs, so serialization
// frameworks honoring them pick the hex form up automatically.
type Bytes []byte

func (b Bytes) String() string {
	return Encode(b)
}

// MarshalText implements encoding.TextMarshaler.
func (b Bytes) MarshalText() ([]byte, error) {
	return AppendEncode(make([]byte, 0, EncodedLen(len(b))), b), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded bytes
// replace the previous contents.
func (b *Bytes) UnmarshalText(text []byte) error {
	decoded, err := Decode(text)
	if err != nil {
		return err
	}

	*b = decoded

	return nil
}

// MarshalJSON implements json.Marshaler.
func (b Bytes) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, EncodedLen(len(b))+2)
	out = append(out, '"')
	out = AppendEncode(out, b)

	return append(out, '"'), nil
}

// UnmarshalJSON implements json.Unmarshaler. Only JSON strings are accepted;
// null leaves the value untouched by convention.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errNotAString
	}

	return b.UnmarshalText(data[1 : len(data)-1])
}
