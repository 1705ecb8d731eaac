package hex

import (
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

type checksum struct {
	Sum Bytes `json:"sum"`
}

func TestBytesJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(checksum{Sum: Bytes("kiwi")})
		require.NoError(t, err)
		require.Equal(t, `{"sum":"6b697769"}`, string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var c checksum
		err := json.Unmarshal([]byte(`{"sum":"48656c6c6f20776f726c6421"}`), &c)
		require.NoError(t, err)
		require.Equal(t, Bytes("Hello world!"), c.Sum)
	})

	t.Run("round trip", func(t *testing.T) {
		orig := checksum{Sum: Bytes{0x00, 0xff, 0x10, 0x0f}}
		data, err := json.Marshal(orig)
		require.NoError(t, err)

		var c checksum
		require.NoError(t, json.Unmarshal(data, &c))
		require.Equal(t, orig, c)
	})

	t.Run("malformed hex", func(t *testing.T) {
		var c checksum
		err := json.Unmarshal([]byte(`{"sum":"66ag"}`), &c)
		require.ErrorContains(t, err, "invalid byte")
	})

	t.Run("non-string value", func(t *testing.T) {
		var c checksum
		err := json.Unmarshal([]byte(`{"sum":42}`), &c)
		require.Error(t, err)
	})
}

func TestBytesText(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		text, err := Bytes("kiwi").MarshalText()
		require.NoError(t, err)
		require.Equal(t, "6b697769", string(text))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var b Bytes
		require.NoError(t, b.UnmarshalText([]byte("6B697769")))
		require.Equal(t, Bytes("kiwi"), b)

		require.ErrorIs(t, b.UnmarshalText([]byte("abc")), ErrOddLength)
	})

	t.Run("string", func(t *testing.T) {
		require.Equal(t, "6b697769", Bytes("kiwi").String())
		require.Equal(t, "", Bytes(nil).String())
	})
}
