package hex

import (
	"iter"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func collect(seq iter.Seq[byte]) string {
	var b strings.Builder

	for char := range seq {
		b.WriteByte(char)
	}

	return b.String()
}

func TestChars(t *testing.T) {
	t.Run("matches Encode", func(t *testing.T) {
		for _, size := range []int{0, 1, 7, 256} {
			data := []byte(uniuri.NewLen(size))
			require.Equal(t, Encode(data), collect(Chars(data)))
			require.Equal(t, EncodeUpper(data), collect(CharsUpper(data)))
		}
	})

	t.Run("two characters per byte", func(t *testing.T) {
		var n int
		for range Chars([]byte("kiwi")) {
			n++
		}

		require.Equal(t, 8, n)
	})

	t.Run("restartable", func(t *testing.T) {
		seq := Chars([]byte("Hello world!"))
		first := collect(seq)
		second := collect(seq)
		require.Equal(t, "48656c6c6f20776f726c6421", first)
		require.Equal(t, first, second)
	})

	t.Run("early break mid-byte", func(t *testing.T) {
		// stop right after a high digit, with its low digit still pending
		var got []byte
		for char := range Chars([]byte("Hello world!")) {
			got = append(got, char)
			if len(got) == 3 {
				break
			}
		}

		require.Equal(t, "486", string(got))
	})

	t.Run("empty input", func(t *testing.T) {
		require.Equal(t, "", collect(Chars(nil)))
	})
}
