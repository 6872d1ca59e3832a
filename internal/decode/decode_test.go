package decode

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/oleg578/smallcsv"
)

func TestNewReader(t *testing.T) {
	t.Parallel()

	const text = "a,\"b\U0001F60A\"\r\nc\n"

	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().String(text)
	require.NoError(t, err)
	utf16be, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().String(text)
	require.NoError(t, err)
	latin1, err := charmap.ISO8859_1.NewEncoder().String("café,x\n")
	require.NoError(t, err)

	tests := []struct {
		name     string
		encoding string
		input    string
		want     [][]string
	}{
		{name: "default", encoding: "", input: text, want: [][]string{{"a", "b\U0001F60A"}, {"c"}}},
		{name: "utf8", encoding: "UTF-8", input: text, want: [][]string{{"a", "b\U0001F60A"}, {"c"}}},
		{name: "utf16le", encoding: "utf-16le", input: utf16le, want: [][]string{{"a", "b\U0001F60A"}, {"c"}}},
		{name: "utf16be", encoding: "utf-16be", input: utf16be, want: [][]string{{"a", "b\U0001F60A"}, {"c"}}},
		{name: "latin1", encoding: "iso-8859-1", input: latin1, want: [][]string{{"café", "x"}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, err := NewReader(tc.encoding, strings.NewReader(tc.input))
			require.NoError(t, err)

			rows, err := smallcsv.NewReader(r).ReadAll()
			require.NoError(t, err)
			assert.Equal(t, tc.want, rows)
		})
	}
}

func TestNewReaderUnsupported(t *testing.T) {
	t.Parallel()

	_, err := NewReader("ebcdic", bytes.NewReader(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported encoding "ebcdic"`)
}

func TestNewReaderPassThrough(t *testing.T) {
	t.Parallel()

	src := strings.NewReader("x")
	r, err := NewReader("utf-8", src)
	require.NoError(t, err)
	assert.Same(t, io.Reader(src), r)
}
