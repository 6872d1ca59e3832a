package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w, err := New(FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, w.WriteRow([]string{"a", "b<c>", "x\"y"}))
	require.NoError(t, w.WriteRow([]string{""}))
	require.NoError(t, w.Flush())

	assert.Equal(t, "[\"a\",\"b<c>\",\"x\\\"y\"]\n[\"\"]\n", buf.String())
}

func TestTableWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w, err := New(FormatTable, &buf)
	require.NoError(t, err)

	require.NoError(t, w.WriteRow([]string{"alpha", "beta"}))
	require.NoError(t, w.WriteRow([]string{"gamma"}))
	assert.Empty(t, buf.String(), "table renders on Flush")
	require.NoError(t, w.Flush())

	out := buf.String()
	for _, cell := range []string{"alpha", "beta", "gamma"} {
		assert.Contains(t, out, cell)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Greater(t, len(lines), 3)
}

func TestTableWriterEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewTable(&buf).Flush())
	assert.Empty(t, buf.String())
}

func TestNewUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := New("xml", &bytes.Buffer{})
	assert.EqualError(t, err, "unknown output format xml")
}
