package textio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestNewCodec(t *testing.T) {
	c, err := NewCodec("UTF-8")
	require.NoError(t, err)
	assert.Equal(t, "utf-8", c.Name())

	_, err = NewCodec("no-such-encoding")
	assert.Error(t, err)
}

func TestReadUTF8(t *testing.T) {
	c, err := NewCodec("utf-8")
	require.NoError(t, err)

	text, err := c.Read(bytes.NewReader([]byte("こんにちは\nworld\n")))
	require.NoError(t, err)
	assert.Equal(t, "こんにちは\nworld\n", text)
}

func TestReadRejectsInvalidUTF8(t *testing.T) {
	c, err := NewCodec("utf-8")
	require.NoError(t, err)

	_, err = c.Read(bytes.NewReader([]byte{'o', 'k', 0xff, 0xfe}))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestRoundTripPreservesBytes(t *testing.T) {
	c, err := NewCodec("utf-8")
	require.NoError(t, err)

	original := []byte("\xef\xbb\xbfline one\r\nline two\n\ttabbed — ünïcödé\n")
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, original, 0644))

	f, err := os.Open(path)
	require.NoError(t, err)
	text, err := c.Read(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, c.Write(&out, text))
	assert.Equal(t, original, out.Bytes())
}

func TestLegacyEncodingRoundTrip(t *testing.T) {
	c, err := NewCodec("shift_jis")
	require.NoError(t, err)
	assert.Equal(t, "shift_jis", c.Name())

	var out bytes.Buffer
	require.NoError(t, c.Write(&out, "テキスト"))
	assert.NotEqual(t, []byte("テキスト"), out.Bytes())

	text, err := c.Read(&out)
	require.NoError(t, err)
	assert.Equal(t, "テキスト", text)
}

func TestWriteUnrepresentable(t *testing.T) {
	c, err := NewCodec("iso-8859-2")
	require.NoError(t, err)

	err = c.Write(&bytes.Buffer{}, "emoji 😀")
	assert.ErrorIs(t, err, ErrEncode)
}

func TestWriteFailure(t *testing.T) {
	c, err := NewCodec("utf-8")
	require.NoError(t, err)

	err = c.Write(failingWriter{}, "text")
	assert.EqualError(t, err, "write: disk full")
}
