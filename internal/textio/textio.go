// Package textio reads and writes whole text files under one fixed
// character encoding.
package textio

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

var (
	// ErrDecode is returned when file bytes are not valid in the codec's encoding.
	ErrDecode = errors.New("text is not valid in the configured encoding")
	// ErrEncode is returned when the text cannot be represented in the codec's encoding.
	ErrEncode = errors.New("text cannot be represented in the configured encoding")
)

// Codec converts between file bytes and document text.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// NewCodec resolves an encoding by its WHATWG label, e.g. "utf-8" or "shift_jis".
func NewCodec(label string) (*Codec, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(label))
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = label
	}
	return &Codec{name: name, enc: enc}, nil
}

// Name returns the canonical name of the encoding.
func (c *Codec) Name() string {
	return c.name
}

func (c *Codec) isUTF8() bool {
	return c.name == "utf-8"
}

// Read decodes everything from r.
func (c *Codec) Read(r io.Reader) (string, error) {
	var t transform.Transformer = encoding.UTF8Validator
	if !c.isUTF8() {
		t = c.enc.NewDecoder()
	}

	data, err := io.ReadAll(transform.NewReader(r, t))
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return "", fmt.Errorf("read %s: %w", c.name, ErrDecode)
		}
		return "", fmt.Errorf("read: %w", err)
	}
	return string(data), nil
}

// Write encodes text and writes all of it to w.
func (c *Codec) Write(w io.Writer, text string) error {
	var data []byte
	if c.isUTF8() {
		data = []byte(text)
	} else {
		encoded, _, err := transform.String(c.enc.NewEncoder(), text)
		if err != nil {
			return fmt.Errorf("write %s: %w", c.name, ErrEncode)
		}
		data = []byte(encoded)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
