package wavrw

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"
)

// FixedString is a text field stored in a fixed number of bytes on the
// wire: UTF-8 text, a zero terminator when shorter than the field, then
// padding up to the field width.
//
// Some writers leave junk from a previous longer value after the
// terminator. Decoding ignores everything past the first zero byte, and
// the junk is dropped on re-encode.
type FixedString struct {
	width int
	text  string
}

// NewFixedString returns a FixedString holding text in a width byte field.
// The text must fit: its UTF-8 encoding may be at most width bytes.
func NewFixedString(width int, text string) (FixedString, error) {
	if len(text) > width {
		return FixedString{}, fmt.Errorf("fixed string too long: %d bytes in a %d byte field", len(text), width)
	}

	if !utf8.ValidString(text) {
		return FixedString{}, fmt.Errorf("fixed string is not valid UTF-8")
	}

	return FixedString{width: width, text: text}, nil
}

// readFixedString reads exactly width bytes from r and decodes the text
// before the first zero byte. Text that is not valid UTF-8 is an error.
func readFixedString(r io.Reader, width int) (FixedString, error) {
	buf := make([]byte, width)
	if _, err := io.ReadFull(r, buf); err != nil {
		return FixedString{}, err
	}

	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}

	if !utf8.Valid(buf) {
		return FixedString{}, fmt.Errorf("fixed string is not valid UTF-8: %q", buf)
	}

	return FixedString{width: width, text: string(buf)}, nil
}

func (fs FixedString) String() string { return fs.text }

// Width returns the on-wire field size in bytes.
func (fs FixedString) Width() int { return fs.width }

// padTo returns the wire form zero padded to exactly width bytes. A zero
// value FixedString adopts the caller's width; any other width must match,
// so a mismatched field can never shift the layout of the bytes after it.
func (fs FixedString) padTo(width int) ([]byte, error) {
	if fs.width != 0 && fs.width != width {
		return nil, fmt.Errorf("fixed string field is %d bytes wide, layout needs %d", fs.width, width)
	}

	if len(fs.text) > width {
		return nil, fmt.Errorf("fixed string too long: %d bytes in a %d byte field", len(fs.text), width)
	}

	out := make([]byte, width)
	copy(out, fs.text)

	return out, nil
}
