package wavrw

import (
	"strings"
	"unicode/utf8"
)

// FourCC is a four character code identifying the kind of a RIFF chunk.
//
// It is stored as raw bytes and compared byte for byte. The wire order is
// the order the bytes appear in the file.
type FourCC [4]byte

// String renders the code as text for diagnostics. Bytes that are not
// valid UTF-8 are replaced rather than dropped, so the result always has
// four runes worth of content.
func (fc FourCC) String() string {
	if utf8.Valid(fc[:]) {
		return string(fc[:])
	}

	return strings.ToValidUTF8(string(fc[:]), string(utf8.RuneError))
}
