package wavrw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// CIDCset identifies the character set information chunk. Very rare.
var CIDCset = FourCC{'C', 'S', 'E', 'T'}

// Country codes from the 1991 RIFF specification.
var countryNames = map[uint16]string{
	0x0:   "None",
	0x1:   "United States of America",
	0x2:   "Canada",
	0x3:   "Latin America",
	0x30:  "Greece",
	0x31:  "Netherlands",
	0x32:  "Belgium",
	0x33:  "France",
	0x34:  "Spain",
	0x39:  "Italy",
	0x41:  "Switzerland",
	0x43:  "Austria",
	0x44:  "United Kingdom",
	0x45:  "Denmark",
	0x46:  "Sweden",
	0x47:  "Norway",
	0x49:  "West Germany",
	0x52:  "Mexico",
	0x55:  "Brazil",
	0x61:  "Australia",
	0x64:  "New Zealand",
	0x81:  "Japan",
	0x82:  "Korea",
	0x86:  "People's Republic of China",
	0x88:  "Taiwan",
	0x90:  "Turkey",
	0x351: "Portugal",
	0x352: "Luxembourg",
	0x354: "Iceland",
	0x358: "Finland",
}

type languageDialect struct {
	language uint16
	dialect  uint16
}

// Language and dialect codes from the 1991 RIFF specification.
var languageNames = map[languageDialect][2]string{
	{0, 0}:   {"None", ""},
	{1, 1}:   {"Arabic", ""},
	{2, 1}:   {"Bulgarian", ""},
	{3, 1}:   {"Catalan", ""},
	{4, 1}:   {"Chinese", "Traditional"},
	{4, 2}:   {"Chinese", "Simplified"},
	{5, 1}:   {"Czech", ""},
	{6, 1}:   {"Danish", ""},
	{7, 1}:   {"German", ""},
	{7, 2}:   {"German", "Swiss"},
	{8, 1}:   {"Greek", ""},
	{9, 1}:   {"English", "US"},
	{9, 2}:   {"English", "UK"},
	{10, 1}:  {"Spanish", ""},
	{10, 2}:  {"Spanish", "Mexican"},
	{11, 1}:  {"Finnish", ""},
	{12, 1}:  {"French", ""},
	{12, 2}:  {"French", "Belgian"},
	{12, 3}:  {"French", "Canadian"},
	{12, 4}:  {"French", "Swiss"},
	{13, 1}:  {"Hebrew", ""},
}

func countryString(code uint16) string {
	if name, ok := countryNames[code]; ok {
		return fmt.Sprintf("%s(%d)", name, code)
	}

	return fmt.Sprintf("Unknown (0x%x)", code)
}

func languageStrings(language, dialect uint16) (string, string) {
	if names, ok := languageNames[languageDialect{language, dialect}]; ok {
		return names[0], names[1]
	}

	return "Unknown", "Unknown"
}

// CsetChunk declares the code page, country and language of the file's
// text elements. When absent, readers assume ISO 8859/1, USA, US English.
type CsetChunk struct {
	chunkInfo
	CodePage    uint16
	CountryCode uint16
	Language    uint16
	Dialect     uint16
}

func decodeCsetChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	c := &CsetChunk{}

	fields := []any{&c.CodePage, &c.CountryCode, &c.Language, &c.Dialect}
	for _, f := range fields {
		if err := cr.ReadLE(f); err != nil {
			return nil, fmt.Errorf("failed to read character set field: %w", err)
		}
	}

	return c, nil
}

func (c *CsetChunk) Summary() string {
	language, dialect := languageStrings(c.Language, c.Dialect)

	return fmt.Sprintf("code_page: (%d), %s, %s(%d), %s(%d)",
		c.CodePage, countryString(c.CountryCode), language, c.Language, dialect, c.Dialect)
}

func (c *CsetChunk) Items() []Item {
	language, dialect := languageStrings(c.Language, c.Dialect)

	return []Item{
		{"code_page", fmt.Sprintf("%d", c.CodePage)},
		{"country_code", countryString(c.CountryCode)},
		{"language", fmt.Sprintf("%s(%d)", language, c.Language)},
		{"dialect", fmt.Sprintf("%s(%d)", dialect, c.Dialect)},
	}
}

func (c *CsetChunk) Encode(w io.Writer) error {
	var buf bytes.Buffer

	fields := []any{c.CodePage, c.CountryCode, c.Language, c.Dialect}
	for _, f := range fields {
		if err := binary.Write(&buf, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("failed to encode character set field: %w", err)
		}
	}

	return writeChunk(w, CIDCset, buf.Bytes(), c.extra)
}
