package wavrw

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// CIDBext identifies the Broadcast Wave Format extension chunk (EBU 3285).
var CIDBext = FourCC{'b', 'e', 'x', 't'}

// BextChunk carries broadcast production metadata.
//
// The loudness fields were added in BWF version 2; for earlier versions
// they decode as zero. CodingHistory is the free text tail of the chunk
// with trailing zero bytes removed.
type BextChunk struct {
	chunkInfo
	Description          FixedString
	Originator           FixedString
	OriginatorReference  FixedString
	OriginationDate      FixedString
	OriginationTime      FixedString
	TimeReference        uint64
	Version              uint16
	UMID                 [64]byte
	LoudnessValue        int16
	LoudnessRange        int16
	MaxTruePeakLevel     int16
	MaxMomentaryLoudness int16
	MaxShortTermLoudness int16
	Reserved             [180]byte
	CodingHistory        string
}

func decodeBextChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	c := &BextChunk{}

	strFields := []struct {
		dst   *FixedString
		width int
		name  string
	}{
		{&c.Description, 256, "description"},
		{&c.Originator, 32, "originator"},
		{&c.OriginatorReference, 32, "originator_reference"},
		{&c.OriginationDate, 10, "origination_date"},
		{&c.OriginationTime, 8, "origination_time"},
	}
	for _, f := range strFields {
		fs, err := readFixedString(cr, f.width)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.name, err)
		}

		*f.dst = fs
	}

	fields := []any{
		&c.TimeReference,
		&c.Version,
		&c.UMID,
		&c.LoudnessValue,
		&c.LoudnessRange,
		&c.MaxTruePeakLevel,
		&c.MaxMomentaryLoudness,
		&c.MaxShortTermLoudness,
		&c.Reserved,
	}
	for _, f := range fields {
		if err := cr.ReadLE(f); err != nil {
			return nil, fmt.Errorf("failed to read broadcast extension field: %w", err)
		}
	}

	history, err := cr.rest()
	if err != nil {
		return nil, fmt.Errorf("failed to read coding history: %w", err)
	}

	history = bytes.TrimRight(history, "\x00")
	if !utf8.Valid(history) {
		return nil, fmt.Errorf("coding history is not valid UTF-8")
	}

	c.CodingHistory = string(history)

	return c, nil
}

func (c *BextChunk) Summary() string {
	return fmt.Sprintf("%s, %s, %s", c.OriginationDate, c.OriginationTime, c.Description)
}

func (c *BextChunk) Items() []Item {
	return []Item{
		{"description", c.Description.String()},
		{"originator", c.Originator.String()},
		{"originator_reference", c.OriginatorReference.String()},
		{"origination_date", c.OriginationDate.String()},
		{"origination_time", c.OriginationTime.String()},
		{"time_reference", fmt.Sprintf("%d", c.TimeReference)},
		{"version", fmt.Sprintf("%d", c.Version)},
		{"umid", "0x" + strings.ToUpper(hex.EncodeToString(c.UMID[:]))},
		{"loudness_value", fmt.Sprintf("%d", c.LoudnessValue)},
		{"loudness_range", fmt.Sprintf("%d", c.LoudnessRange)},
		{"max_true_peak_level", fmt.Sprintf("%d", c.MaxTruePeakLevel)},
		{"max_momentary_loudness", fmt.Sprintf("%d", c.MaxMomentaryLoudness)},
		{"max_short_term_loudness", fmt.Sprintf("%d", c.MaxShortTermLoudness)},
		{"coding_history", c.CodingHistory},
	}
}

func (c *BextChunk) Encode(w io.Writer) error {
	var buf bytes.Buffer

	strFields := []struct {
		fs    FixedString
		width int
		name  string
	}{
		{c.Description, 256, "description"},
		{c.Originator, 32, "originator"},
		{c.OriginatorReference, 32, "originator_reference"},
		{c.OriginationDate, 10, "origination_date"},
		{c.OriginationTime, 8, "origination_time"},
	}
	for _, f := range strFields {
		b, err := f.fs.padTo(f.width)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", f.name, err)
		}

		buf.Write(b)
	}

	fields := []any{
		c.TimeReference,
		c.Version,
		c.UMID,
		c.LoudnessValue,
		c.LoudnessRange,
		c.MaxTruePeakLevel,
		c.MaxMomentaryLoudness,
		c.MaxShortTermLoudness,
		c.Reserved,
	}
	for _, f := range fields {
		if err := binary.Write(&buf, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("failed to encode broadcast extension field: %w", err)
		}
	}

	buf.WriteString(c.CodingHistory)

	return writeChunk(w, CIDBext, buf.Bytes(), c.extra)
}
