package wavrw

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// CIDFmt identifies the format description chunk (WAVEFORMATEX).
var CIDFmt = FourCC{'f', 'm', 't', ' '}

// FormatTag is the WAVE format category of the audio samples.
type FormatTag uint16

const (
	FormatUnknown    FormatTag = 0x0000
	FormatPCM        FormatTag = 0x0001
	FormatADPCM      FormatTag = 0x0002
	FormatIEEEFloat  FormatTag = 0x0003
	FormatALaw       FormatTag = 0x0006
	FormatMuLaw      FormatTag = 0x0007
	FormatDTS        FormatTag = 0x0008
	FormatOkiADPCM   FormatTag = 0x0010
	FormatDVIADPCM   FormatTag = 0x0011
	FormatGSM610     FormatTag = 0x0031
	FormatMPEG       FormatTag = 0x0050
	FormatMPEGLayer3 FormatTag = 0x0055
	FormatDolbyAC3   FormatTag = 0x0092
	FormatWMAudio2   FormatTag = 0x0161
	FormatOpus       FormatTag = 0x704F
	FormatFLAC       FormatTag = 0xF1AC
	FormatExtensible FormatTag = 0xFFFE
)

var formatTagNames = map[FormatTag]string{
	FormatUnknown:    "WAVE_FORMAT_UNKNOWN",
	FormatPCM:        "WAVE_FORMAT_PCM",
	FormatADPCM:      "WAVE_FORMAT_ADPCM",
	FormatIEEEFloat:  "WAVE_FORMAT_IEEE_FLOAT",
	FormatALaw:       "WAVE_FORMAT_ALAW",
	FormatMuLaw:      "WAVE_FORMAT_MULAW",
	FormatDTS:        "WAVE_FORMAT_DTS",
	FormatOkiADPCM:   "WAVE_FORMAT_OKI_ADPCM",
	FormatDVIADPCM:   "WAVE_FORMAT_DVI_ADPCM",
	FormatGSM610:     "WAVE_FORMAT_GSM610",
	FormatMPEG:       "WAVE_FORMAT_MPEG",
	FormatMPEGLayer3: "WAVE_FORMAT_MPEGLAYER3",
	FormatDolbyAC3:   "WAVE_FORMAT_DOLBY_AC3_SPDIF",
	FormatWMAudio2:   "WAVE_FORMAT_WMAUDIO2",
	FormatOpus:       "WAVE_FORMAT_OPUS",
	FormatFLAC:       "WAVE_FORMAT_FLAC",
	FormatExtensible: "WAVE_FORMAT_EXTENSIBLE",
}

func (t FormatTag) String() string {
	if name, ok := formatTagNames[t]; ok {
		return name
	}

	return fmt.Sprintf("WAVE_FORMAT 0x%04X", uint16(t))
}

// FmtChunk is the format of the audio samples in the data chunk.
//
// The fixed 16 byte prefix is common to every format. Non-PCM formats
// append a 16 bit extension size and format specific extension bytes,
// which are kept raw here.
type FmtChunk struct {
	chunkInfo
	FormatTag      FormatTag
	Channels       uint16
	SamplesPerSec  uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
	ExtraSize      uint16
	Extension      []byte

	// extended records whether the ExtraSize field was present on the
	// wire, so 18 byte headers with a zero extension round trip.
	extended bool
}

func decodeFmtChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	c := &FmtChunk{}

	fields := []any{
		&c.FormatTag,
		&c.Channels,
		&c.SamplesPerSec,
		&c.AvgBytesPerSec,
		&c.BlockAlign,
		&c.BitsPerSample,
	}
	for _, f := range fields {
		if err := cr.ReadLE(f); err != nil {
			return nil, fmt.Errorf("failed to read format field: %w", err)
		}
	}

	if cr.Remaining() >= 2 {
		if err := cr.ReadLE(&c.ExtraSize); err != nil {
			return nil, fmt.Errorf("failed to read format extension size: %w", err)
		}

		c.extended = true

		ext, err := cr.rest()
		if err != nil {
			return nil, fmt.Errorf("failed to read format extension: %w", err)
		}

		c.Extension = ext
	}

	return c, nil
}

func (c *FmtChunk) Summary() string {
	return fmt.Sprintf("%s, %d chan, %d/%d",
		strings.TrimPrefix(c.FormatTag.String(), "WAVE_FORMAT_"),
		c.Channels, c.BitsPerSample, c.SamplesPerSec)
}

func (c *FmtChunk) Items() []Item {
	items := []Item{
		{"format_tag", c.FormatTag.String()},
		{"channels", fmt.Sprintf("%d", c.Channels)},
		{"samples_per_sec", fmt.Sprintf("%d", c.SamplesPerSec)},
		{"avg_bytes_per_sec", fmt.Sprintf("%d", c.AvgBytesPerSec)},
		{"block_align", fmt.Sprintf("%d", c.BlockAlign)},
		{"bits_per_sample", fmt.Sprintf("%d", c.BitsPerSample)},
	}

	if c.extended {
		items = append(items,
			Item{"extra_size", fmt.Sprintf("%d", c.ExtraSize)},
			Item{"extension", "0x" + strings.ToUpper(hex.EncodeToString(c.Extension))},
		)
	}

	return items
}

func (c *FmtChunk) Encode(w io.Writer) error {
	var buf bytes.Buffer

	fields := []any{
		c.FormatTag,
		c.Channels,
		c.SamplesPerSec,
		c.AvgBytesPerSec,
		c.BlockAlign,
		c.BitsPerSample,
	}
	for _, f := range fields {
		if err := binary.Write(&buf, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("failed to encode format field: %w", err)
		}
	}

	if c.extended || c.ExtraSize > 0 || len(c.Extension) > 0 {
		if err := binary.Write(&buf, binary.LittleEndian, c.ExtraSize); err != nil {
			return fmt.Errorf("failed to encode format extension size: %w", err)
		}

		buf.Write(c.Extension)
	}

	return writeChunk(w, CIDFmt, buf.Bytes(), c.extra)
}
