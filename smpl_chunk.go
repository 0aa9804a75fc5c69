package wavrw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// CIDSmpl identifies the sampler information chunk.
var CIDSmpl = FourCC{'s', 'm', 'p', 'l'}

// SmplLoop is one loop definition from a smpl chunk.
type SmplLoop struct {
	// Identifier may correspond with a CuePoint.Name.
	Identifier uint32
	// Type is 0 forward, 1 alternating, 2 backward; 32 and up are
	// manufacturer defined.
	Type     uint32
	Start    uint32
	End      uint32
	Fraction uint32
	// PlayCount of 0 means an infinite sustain loop.
	PlayCount uint32
}

// SmplChunk holds the information needed to use the file as a sampling
// instrument.
type SmplChunk struct {
	chunkInfo
	Manufacturer      uint32
	Product           uint32
	SamplePeriod      uint32
	MIDIUnityNote     uint32
	MIDIPitchFraction uint32
	SMPTEFormat       uint32
	SMPTEOffset       uint32
	Loops             []SmplLoop
	SamplerData       []byte
}

func decodeSmplChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	c := &SmplChunk{}

	var loopCount, samplerDataSize uint32

	fields := []any{
		&c.Manufacturer,
		&c.Product,
		&c.SamplePeriod,
		&c.MIDIUnityNote,
		&c.MIDIPitchFraction,
		&c.SMPTEFormat,
		&c.SMPTEOffset,
		&loopCount,
		&samplerDataSize,
	}
	for _, f := range fields {
		if err := cr.ReadLE(f); err != nil {
			return nil, fmt.Errorf("failed to read sampler field: %w", err)
		}
	}

	for i := uint32(0); i < loopCount; i++ {
		var l SmplLoop
		if err := cr.ReadLE(&l); err != nil {
			return nil, fmt.Errorf("failed to read sample loop %d: %w", i, err)
		}

		c.Loops = append(c.Loops, l)
	}

	if samplerDataSize > 0 {
		// Checked before allocating: the declared size is untrusted input
		// and may claim up to 4 GiB.
		if int64(samplerDataSize) > cr.Remaining() {
			return nil, fmt.Errorf("sampler data size %d exceeds the %d bytes left in the chunk", samplerDataSize, cr.Remaining())
		}

		data := make([]byte, samplerDataSize)
		if _, err := io.ReadFull(cr, data); err != nil {
			return nil, fmt.Errorf("failed to read sampler data: %w", err)
		}

		c.SamplerData = data
	}

	return c, nil
}

func (c *SmplChunk) Summary() string {
	if len(c.Loops) == 1 {
		return "1 loop"
	}

	return fmt.Sprintf("%d loops", len(c.Loops))
}

func (c *SmplChunk) Items() []Item {
	items := []Item{
		{"manufacturer", fmt.Sprintf("%d", c.Manufacturer)},
		{"product", fmt.Sprintf("%d", c.Product)},
		{"sample_period", fmt.Sprintf("%d", c.SamplePeriod)},
		{"midi_unity_note", fmt.Sprintf("%d", c.MIDIUnityNote)},
		{"midi_pitch_fraction", fmt.Sprintf("%d", c.MIDIPitchFraction)},
		{"smpte_format", fmt.Sprintf("%d", c.SMPTEFormat)},
		{"smpte_offset", fmt.Sprintf("%d", c.SMPTEOffset)},
		{"sample_loop_count", fmt.Sprintf("%d", len(c.Loops))},
		{"sampler_data_size", fmt.Sprintf("%d", len(c.SamplerData))},
	}

	items = append(items, Item{
		"loop identifier",
		fmt.Sprintf("%5s, %10s, %10s, %10s, %5s", "type", "start", "end", "fraction", "play"),
	})
	for _, l := range c.Loops {
		items = append(items, Item{
			fmt.Sprintf("%d", l.Identifier),
			fmt.Sprintf("%5d, %10d, %10d, %10d, %5d", l.Type, l.Start, l.End, l.Fraction, l.PlayCount),
		})
	}

	return items
}

func (c *SmplChunk) Encode(w io.Writer) error {
	var buf bytes.Buffer

	fields := []any{
		c.Manufacturer,
		c.Product,
		c.SamplePeriod,
		c.MIDIUnityNote,
		c.MIDIPitchFraction,
		c.SMPTEFormat,
		c.SMPTEOffset,
		uint32(len(c.Loops)),
		uint32(len(c.SamplerData)),
	}
	for _, f := range fields {
		if err := binary.Write(&buf, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("failed to encode sampler field: %w", err)
		}
	}

	for _, l := range c.Loops {
		if err := binary.Write(&buf, binary.LittleEndian, l); err != nil {
			return fmt.Errorf("failed to encode sample loop %d: %w", l.Identifier, err)
		}
	}

	buf.Write(c.SamplerData)

	return writeChunk(w, CIDSmpl, buf.Bytes(), c.extra)
}
