package wavrw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// CIDInst identifies the instrument chunk.
var CIDInst = FourCC{'i', 'n', 's', 't'}

// InstChunk holds pitch, volume and velocity for playback by a sampler.
type InstChunk struct {
	chunkInfo
	// UnshiftedNote is the MIDI note of the unshifted pitch, 0 to 127.
	UnshiftedNote uint8
	// FineTune is a pitch adjustment in cents, -50 to 50.
	FineTune int8
	// Gain is the suggested volume adjustment in decibels.
	Gain         int8
	LowNote      uint8
	HighNote     uint8
	LowVelocity  uint8
	HighVelocity uint8
}

func decodeInstChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	c := &InstChunk{}

	fields := []any{
		&c.UnshiftedNote,
		&c.FineTune,
		&c.Gain,
		&c.LowNote,
		&c.HighNote,
		&c.LowVelocity,
		&c.HighVelocity,
	}
	for _, f := range fields {
		if err := cr.ReadLE(f); err != nil {
			return nil, fmt.Errorf("failed to read instrument field: %w", err)
		}
	}

	return c, nil
}

func (c *InstChunk) Summary() string {
	return fmt.Sprintf("note: %d (%d-%d), gain: %d, velocity: %d-%d",
		c.UnshiftedNote, c.LowNote, c.HighNote, c.Gain, c.LowVelocity, c.HighVelocity)
}

func (c *InstChunk) Items() []Item {
	return []Item{
		{"unshifted_note", fmt.Sprintf("%d", c.UnshiftedNote)},
		{"fine_tune", fmt.Sprintf("%d", c.FineTune)},
		{"gain", fmt.Sprintf("%d", c.Gain)},
		{"low_note", fmt.Sprintf("%d", c.LowNote)},
		{"high_note", fmt.Sprintf("%d", c.HighNote)},
		{"low_velocity", fmt.Sprintf("%d", c.LowVelocity)},
		{"high_velocity", fmt.Sprintf("%d", c.HighVelocity)},
	}
}

func (c *InstChunk) Encode(w io.Writer) error {
	var buf bytes.Buffer

	fields := []any{
		c.UnshiftedNote,
		c.FineTune,
		c.Gain,
		c.LowNote,
		c.HighNote,
		c.LowVelocity,
		c.HighVelocity,
	}
	for _, f := range fields {
		if err := binary.Write(&buf, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("failed to encode instrument field: %w", err)
		}
	}

	return writeChunk(w, CIDInst, buf.Bytes(), c.extra)
}
