package wavrw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// CIDCue identifies the cue point table chunk.
var CIDCue = FourCC{'c', 'u', 'e', ' '}

// CuePoint is one position in the waveform data chunk.
type CuePoint struct {
	// Name is the unique identifier of the cue point, referenced by labl,
	// note and ltxt annotations.
	Name         uint32
	Position     uint32
	ChunkID      FourCC
	ChunkStart   uint32
	BlockStart   uint32
	SampleOffset uint32
}

func (p CuePoint) summary() string {
	return fmt.Sprintf("%10d, %s, %10d, %10d, %10d",
		p.Position, p.ChunkID, p.ChunkStart, p.BlockStart, p.SampleOffset)
}

// CueChunk is a series of positions in the waveform data chunk.
type CueChunk struct {
	chunkInfo
	Points []CuePoint
}

func decodeCueChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	var count uint32
	if err := cr.ReadLE(&count); err != nil {
		return nil, fmt.Errorf("failed to read cue point count: %w", err)
	}

	c := &CueChunk{}
	for i := uint32(0); i < count; i++ {
		var p CuePoint
		if err := cr.ReadLE(&p); err != nil {
			return nil, fmt.Errorf("failed to read cue point %d: %w", i, err)
		}

		c.Points = append(c.Points, p)
	}

	return c, nil
}

func (c *CueChunk) Summary() string {
	if len(c.Points) == 1 {
		return "1 cue point"
	}

	return fmt.Sprintf("%d cue points", len(c.Points))
}

func (c *CueChunk) Items() []Item {
	items := make([]Item, 0, len(c.Points))
	for _, p := range c.Points {
		items = append(items, Item{fmt.Sprintf("%d", p.Name), p.summary()})
	}

	return items
}

func (c *CueChunk) Encode(w io.Writer) error {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(c.Points))); err != nil {
		return fmt.Errorf("failed to encode cue point count: %w", err)
	}

	for _, p := range c.Points {
		if err := binary.Write(&buf, binary.LittleEndian, p); err != nil {
			return fmt.Errorf("failed to encode cue point %d: %w", p.Name, err)
		}
	}

	return writeChunk(w, CIDCue, buf.Bytes(), c.extra)
}
