package wavrw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// CIDPlst identifies the playlist chunk.
var CIDPlst = FourCC{'p', 'l', 's', 't'}

// PlstSegment is one play segment: which cue point to start from, how many
// samples to play, and how many times to repeat.
type PlstSegment struct {
	// Name references a cue point by its CuePoint.Name.
	Name   uint32
	Length uint32
	Loops  uint32
}

// PlstChunk is the play order for a series of cue points.
type PlstChunk struct {
	chunkInfo
	Segments []PlstSegment
}

func decodePlstChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	var count uint32
	if err := cr.ReadLE(&count); err != nil {
		return nil, fmt.Errorf("failed to read playlist segment count: %w", err)
	}

	c := &PlstChunk{}
	for i := uint32(0); i < count; i++ {
		var s PlstSegment
		if err := cr.ReadLE(&s); err != nil {
			return nil, fmt.Errorf("failed to read playlist segment %d: %w", i, err)
		}

		c.Segments = append(c.Segments, s)
	}

	return c, nil
}

func (c *PlstChunk) Summary() string {
	if len(c.Segments) == 1 {
		return "1 segment"
	}

	return fmt.Sprintf("%d segments", len(c.Segments))
}

func (c *PlstChunk) Items() []Item {
	items := make([]Item, 0, len(c.Segments))
	for _, s := range c.Segments {
		items = append(items, Item{
			fmt.Sprintf("%d", s.Name),
			fmt.Sprintf("length: %d, loops: %d", s.Length, s.Loops),
		})
	}

	return items
}

func (c *PlstChunk) Encode(w io.Writer) error {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(c.Segments))); err != nil {
		return fmt.Errorf("failed to encode playlist segment count: %w", err)
	}

	for _, s := range c.Segments {
		if err := binary.Write(&buf, binary.LittleEndian, s); err != nil {
			return fmt.Errorf("failed to encode playlist segment %d: %w", s.Name, err)
		}
	}

	return writeChunk(w, CIDPlst, buf.Bytes(), c.extra)
}
