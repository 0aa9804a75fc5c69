package wavrw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// CIDFact identifies the compressed sample count chunk.
var CIDFact = FourCC{'f', 'a', 'c', 't'}

// FactChunk holds the number of samples in the data chunk. Required for
// compressed formats, optional for PCM.
type FactChunk struct {
	chunkInfo
	Samples uint32
}

func decodeFactChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	c := &FactChunk{}
	if err := cr.ReadLE(&c.Samples); err != nil {
		return nil, fmt.Errorf("failed to read sample count: %w", err)
	}

	return c, nil
}

func (c *FactChunk) Summary() string {
	return fmt.Sprintf("%d samples", c.Samples)
}

func (c *FactChunk) Items() []Item {
	return []Item{{"samples", fmt.Sprintf("%d", c.Samples)}}
}

func (c *FactChunk) Encode(w io.Writer) error {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, c.Samples); err != nil {
		return fmt.Errorf("failed to encode sample count: %w", err)
	}

	return writeChunk(w, CIDFact, buf.Bytes(), c.extra)
}
