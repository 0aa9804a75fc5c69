package wavrw

import (
	"fmt"
	"io"
)

var (
	// CIDJunk identifies padding or outdated information.
	CIDJunk = FourCC{'J', 'U', 'N', 'K'}
	// CIDPad identifies padding, usually to align a following chunk.
	CIDPad = FourCC{'P', 'A', 'D', ' '}
	// CIDFllr is a non-standard padding chunk written by some tools.
	CIDFllr = FourCC{'F', 'L', 'L', 'R'}
)

// PaddingChunk covers the three padding chunk kinds: JUNK, PAD and FLLR.
// The payload bytes carry no meaning but are preserved for round trips.
type PaddingChunk struct {
	chunkInfo
	Data []byte
}

func decodePaddingChunk(id FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	data, err := cr.rest()
	if err != nil {
		return nil, fmt.Errorf("failed to read %q padding: %w", id, err)
	}

	return &PaddingChunk{Data: data}, nil
}

func (c *PaddingChunk) Summary() string {
	return "padding, filler or outdated information"
}

func (c *PaddingChunk) Encode(w io.Writer) error {
	return writeChunk(w, c.id, c.Data, c.extra)
}
