package wavrw

import (
	"fmt"
	"io"
)

// CIDData identifies the audio sample chunk.
var CIDData = FourCC{'d', 'a', 't', 'a'}

// DataChunk marks the position and size of the audio samples. The samples
// themselves are skipped, never read into memory; use Offset and Size to
// locate them in the stream.
type DataChunk struct {
	chunkInfo
}

func decodeDataChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	// Seek past the samples. With a seekable stream underneath, no sample
	// bytes are copied.
	if _, err := cr.Seek(cr.Remaining(), io.SeekCurrent); err != nil {
		return nil, fmt.Errorf("failed to skip audio data: %w", err)
	}

	return &DataChunk{}, nil
}

func (c *DataChunk) Summary() string {
	return "audio data"
}
