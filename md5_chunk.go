package wavrw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// CIDMd5 identifies the audio data checksum chunk, as specified by
// BWF MetaEdit.
var CIDMd5 = FourCC{'M', 'D', '5', ' '}

// Md5Chunk is a 128 bit MD5 checksum of the audio samples in the data
// chunk, stored little-endian. Lo holds the low 64 bits.
type Md5Chunk struct {
	chunkInfo
	Lo uint64
	Hi uint64
}

func decodeMd5Chunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	c := &Md5Chunk{}
	if err := cr.ReadLE(&c.Lo); err != nil {
		return nil, fmt.Errorf("failed to read checksum: %w", err)
	}

	if err := cr.ReadLE(&c.Hi); err != nil {
		return nil, fmt.Errorf("failed to read checksum: %w", err)
	}

	return c, nil
}

func (c *Md5Chunk) Summary() string {
	if c.Hi == 0 {
		return fmt.Sprintf("0x%X", c.Lo)
	}

	return fmt.Sprintf("0x%X%016X", c.Hi, c.Lo)
}

func (c *Md5Chunk) Items() []Item {
	return []Item{{"md5", c.Summary()}}
}

func (c *Md5Chunk) Encode(w io.Writer) error {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, c.Lo); err != nil {
		return fmt.Errorf("failed to encode checksum: %w", err)
	}

	if err := binary.Write(&buf, binary.LittleEndian, c.Hi); err != nil {
		return fmt.Errorf("failed to encode checksum: %w", err)
	}

	return writeChunk(w, CIDMd5, buf.Bytes(), c.extra)
}
