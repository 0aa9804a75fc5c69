package wavrw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// ListTypeWavl is the LIST subtype holding interleaved audio and silence
// chunks. Very rare.
var ListTypeWavl = FourCC{'w', 'a', 'v', 'l'}

// CIDSlnt identifies a run of silence inside a LIST-wavl chunk.
var CIDSlnt = FourCC{'s', 'l', 'n', 't'}

// SlntChunk represents silence, not necessarily repeated zero samples.
type SlntChunk struct {
	chunkInfo
	Samples uint32
}

func decodeSlntChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	c := &SlntChunk{}
	if err := cr.ReadLE(&c.Samples); err != nil {
		return nil, fmt.Errorf("failed to read silence sample count: %w", err)
	}

	return c, nil
}

func (c *SlntChunk) Summary() string {
	return fmt.Sprintf("%d samples", c.Samples)
}

func (c *SlntChunk) Encode(w io.Writer) error {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, c.Samples); err != nil {
		return fmt.Errorf("failed to encode silence sample count: %w", err)
	}

	return writeChunk(w, CIDSlnt, buf.Bytes(), c.extra)
}

var wavlMemberRegistry = func() *Registry {
	reg := &Registry{}
	reg.Register(CIDData, decodeDataChunk)
	reg.Register(CIDSlnt, decodeSlntChunk)

	return reg
}()

// ListWavlChunk is a LIST chunk with subtype wavl: alternating audio data
// and silence chunks.
type ListWavlChunk struct {
	chunkInfo
	Members []Chunk
}

func decodeListWavlChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	members, err := wavlMemberRegistry.readMembers(cr)
	if err != nil {
		return nil, err
	}

	return &ListWavlChunk{Members: members}, nil
}

func (c *ListWavlChunk) Name() string {
	return fmt.Sprintf("%s-%s", c.chunkInfo.Name(), ListTypeWavl)
}

func (c *ListWavlChunk) Summary() string {
	return groupedMemberSummary(c.Members)
}

func (c *ListWavlChunk) Items() []Item {
	items := make([]Item, 0, len(c.Members))
	for _, m := range c.Members {
		items = append(items, Item{m.ID().String(), m.Summary()})
	}

	return items
}

// Encode fails when the list holds a data member, since audio samples are
// skipped during decode and cannot be written back.
func (c *ListWavlChunk) Encode(w io.Writer) error {
	body, err := encodeListBody(ListTypeWavl, c.Members)
	if err != nil {
		return err
	}

	return writeChunk(w, CIDList, body, c.extra)
}
