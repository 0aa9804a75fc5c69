package wavrw

import (
	"io"
	"strings"
)

// Item is a single (field, value) pair from a chunk's Items listing.
type Item struct {
	Name  string
	Value string
}

// Chunk is the read-side view of one decoded RIFF chunk.
//
// Values are constructed by the walker/registry and are read-only after
// construction.
type Chunk interface {
	// ID returns the four character code of the chunk.
	ID() FourCC
	// Size returns the declared chunk size in bytes. It never includes the
	// 8 byte header or the trailing pad byte.
	Size() uint32
	// Offset returns the absolute byte offset of the chunk header in the
	// stream it was read from, or -1 when unknown.
	Offset() int64
	// Name returns a display name for the chunk, usually the trimmed ID.
	// Container chunks include their subtype, ex: "LIST-INFO".
	Name() string
	// Summary returns a short one line description of the contents.
	Summary() string
	// Items returns the chunk contents as (field, value) pairs. Each call
	// returns a fresh slice. May be empty.
	Items() []Item
}

// Encodable is implemented by chunks that can be written back to a stream.
// Encode emits the full wire form: header, payload, trailing bytes and the
// pad byte, with the size recomputed from the encoded payload.
type Encodable interface {
	Chunk
	Encode(w io.Writer) error
}

// chunkInfo carries the bookkeeping shared by every decoded chunk: ID,
// declared size, stream offset and any payload bytes left over after the
// typed fields were decoded.
type chunkInfo struct {
	id     FourCC
	size   uint32
	offset int64
	extra  []byte
}

func (ci *chunkInfo) ID() FourCC    { return ci.id }
func (ci *chunkInfo) Size() uint32  { return ci.size }
func (ci *chunkInfo) Offset() int64 { return ci.offset }

// Extra returns payload bytes past the decoded fields, pad byte excluded.
func (ci *chunkInfo) Extra() []byte { return ci.extra }

func (ci *chunkInfo) Name() string {
	return strings.TrimSpace(ci.id.String())
}

func (ci *chunkInfo) Items() []Item { return nil }

// setRaw is called once by the registry after the payload decoder ran.
func (ci *chunkInfo) setRaw(id FourCC, size uint32, offset int64, extra []byte) {
	ci.id = id
	ci.size = size
	ci.offset = offset
	ci.extra = extra
}

type rawSetter interface {
	setRaw(id FourCC, size uint32, offset int64, extra []byte)
}

// RawChunk preserves an unrecognized chunk verbatim for round trip
// fidelity. Decoding to RawChunk is the fallback for every four character
// code without a registry entry and is never an error.
type RawChunk struct {
	chunkInfo
	Data []byte
}

func (c *RawChunk) Summary() string {
	return "..."
}

func (c *RawChunk) Encode(w io.Writer) error {
	return writeChunk(w, c.id, c.Data, c.extra)
}
