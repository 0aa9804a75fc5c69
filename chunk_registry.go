package wavrw

import (
	"bytes"
	"fmt"
	"io"
)

// CIDList is the chunk ID shared by all container (LIST) chunks.
var CIDList = FourCC{'L', 'I', 'S', 'T'}

// DecodeFunc decodes one chunk payload from a bounded reader. id and size
// come from the already-consumed chunk header; cr exposes exactly size
// payload bytes. For container subtypes the reader is positioned after the
// 4 byte subtype code.
type DecodeFunc func(id FourCC, size uint32, cr *ChunkReader) (Chunk, error)

type registryEntry struct {
	id       FourCC
	listType FourCC
	isList   bool
	decode   DecodeFunc
}

// Registry resolves four character codes to payload decoders.
//
// Dispatch is tag directed: the chunk header names the payload shape and
// the first matching table entry decodes it. A matched entry that fails
// mid-parse is a fatal error for that chunk; an ID with no entry always
// falls back to RawChunk (or the registry's fallback decoder).
type Registry struct {
	entries []registryEntry
	// fallback handles IDs with no table entry. When nil, unrecognized
	// chunks decode to RawChunk. Container member registries override
	// this, ex: LIST-INFO treats any member as a text chunk.
	fallback DecodeFunc
}

// Register adds a decoder for a chunk ID. Entries are consulted in
// registration order, first exact match wins.
func (reg *Registry) Register(id FourCC, fn DecodeFunc) {
	reg.entries = append(reg.entries, registryEntry{id: id, decode: fn})
}

// RegisterList adds a decoder for a LIST chunk with the given subtype.
func (reg *Registry) RegisterList(listType FourCC, fn DecodeFunc) {
	reg.entries = append(reg.entries, registryEntry{id: CIDList, listType: listType, isList: true, decode: fn})
}

func (reg *Registry) lookup(id FourCC, listType FourCC) (DecodeFunc, bool) {
	for _, e := range reg.entries {
		if e.id != id {
			continue
		}

		if e.isList && e.listType != listType {
			continue
		}

		return e.decode, true
	}

	return nil, false
}

// read decodes the next chunk from cr: header, bounded payload, trailing
// bytes and pad byte. It is used both by the walker at the top level and
// recursively for the members of container chunks. The declared size from
// the header is returned alongside the chunk so callers can advance by
// what the wire claims rather than by what the decoder consumed.
func (reg *Registry) read(cr *ChunkReader) (Chunk, uint32, error) {
	offset := cr.pos()

	id, size, err := readHeader(cr)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read chunk header: %w", err)
	}

	body := newChunkReader(cr, int64(size), cr.pos())

	// Containers dispatch on their subtype code as well.
	var listType FourCC

	sniffedList := false
	if id == CIDList && size >= 4 {
		listType, err = body.readFourCC()
		if err != nil {
			return nil, size, fmt.Errorf("failed to read LIST subtype: %w", err)
		}

		sniffedList = true
	}

	dec, ok := reg.lookup(id, listType)
	if !ok && reg.fallback != nil {
		dec = reg.fallback
		ok = true
	}

	if !ok {
		c, err := readRawChunk(id, size, offset, body, sniffedList, listType)
		if err != nil {
			return nil, size, err
		}

		return c, size, skipPad(cr, size)
	}

	c, err := dec(id, size, body)
	if err != nil {
		return nil, size, &DecodeError{ID: id, Offset: offset, Err: err}
	}

	// The bounded reader makes overruns impossible; kept as defense in
	// depth against decoder bugs.
	if body.Consumed() > int64(size) {
		return nil, size, &DecodeError{ID: id, Offset: offset, Err: ErrChunkBounds}
	}

	extra, err := body.rest()
	if err != nil {
		return nil, size, &DecodeError{ID: id, Offset: offset, Err: fmt.Errorf("failed to read trailing bytes: %w", err)}
	}

	if rs, ok := c.(rawSetter); ok {
		rs.setRaw(id, size, offset, extra)
	}

	return c, size, skipPad(cr, size)
}

// readMembers repeatedly invokes the registry against a container's
// bounded payload until it is exhausted. A single leftover byte is
// alignment slop and is left for the container's trailing bytes.
func (reg *Registry) readMembers(cr *ChunkReader) ([]Chunk, error) {
	var members []Chunk

	for cr.Remaining() > 1 {
		c, _, err := reg.read(cr)
		if err != nil {
			return nil, err
		}

		members = append(members, c)
	}

	return members, nil
}

func readRawChunk(id FourCC, size uint32, offset int64, body *ChunkReader, sniffedList bool, listType FourCC) (*RawChunk, error) {
	rest, err := body.rest()
	if err != nil {
		return nil, fmt.Errorf("failed to read %q chunk data: %w", id, err)
	}

	var data []byte
	if sniffedList {
		// Put the sniffed subtype back in front of the payload so the raw
		// bytes round trip unchanged.
		data = append(listType[:4:4], rest...)
	} else {
		data = rest
	}

	c := &RawChunk{Data: data}
	c.setRaw(id, size, offset, nil)

	return c, nil
}

// encodeListBody renders a container payload: the subtype code followed
// by each member's full wire form, member pad bytes included.
func encodeListBody(listType FourCC, members []Chunk) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(listType[:])

	for _, m := range members {
		e, ok := m.(Encodable)
		if !ok {
			return nil, fmt.Errorf("%q member %q cannot be encoded", listType, m.ID())
		}

		if err := e.Encode(&buf); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// skipPad advances past the single alignment byte after an odd sized
// chunk. The pad byte is never part of the declared size.
func skipPad(cr *ChunkReader, size uint32) error {
	if size%2 == 0 {
		return nil
	}

	if _, err := cr.Seek(1, io.SeekCurrent); err != nil {
		return fmt.Errorf("failed to skip pad byte: %w", err)
	}

	return nil
}

// newDefaultRegistry wires up every chunk shape this package knows about.
// Adding a new chunk type means adding one registration here.
func newDefaultRegistry() *Registry {
	reg := &Registry{}

	reg.Register(CIDFmt, decodeFmtChunk)
	reg.Register(CIDData, decodeDataChunk)
	reg.Register(CIDFact, decodeFactChunk)
	reg.Register(CIDCue, decodeCueChunk)
	reg.Register(CIDPlst, decodePlstChunk)
	reg.Register(CIDSmpl, decodeSmplChunk)
	reg.Register(CIDInst, decodeInstChunk)
	reg.Register(CIDBext, decodeBextChunk)
	reg.Register(CIDMd5, decodeMd5Chunk)
	reg.Register(CIDCset, decodeCsetChunk)
	reg.Register(CIDJunk, decodePaddingChunk)
	reg.Register(CIDPad, decodePaddingChunk)
	reg.Register(CIDFllr, decodePaddingChunk)
	reg.Register(CIDIxml, decodeIxmlChunk)
	reg.RegisterList(ListTypeInfo, decodeListInfoChunk)
	reg.RegisterList(ListTypeAdtl, decodeListAdtlChunk)
	reg.RegisterList(ListTypeWavl, decodeListWavlChunk)

	return reg
}
