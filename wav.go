package wavrw

import (
	"fmt"
	"io"
)

var (
	// CIDRiff identifies the outer RIFF container.
	CIDRiff = FourCC{'R', 'I', 'F', 'F'}
	// CIDWave is the RIFF form type for WAVE files.
	CIDWave = FourCC{'W', 'A', 'V', 'E'}
)

// maxStream bounds the top level chunk reader. Individual chunks are
// bounded by their declared size; the walk itself is bounded by the RIFF
// size field, not by a reader limit.
const maxStream = int64(1) << 62

// Warning records a recoverable structural problem noticed during a walk,
// ex: a chunk whose declared size does not match the bytes that follow.
type Warning struct {
	Offset int64
	Text   string
}

func (w Warning) String() string {
	return fmt.Sprintf("offset %d: %s", w.Offset, w.Text)
}

// Wave walks the chunks of one RIFF/WAVE stream.
//
// A Wave is not safe for concurrent use. The underlying stream position
// belongs to the Wave between New and the final Next; interleaving other
// reads on the same stream will confuse the walk.
type Wave struct {
	rs       io.ReadSeeker
	reg      *Registry
	riffSize uint32
	// next is the expected absolute offset of the next chunk header.
	next     int64
	finished bool
	warnings []Warning
}

// New validates the RIFF/WAVE envelope at the current position of rs and
// returns a walker positioned at the first chunk.
//
// The stream must start with "RIFF", a little-endian uint32 size and the
// form type "WAVE". Anything else is ErrNotRIFF or ErrFormNotWave.
func New(rs io.ReadSeeker) (*Wave, error) {
	return NewWithRegistry(rs, newDefaultRegistry())
}

// NewWithRegistry is New with a caller supplied chunk registry, for
// callers that register their own chunk decoders.
func NewWithRegistry(rs io.ReadSeeker, reg *Registry) (*Wave, error) {
	if rs == nil {
		return nil, fmt.Errorf("reader is nil")
	}

	id, size, err := readHeader(rs)
	if err != nil {
		return nil, fmt.Errorf("failed to read RIFF header: %w", err)
	}

	if id != CIDRiff {
		return nil, fmt.Errorf("%w: found %q", ErrNotRIFF, id)
	}

	var form FourCC
	if _, err := io.ReadFull(rs, form[:]); err != nil {
		return nil, fmt.Errorf("failed to read RIFF form type: %w", err)
	}

	if form != CIDWave {
		return nil, fmt.Errorf("%w: found %q", ErrFormNotWave, form)
	}

	return &Wave{rs: rs, reg: reg, riffSize: size, next: 12}, nil
}

// Size returns the declared RIFF size: everything after the first 8 bytes,
// form type included.
func (w *Wave) Size() uint32 { return w.riffSize }

// Warnings returns the structural problems noticed so far. The slice grows
// as the walk progresses.
func (w *Wave) Warnings() []Warning { return w.warnings }

// end returns the absolute offset one past the last byte the RIFF size
// field claims.
func (w *Wave) end() int64 { return 8 + int64(w.riffSize) }

// Next returns the next chunk in the stream, or io.EOF once the walk has
// covered the declared RIFF size.
//
// Unrecognized chunk IDs come back as *RawChunk, never as an error. An
// error is returned when the stream itself fails or when a recognized
// chunk's payload does not decode; both end the walk.
func (w *Wave) Next() (Chunk, error) {
	if w.finished {
		return nil, io.EOF
	}

	if w.next >= w.end() {
		w.finished = true
		return nil, io.EOF
	}

	pos, err := w.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		w.finished = true
		return nil, fmt.Errorf("failed to query stream position: %w", err)
	}

	// Trust the declared size over the stream position. When the previous
	// chunk's payload did not line up with its size field, note it and jump
	// to where the size field says the next header lives.
	if pos != w.next {
		w.warnings = append(w.warnings, Warning{
			Offset: pos,
			Text:   fmt.Sprintf("chunk size mismatch, stream at %d but next header expected at %d", pos, w.next),
		})

		if _, err := w.rs.Seek(w.next, io.SeekStart); err != nil {
			w.finished = true
			return nil, fmt.Errorf("failed to seek to next chunk at %d: %w", w.next, err)
		}
	}

	cr := newChunkReader(w.rs, maxStream, w.next)

	c, size, err := w.reg.read(cr)
	if err != nil {
		w.finished = true
		return nil, err
	}

	advance := int64(8) + int64(size)
	if size%2 == 1 {
		advance++
	}

	w.next += advance

	return c, nil
}

// Chunks walks the rest of the stream and returns every remaining chunk.
func (w *Wave) Chunks() ([]Chunk, error) {
	var chunks []Chunk

	for {
		c, err := w.Next()
		if err == io.EOF {
			return chunks, nil
		}

		if err != nil {
			return chunks, err
		}

		chunks = append(chunks, c)
	}
}
