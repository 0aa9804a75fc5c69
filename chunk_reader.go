package wavrw

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ChunkReader presents one chunk payload as a hard-limited sub-stream.
//
// Payload decoders receive a ChunkReader and can never observe bytes past
// the declared chunk size: Read returns io.EOF at the boundary no matter
// how much data follows in the underlying stream. The reader also tracks
// how many bytes were consumed, which the registry uses to capture
// trailing bytes and to double check the size accounting after a decoder
// ran.
type ChunkReader struct {
	r         io.Reader
	remaining int64
	consumed  int64
	// off is the absolute offset of the next byte to be read, or -1 when
	// the position in the underlying stream is unknown.
	off int64
}

func newChunkReader(r io.Reader, limit int64, off int64) *ChunkReader {
	return &ChunkReader{r: r, remaining: limit, off: off}
}

func (cr *ChunkReader) Read(p []byte) (int, error) {
	if cr.remaining <= 0 {
		return 0, io.EOF
	}

	if int64(len(p)) > cr.remaining {
		p = p[:cr.remaining]
	}

	n, err := cr.r.Read(p)
	cr.remaining -= int64(n)
	cr.consumed += int64(n)

	if cr.off >= 0 {
		cr.off += int64(n)
	}

	return n, err
}

// Remaining returns how many bytes may still be read.
func (cr *ChunkReader) Remaining() int64 { return cr.remaining }

// Consumed returns how many bytes have been read so far.
func (cr *ChunkReader) Consumed() int64 { return cr.consumed }

// pos returns the absolute offset of the next byte, or -1 when unknown.
func (cr *ChunkReader) pos() int64 { return cr.off }

// Seek supports forward relative seeks only, which is all chunk decoders
// need: skipping payload bytes (audio data) without buffering them. When
// the underlying reader can seek, no bytes are copied at all; seeks chain
// through nested ChunkReaders down to the real stream.
func (cr *ChunkReader) Seek(offset int64, whence int) (int64, error) {
	if whence != io.SeekCurrent || offset < 0 {
		return 0, fmt.Errorf("chunk reader: only forward relative seeks are supported")
	}

	if offset > cr.remaining {
		offset = cr.remaining
	}

	if offset == 0 {
		return cr.consumed, nil
	}

	if s, ok := cr.r.(io.Seeker); ok {
		if _, err := s.Seek(offset, io.SeekCurrent); err != nil {
			return cr.consumed, fmt.Errorf("chunk reader seek: %w", err)
		}
	} else {
		if _, err := io.CopyN(io.Discard, cr.r, offset); err != nil {
			return cr.consumed, fmt.Errorf("chunk reader skip: %w", err)
		}
	}

	cr.remaining -= offset
	cr.consumed += offset

	if cr.off >= 0 {
		cr.off += offset
	}

	return cr.consumed, nil
}

// ReadLE decodes v from the payload as little-endian.
func (cr *ChunkReader) ReadLE(v any) error {
	return binary.Read(cr, binary.LittleEndian, v)
}

func (cr *ChunkReader) readFourCC() (FourCC, error) {
	var fc FourCC
	if _, err := io.ReadFull(cr, fc[:]); err != nil {
		return fc, err
	}

	return fc, nil
}

// rest reads all remaining payload bytes. A nil slice is returned when no
// bytes remain.
func (cr *ChunkReader) rest() ([]byte, error) {
	if cr.remaining <= 0 {
		return nil, nil
	}

	buf := make([]byte, cr.remaining)

	n, err := io.ReadFull(cr, buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}

// readNullString reads bytes up to a terminating zero byte or the end of
// the payload, whichever comes first. The terminator is consumed but not
// included in the result.
func (cr *ChunkReader) readNullString() (string, error) {
	var out []byte

	var b [1]byte
	for {
		_, err := cr.Read(b[:])
		if err == io.EOF {
			return string(out), nil
		}

		if err != nil {
			return "", err
		}

		if b[0] == 0 {
			return string(out), nil
		}

		out = append(out, b[0])
	}
}

// readHeader reads the 8 byte chunk header: raw four character code
// followed by the declared size as a little-endian uint32.
func readHeader(r io.Reader) (FourCC, uint32, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return FourCC{}, 0, err
	}

	var id FourCC
	copy(id[:], buf[:4])

	return id, binary.LittleEndian.Uint32(buf[4:]), nil
}

// writeChunk writes one complete chunk: header, payload body, trailing
// bytes and the pad byte when the total payload length is odd. The size
// field is recomputed from the bytes actually written, never taken from a
// stored value.
func writeChunk(w io.Writer, id FourCC, body, extra []byte) error {
	size := uint32(len(body) + len(extra))

	var hdr [8]byte
	copy(hdr[:4], id[:])
	binary.LittleEndian.PutUint32(hdr[4:], size)

	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("failed to write %q chunk header: %w", id, err)
	}

	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write %q chunk body: %w", id, err)
	}

	if len(extra) > 0 {
		if _, err := w.Write(extra); err != nil {
			return fmt.Errorf("failed to write %q chunk trailing bytes: %w", id, err)
		}
	}

	if size%2 == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("failed to write %q chunk pad byte: %w", id, err)
		}
	}

	return nil
}
