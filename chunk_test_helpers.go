package wavrw

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"
)

// hexToBytes decodes a hex string, ignoring whitespace, for wire fixtures
// captured from real files.
func hexToBytes(t *testing.T, s string) []byte {
	t.Helper()

	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}

		return r
	}, s)

	data, err := hex.DecodeString(clean)
	if err != nil {
		t.Fatalf("invalid hex fixture: %v", err)
	}

	return data
}

// testChunkBytes builds one wire chunk: header, payload and pad byte.
func testChunkBytes(id string, payload []byte) []byte {
	buf := make([]byte, 8, 8+len(payload)+1)
	copy(buf, id)
	binary.LittleEndian.PutUint32(buf[4:], uint32(len(payload)))
	buf = append(buf, payload...)

	if len(payload)%2 == 1 {
		buf = append(buf, 0)
	}

	return buf
}

// testWavBytes wraps chunks in a RIFF/WAVE envelope with a computed size.
func testWavBytes(chunks ...[]byte) []byte {
	var body bytes.Buffer
	for _, c := range chunks {
		body.Write(c)
	}

	buf := make([]byte, 12, 12+body.Len())
	copy(buf, "RIFF")
	binary.LittleEndian.PutUint32(buf[4:], uint32(4+body.Len()))
	copy(buf[8:], "WAVE")

	return append(buf, body.Bytes()...)
}

// readOneChunk decodes a single chunk from raw wire bytes using the
// default registry.
func readOneChunk(t *testing.T, data []byte) Chunk {
	t.Helper()

	cr := newChunkReader(bytes.NewReader(data), maxStream, 0)

	c, _, err := newDefaultRegistry().read(cr)
	if err != nil {
		t.Fatalf("failed to decode chunk: %v", err)
	}

	return c
}

// encodeChunk renders a chunk back to wire bytes.
func encodeChunk(t *testing.T, c Chunk) []byte {
	t.Helper()

	e, ok := c.(Encodable)
	if !ok {
		t.Fatalf("chunk %q is not encodable", c.ID())
	}

	var buf bytes.Buffer
	if err := e.Encode(&buf); err != nil {
		t.Fatalf("failed to encode chunk %q: %v", c.ID(), err)
	}

	return buf.Bytes()
}
