package wavrw

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestNewParsesEnvelope(t *testing.T) {
	w, err := New(bytes.NewReader(hexToBytes(t, "52494646 5E090000 57415645")))
	if err != nil {
		t.Fatalf("failed to parse envelope: %v", err)
	}

	if w.Size() != 2398 {
		t.Errorf("riff size = %d, want 2398", w.Size())
	}
}

func TestNewRejectsNonRiff(t *testing.T) {
	_, err := New(bytes.NewReader([]byte("FORM\x00\x00\x00\x04AIFF")))
	if !errors.Is(err, ErrNotRIFF) {
		t.Fatalf("err = %v, want ErrNotRIFF", err)
	}
}

func TestNewRejectsNonWaveForm(t *testing.T) {
	_, err := New(bytes.NewReader([]byte("RIFF\x04\x00\x00\x00AVI ")))
	if !errors.Is(err, ErrFormNotWave) {
		t.Fatalf("err = %v, want ErrFormNotWave", err)
	}
}

func TestNewRejectsTruncatedHeader(t *testing.T) {
	_, err := New(bytes.NewReader([]byte("RIFF\x04")))
	if err == nil {
		t.Fatal("expected error for truncated header")
	}
}

func TestWalkProducesChunksInOrder(t *testing.T) {
	fact := make([]byte, 4)
	binary.LittleEndian.PutUint32(fact, 480)

	file := testWavBytes(
		testChunkBytes("fact", fact),
		testChunkBytes("zzzz", []byte{1, 2, 3}),
		testChunkBytes("MD5 ", make([]byte, 16)),
	)

	w, err := New(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}

	chunks, err := w.Chunks()
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}

	wantIDs := []FourCC{CIDFact, {'z', 'z', 'z', 'z'}, CIDMd5}
	for i, c := range chunks {
		if c.ID() != wantIDs[i] {
			t.Errorf("chunk %d id = %q, want %q", i, c.ID(), wantIDs[i])
		}
	}

	if _, err := w.Next(); err != io.EOF {
		t.Errorf("Next after walk = %v, want io.EOF", err)
	}

	if len(w.Warnings()) != 0 {
		t.Errorf("unexpected warnings: %v", w.Warnings())
	}
}

func TestWalkOffsetsAreMonotonic(t *testing.T) {
	file := testWavBytes(
		testChunkBytes("fact", make([]byte, 4)),
		testChunkBytes("aaaa", []byte{1, 2, 3}), // odd size forces a pad byte
		testChunkBytes("bbbb", []byte{1, 2}),
		testChunkBytes("cccc", nil),
	)

	w, err := New(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}

	chunks, err := w.Chunks()
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	prevEnd := int64(12)
	for i, c := range chunks {
		if c.Offset() != prevEnd {
			t.Errorf("chunk %d offset = %d, want %d", i, c.Offset(), prevEnd)
		}

		prevEnd = c.Offset() + 8 + int64(c.Size()) + int64(c.Size()%2)
	}
}

func TestWalkSkipsAudioDataWithoutBuffering(t *testing.T) {
	samples := make([]byte, 64*1024)
	for i := range samples {
		samples[i] = byte(i)
	}

	file := testWavBytes(
		testChunkBytes("data", samples),
		testChunkBytes("fact", make([]byte, 4)),
	)

	w, err := New(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}

	c, err := w.Next()
	if err != nil {
		t.Fatalf("failed to read data chunk: %v", err)
	}

	if _, ok := c.(*DataChunk); !ok {
		t.Fatalf("chunk type = %T, want *DataChunk", c)
	}

	if c.Size() != uint32(len(samples)) {
		t.Errorf("data size = %d, want %d", c.Size(), len(samples))
	}

	// The chunk after the samples must still decode correctly.
	c, err = w.Next()
	if err != nil {
		t.Fatalf("failed to read chunk after data: %v", err)
	}

	if c.ID() != CIDFact {
		t.Errorf("id = %q, want fact", c.ID())
	}
}

func TestWalkHaltsOnMatchedTagDecodeFailure(t *testing.T) {
	// A fact chunk with a valid header but a payload too short for its
	// declared shape.
	file := testWavBytes(
		testChunkBytes("fact", []byte{1, 2}),
		testChunkBytes("zzzz", []byte{3, 4}),
	)

	w, err := New(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}

	_, err = w.Next()

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DecodeError", err)
	}

	if de.ID != CIDFact {
		t.Errorf("decode error id = %q, want fact", de.ID)
	}

	if _, err := w.Next(); err != io.EOF {
		t.Errorf("Next after fatal error = %v, want io.EOF", err)
	}
}

func TestWalkRecoversFromSizeMismatch(t *testing.T) {
	file := testWavBytes(
		testChunkBytes("bugy", make([]byte, 8)),
		testChunkBytes("good", []byte{1, 2, 3, 4}),
	)
	rs := bytes.NewReader(file)

	// A decoder that disturbs the underlying stream position, the way a
	// buggy seek in a payload parser would. The walker must trust the
	// declared size and resynchronize.
	reg := &Registry{}
	reg.Register(FourCC{'b', 'u', 'g', 'y'}, func(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
		if _, err := io.Copy(io.Discard, cr); err != nil {
			return nil, err
		}

		if _, err := rs.Seek(2, io.SeekCurrent); err != nil {
			return nil, err
		}

		return &RawChunk{}, nil
	})

	w, err := NewWithRegistry(rs, reg)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}

	first, err := w.Next()
	if err != nil {
		t.Fatalf("failed to read first chunk: %v", err)
	}

	if first.ID() != (FourCC{'b', 'u', 'g', 'y'}) {
		t.Fatalf("first id = %q", first.ID())
	}

	// The walker must trust the declared size, warn, and resynchronize on
	// the second chunk's real position.
	second, err := w.Next()
	if err != nil {
		t.Fatalf("failed to read second chunk: %v", err)
	}

	if second.ID() != (FourCC{'g', 'o', 'o', 'd'}) {
		t.Errorf("second id = %q, want good", second.ID())
	}

	if second.Offset() != 12+8+8 {
		t.Errorf("second offset = %d, want %d", second.Offset(), 12+8+8)
	}

	if len(w.Warnings()) != 1 {
		t.Fatalf("warnings = %v, want exactly one", w.Warnings())
	}
}

func TestWalkTerminatesAtDeclaredRiffSize(t *testing.T) {
	// Trailing garbage beyond the declared riff size must not be walked.
	file := testWavBytes(testChunkBytes("fact", make([]byte, 4)))
	file = append(file, []byte("garbage beyond the envelope")...)

	w, err := New(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}

	chunks, err := w.Chunks()
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	if len(chunks) != 1 {
		t.Errorf("got %d chunks, want 1", len(chunks))
	}
}
