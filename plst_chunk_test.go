package wavrw

import (
	"bytes"
	"testing"
)

func TestPlstDecode(t *testing.T) {
	wire := hexToBytes(t, "706C7374 10000000 01000000 01000000 02000000 03000000")

	c := readOneChunk(t, wire)

	plst, ok := c.(*PlstChunk)
	if !ok {
		t.Fatalf("chunk type = %T, want *PlstChunk", c)
	}

	if len(plst.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(plst.Segments))
	}

	want := PlstSegment{Name: 1, Length: 2, Loops: 3}
	if plst.Segments[0] != want {
		t.Errorf("segment 0 = %+v, want %+v", plst.Segments[0], want)
	}

	if len(plst.Extra()) != 0 {
		t.Errorf("unexpected trailing bytes: % X", plst.Extra())
	}

	if plst.Summary() != "1 segment" {
		t.Errorf("summary = %q", plst.Summary())
	}

	if got := encodeChunk(t, c); !bytes.Equal(got, wire) {
		t.Errorf("encode(decode(wire)) = % X, want % X", got, wire)
	}
}

func TestPlstRoundTripFromValue(t *testing.T) {
	plst := &PlstChunk{Segments: []PlstSegment{
		{Name: 4, Length: 5, Loops: 6},
		{Name: 7, Length: 8, Loops: 9},
	}}

	after := readOneChunk(t, encodeChunk(t, plst)).(*PlstChunk)

	if len(after.Segments) != 2 || after.Segments[1] != plst.Segments[1] {
		t.Errorf("segments = %+v, want %+v", after.Segments, plst.Segments)
	}

	if after.Summary() != "2 segments" {
		t.Errorf("summary = %q", after.Summary())
	}
}
