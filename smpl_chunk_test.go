package wavrw

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestSmplDecode(t *testing.T) {
	// smpl chunk data exported by BWF MetaEdit.
	wire := hexToBytes(t, `736D706C 6C000000 00000000 00000000 93580000 00000000
		00000000 00000000 00000000 03000000 00000000 01000000 00000000 00000000
		08500000 00000000 00000000 02000000 00000000 00000000 00000850 00000000
		00000000 03000000 00000000 00000000 00000000 00000000 00000000`)

	c := readOneChunk(t, wire)

	smpl, ok := c.(*SmplChunk)
	if !ok {
		t.Fatalf("chunk type = %T, want *SmplChunk", c)
	}

	if smpl.SamplePeriod != 22675 {
		t.Errorf("sample period = %d, want 22675", smpl.SamplePeriod)
	}

	if len(smpl.Loops) != 3 {
		t.Fatalf("got %d loops, want 3", len(smpl.Loops))
	}

	want := SmplLoop{Identifier: 2, Type: 0, Start: 0, End: 1342701568, Fraction: 0, PlayCount: 0}
	if smpl.Loops[1] != want {
		t.Errorf("loop 1 = %+v, want %+v", smpl.Loops[1], want)
	}

	if smpl.Summary() != "3 loops" {
		t.Errorf("summary = %q", smpl.Summary())
	}

	if got := encodeChunk(t, c); string(got) != string(wire) {
		t.Errorf("encode(decode(wire)) != wire")
	}
}

func TestSmplRejectsOversizedSamplerData(t *testing.T) {
	// Seven header fields plus a zero loop count, then a sampler data size
	// claiming almost 4 GiB with no bytes left in the chunk.
	payload := make([]byte, 32)
	payload = binary.LittleEndian.AppendUint32(payload, 0xFFFFFFF0)

	wire := testChunkBytes("smpl", payload)

	cr := newChunkReader(bytes.NewReader(wire), maxStream, 0)

	_, _, err := newDefaultRegistry().read(cr)
	if err == nil {
		t.Fatal("expected decode error for sampler data size past the chunk end")
	}
}
