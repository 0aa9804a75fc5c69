package wavrw

import "testing"

func TestInstDecode(t *testing.T) {
	wire := hexToBytes(t, "696E7374 07000000 0C00000C 0C017F")

	c := readOneChunk(t, wire)

	inst, ok := c.(*InstChunk)
	if !ok {
		t.Fatalf("chunk type = %T, want *InstChunk", c)
	}

	want := InstChunk{
		UnshiftedNote: 12,
		FineTune:      0,
		Gain:          0,
		LowNote:       12,
		HighNote:      12,
		LowVelocity:   1,
		HighVelocity:  127,
	}

	if inst.UnshiftedNote != want.UnshiftedNote || inst.LowNote != want.LowNote ||
		inst.HighNote != want.HighNote || inst.LowVelocity != want.LowVelocity ||
		inst.HighVelocity != want.HighVelocity {
		t.Errorf("inst = %+v", inst)
	}

	if inst.Summary() != "note: 12 (12-12), gain: 0, velocity: 1-127" {
		t.Errorf("summary = %q", inst.Summary())
	}

	// Odd declared size, so the encoded form carries a pad byte the
	// truncated fixture lacks.
	want2 := append(append([]byte{}, wire...), 0)
	if got := encodeChunk(t, c); string(got) != string(want2) {
		t.Errorf("encode(decode(wire)) = % X, want % X", got, want2)
	}
}
