package wavrw

import "testing"

func TestListInfoDecodeWithOddSizedMembers(t *testing.T) {
	// LIST-INFO with two odd length members (0x0D and 0x15). Mishandling
	// the interior pad bytes breaks the second member's header.
	wire := hexToBytes(t,
		"4C495354 38000000 494E464F 49534654 0D000000 42574620 4D657461 45646974 00004943 4D541500 00006265 78742063 68756E6B 20746573 74206669 6C6500")

	c := readOneChunk(t, wire)

	list, ok := c.(*ListInfoChunk)
	if !ok {
		t.Fatalf("chunk type = %T, want *ListInfoChunk", c)
	}

	if list.Name() != "LIST-INFO" {
		t.Errorf("name = %q, want LIST-INFO", list.Name())
	}

	if len(list.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(list.Members))
	}

	isft, ok := list.Members[0].(*InfoTextChunk)
	if !ok {
		t.Fatalf("member 0 type = %T, want *InfoTextChunk", list.Members[0])
	}

	if isft.ID() != (FourCC{'I', 'S', 'F', 'T'}) || isft.Text != "BWF MetaEdit" {
		t.Errorf("member 0 = %q %q", isft.ID(), isft.Text)
	}

	if isft.Size() != 0x0D {
		t.Errorf("member 0 size = %d, want 13", isft.Size())
	}

	icmt, ok := list.Members[1].(*InfoTextChunk)
	if !ok {
		t.Fatalf("member 1 type = %T, want *InfoTextChunk", list.Members[1])
	}

	if icmt.ID() != (FourCC{'I', 'C', 'M', 'T'}) || icmt.Text != "bext chunk test file" {
		t.Errorf("member 1 = %q %q", icmt.ID(), icmt.Text)
	}

	if list.Summary() != "ISFT, ICMT" {
		t.Errorf("summary = %q", list.Summary())
	}

	items := list.Items()
	if len(items) != 2 || items[0].Value != "BWF MetaEdit" || items[1].Value != "bext chunk test file" {
		t.Errorf("items = %v", items)
	}
}

func TestListInfoMemberOffsets(t *testing.T) {
	wire := hexToBytes(t,
		"4C495354 38000000 494E464F 49534654 0D000000 42574620 4D657461 45646974 00004943 4D541500 00006265 78742063 68756E6B 20746573 74206669 6C6500")

	list := readOneChunk(t, wire).(*ListInfoChunk)

	// Members carry absolute offsets: first at 12 (8 header + 4 subtype),
	// second after 8 + 13 + 1 pad.
	if got := list.Members[0].Offset(); got != 12 {
		t.Errorf("member 0 offset = %d, want 12", got)
	}

	if got := list.Members[1].Offset(); got != 34 {
		t.Errorf("member 1 offset = %d, want 34", got)
	}
}

func TestListInfoRoundTrip(t *testing.T) {
	wire := hexToBytes(t,
		"4C495354 38000000 494E464F 49534654 0D000000 42574620 4D657461 45646974 00004943 4D541500 00006265 78742063 68756E6B 20746573 74206669 6C6500")

	c := readOneChunk(t, wire)

	if got := encodeChunk(t, c); string(got) != string(wire) {
		t.Errorf("encode(decode(wire)) = % X, want % X", got, wire)
	}
}
