package wavrw

import "testing"

func TestMd5Decode(t *testing.T) {
	wire := hexToBytes(t, "4D443520 10000000 83F4C759 5E3F9608 378F3B39 D4BEA537")

	c := readOneChunk(t, wire)

	md5, ok := c.(*Md5Chunk)
	if !ok {
		t.Fatalf("chunk type = %T, want *Md5Chunk", c)
	}

	if md5.Lo != 0x08963F5E59C7F483 || md5.Hi != 0x37A5BED4393B8F37 {
		t.Errorf("checksum = %016X %016X", md5.Hi, md5.Lo)
	}

	if md5.Summary() != "0x37A5BED4393B8F3708963F5E59C7F483" {
		t.Errorf("summary = %q", md5.Summary())
	}

	if got := encodeChunk(t, c); string(got) != string(wire) {
		t.Errorf("encode(decode(wire)) = % X, want % X", got, wire)
	}
}
