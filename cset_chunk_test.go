package wavrw

import "testing"

// No real files with CSET chunks were available, so the fixture is built
// from the 1991 RIFF specification.
func TestCsetDecode(t *testing.T) {
	wire := hexToBytes(t, "43534554 08000000 01000200 0C000300")

	c := readOneChunk(t, wire)

	cset, ok := c.(*CsetChunk)
	if !ok {
		t.Fatalf("chunk type = %T, want *CsetChunk", c)
	}

	if cset.CodePage != 1 || cset.CountryCode != 2 || cset.Language != 12 || cset.Dialect != 3 {
		t.Errorf("cset = %+v", cset)
	}

	if cset.Summary() != "code_page: (1), Canada(2), French(12), Canadian(3)" {
		t.Errorf("summary = %q", cset.Summary())
	}

	if got := encodeChunk(t, c); string(got) != string(wire) {
		t.Errorf("encode(decode(wire)) != wire")
	}
}

func TestCsetUnknownCodes(t *testing.T) {
	wire := hexToBytes(t, "43534554 08000000 0000FFFF 63006300")

	c := readOneChunk(t, wire)

	cset := c.(*CsetChunk)
	if cset.Summary() != "code_page: (0), Unknown (0xffff), Unknown(99), Unknown(99)" {
		t.Errorf("summary = %q", cset.Summary())
	}
}
