package wavrw

import (
	"encoding/binary"
	"testing"
)

func pcmFmtPayload(channels uint16, sampleRate uint32, bits uint16) []byte {
	blockAlign := channels * bits / 8
	payload := make([]byte, 16)
	binary.LittleEndian.PutUint16(payload[0:], uint16(FormatPCM))
	binary.LittleEndian.PutUint16(payload[2:], channels)
	binary.LittleEndian.PutUint32(payload[4:], sampleRate)
	binary.LittleEndian.PutUint32(payload[8:], sampleRate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(payload[12:], blockAlign)
	binary.LittleEndian.PutUint16(payload[14:], bits)

	return payload
}

func TestFmtDecodePCM(t *testing.T) {
	wire := testChunkBytes("fmt ", pcmFmtPayload(2, 44100, 16))

	c := readOneChunk(t, wire)

	f, ok := c.(*FmtChunk)
	if !ok {
		t.Fatalf("chunk type = %T, want *FmtChunk", c)
	}

	if f.FormatTag != FormatPCM || f.Channels != 2 || f.SamplesPerSec != 44100 ||
		f.AvgBytesPerSec != 176400 || f.BlockAlign != 4 || f.BitsPerSample != 16 {
		t.Errorf("fmt = %+v", f)
	}

	if f.Summary() != "PCM, 2 chan, 16/44100" {
		t.Errorf("summary = %q", f.Summary())
	}

	if got := encodeChunk(t, c); string(got) != string(wire) {
		t.Errorf("encode(decode(wire)) != wire")
	}
}

func TestFmtDecodeExtended(t *testing.T) {
	// An 18 byte header with a zero length extension must round trip.
	payload := append(pcmFmtPayload(1, 8000, 8), 0, 0)
	payload[0] = byte(FormatMuLaw)
	wire := testChunkBytes("fmt ", payload)

	c := readOneChunk(t, wire)

	f, ok := c.(*FmtChunk)
	if !ok {
		t.Fatalf("chunk type = %T, want *FmtChunk", c)
	}

	if f.FormatTag != FormatMuLaw {
		t.Errorf("format tag = %v", f.FormatTag)
	}

	if f.ExtraSize != 0 || len(f.Extension) != 0 {
		t.Errorf("extension = %d/%v", f.ExtraSize, f.Extension)
	}

	if got := encodeChunk(t, c); string(got) != string(wire) {
		t.Errorf("encode(decode(wire)) != wire")
	}
}

func TestFormatTagNames(t *testing.T) {
	cases := []struct {
		tag  FormatTag
		want string
	}{
		{FormatPCM, "WAVE_FORMAT_PCM"},
		{FormatIEEEFloat, "WAVE_FORMAT_IEEE_FLOAT"},
		{FormatExtensible, "WAVE_FORMAT_EXTENSIBLE"},
		{FormatTag(0x4242), "WAVE_FORMAT 0x4242"},
	}

	for _, c := range cases {
		if got := c.tag.String(); got != c.want {
			t.Errorf("FormatTag(%d) = %q, want %q", uint16(c.tag), got, c.want)
		}
	}
}
