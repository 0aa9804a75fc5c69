package wavrw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

// ListTypeAdtl is the LIST subtype for the associated data list, which
// attaches labels, notes and text ranges to cue points.
var ListTypeAdtl = FourCC{'a', 'd', 't', 'l'}

var (
	// CIDLabl identifies a label for a cue point.
	CIDLabl = FourCC{'l', 'a', 'b', 'l'}
	// CIDNote identifies comment text for a cue point.
	CIDNote = FourCC{'n', 'o', 't', 'e'}
	// CIDLtxt identifies text associated with a range of data samples.
	CIDLtxt = FourCC{'l', 't', 'x', 't'}
	// CIDFile identifies media embedded from another file format.
	CIDFile = FourCC{'f', 'i', 'l', 'e'}
)

// LablChunk is a label, or title, to associate with a cue point.
type LablChunk struct {
	chunkInfo
	// CuePointName must match a CuePoint.Name from the cue chunk.
	CuePointName uint32
	Text         string
}

func decodeLablChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	c := &LablChunk{}
	if err := cr.ReadLE(&c.CuePointName); err != nil {
		return nil, fmt.Errorf("failed to read cue point name: %w", err)
	}

	text, err := cr.readNullString()
	if err != nil {
		return nil, fmt.Errorf("failed to read label text: %w", err)
	}

	c.Text = text

	return c, nil
}

func (c *LablChunk) Summary() string {
	return fmt.Sprintf("%3d, %s", c.CuePointName, c.Text)
}

func (c *LablChunk) Encode(w io.Writer) error {
	return writeChunk(w, CIDLabl, encodeCueText(c.CuePointName, c.Text), c.extra)
}

// NoteChunk is comment text for a cue point.
type NoteChunk struct {
	chunkInfo
	// CuePointName must match a CuePoint.Name from the cue chunk.
	CuePointName uint32
	Text         string
}

func decodeNoteChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	c := &NoteChunk{}
	if err := cr.ReadLE(&c.CuePointName); err != nil {
		return nil, fmt.Errorf("failed to read cue point name: %w", err)
	}

	text, err := cr.readNullString()
	if err != nil {
		return nil, fmt.Errorf("failed to read note text: %w", err)
	}

	c.Text = text

	return c, nil
}

func (c *NoteChunk) Summary() string {
	return fmt.Sprintf("%3d, %s", c.CuePointName, c.Text)
}

func (c *NoteChunk) Encode(w io.Writer) error {
	return writeChunk(w, CIDNote, encodeCueText(c.CuePointName, c.Text), c.extra)
}

func encodeCueText(name uint32, text string) []byte {
	body := make([]byte, 4, 4+len(text)+1)
	binary.LittleEndian.PutUint32(body, name)
	body = append(body, text...)
	body = append(body, 0)

	return body
}

// LtxtChunk is text associated with a range of data samples.
type LtxtChunk struct {
	chunkInfo
	// CuePointName must match a CuePoint.Name from the cue chunk.
	CuePointName uint32
	SampleLength uint32
	// Purpose of the text, ex: "scrp" for script text, "capt" for
	// close captions, "rgn " for region notes.
	Purpose     FourCC
	CountryCode uint16
	Language    uint16
	Dialect     uint16
	CodePage    uint16
	Text        string
}

func decodeLtxtChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	c := &LtxtChunk{}

	fields := []any{
		&c.CuePointName,
		&c.SampleLength,
		&c.Purpose,
		&c.CountryCode,
		&c.Language,
		&c.Dialect,
		&c.CodePage,
	}
	for _, f := range fields {
		if err := cr.ReadLE(f); err != nil {
			return nil, fmt.Errorf("failed to read labeled text field: %w", err)
		}
	}

	text, err := cr.rest()
	if err != nil {
		return nil, fmt.Errorf("failed to read labeled text: %w", err)
	}

	if !utf8.Valid(text) {
		return nil, fmt.Errorf("labeled text is not valid UTF-8")
	}

	c.Text = string(text)

	return c, nil
}

func (c *LtxtChunk) Summary() string {
	return fmt.Sprintf("%3d, len:%d, purpose:%s, %s",
		c.CuePointName, c.SampleLength, c.Purpose, c.Text)
}

func (c *LtxtChunk) Encode(w io.Writer) error {
	var buf bytes.Buffer

	fields := []any{
		c.CuePointName,
		c.SampleLength,
		c.Purpose,
		c.CountryCode,
		c.Language,
		c.Dialect,
		c.CodePage,
	}
	for _, f := range fields {
		if err := binary.Write(&buf, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("failed to encode labeled text field: %w", err)
		}
	}

	buf.WriteString(c.Text)

	return writeChunk(w, CIDLtxt, buf.Bytes(), c.extra)
}

// FileChunk is information embedded from another file format, ex: an
// RDIB file or ASCII text.
type FileChunk struct {
	chunkInfo
	// CuePointName must match a CuePoint.Name from the cue chunk.
	CuePointName uint32
	MediaType    uint32
	FileData     []byte
}

func decodeFileChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	c := &FileChunk{}
	if err := cr.ReadLE(&c.CuePointName); err != nil {
		return nil, fmt.Errorf("failed to read cue point name: %w", err)
	}

	if err := cr.ReadLE(&c.MediaType); err != nil {
		return nil, fmt.Errorf("failed to read media type: %w", err)
	}

	data, err := cr.rest()
	if err != nil {
		return nil, fmt.Errorf("failed to read file data: %w", err)
	}

	c.FileData = data

	return c, nil
}

func (c *FileChunk) Summary() string {
	var mt FourCC
	binary.LittleEndian.PutUint32(mt[:], c.MediaType)

	return fmt.Sprintf("%3d, media_type:%s, %d bytes", c.CuePointName, mt, len(c.FileData))
}

func (c *FileChunk) Encode(w io.Writer) error {
	body := make([]byte, 8, 8+len(c.FileData))
	binary.LittleEndian.PutUint32(body, c.CuePointName)
	binary.LittleEndian.PutUint32(body[4:], c.MediaType)
	body = append(body, c.FileData...)

	return writeChunk(w, CIDFile, body, c.extra)
}

var adtlMemberRegistry = func() *Registry {
	reg := &Registry{}
	reg.Register(CIDLabl, decodeLablChunk)
	reg.Register(CIDNote, decodeNoteChunk)
	reg.Register(CIDLtxt, decodeLtxtChunk)
	reg.Register(CIDFile, decodeFileChunk)

	return reg
}()

// ListAdtlChunk is a LIST chunk with subtype adtl: a container of cue
// point annotations.
type ListAdtlChunk struct {
	chunkInfo
	Members []Chunk
}

func decodeListAdtlChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	members, err := adtlMemberRegistry.readMembers(cr)
	if err != nil {
		return nil, err
	}

	return &ListAdtlChunk{Members: members}, nil
}

func (c *ListAdtlChunk) Name() string {
	return fmt.Sprintf("%s-%s", c.chunkInfo.Name(), ListTypeAdtl)
}

func (c *ListAdtlChunk) Summary() string {
	return groupedMemberSummary(c.Members)
}

func (c *ListAdtlChunk) Items() []Item {
	items := make([]Item, 0, len(c.Members))
	for _, m := range c.Members {
		items = append(items, Item{m.ID().String(), m.Summary()})
	}

	return items
}

func (c *ListAdtlChunk) Encode(w io.Writer) error {
	body, err := encodeListBody(ListTypeAdtl, c.Members)
	if err != nil {
		return err
	}

	return writeChunk(w, CIDList, body, c.extra)
}

// groupedMemberSummary counts members by ID, ex: "labl(5), ltxt(5),
// note(2)".
func groupedMemberSummary(members []Chunk) string {
	counts := make(map[string]int)
	for _, m := range members {
		counts[m.ID().String()]++
	}

	parts := make([]string, 0, len(counts))
	for id, n := range counts {
		parts = append(parts, fmt.Sprintf("%s(%d)", id, n))
	}

	sort.Strings(parts)

	return strings.Join(parts, ", ")
}
