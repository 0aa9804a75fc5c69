package wavrw

import (
	"fmt"
	"io"
	"strings"
)

// ListTypeInfo is the LIST subtype holding descriptive text chunks:
// IARL, IART, ICMS, ICMT, ICOP, ICRD, ICRP, IDIT, IDPI, IENG, IGNR,
// IKEY, ILGT, IMED, INAM, IPLT, IPRD, ISBJ, ISFT, ISHP, ISMP, ISRC,
// ISRF, ITCH.
var ListTypeInfo = FourCC{'I', 'N', 'F', 'O'}

// InfoTextChunk is one descriptive text record inside a LIST-INFO chunk.
// All INFO members share the same shape: a zero terminated string, so a
// single type covers every tag.
type InfoTextChunk struct {
	chunkInfo
	Text string
}

func decodeInfoText(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	text, err := cr.readNullString()
	if err != nil {
		return nil, fmt.Errorf("failed to read text: %w", err)
	}

	return &InfoTextChunk{Text: text}, nil
}

func (c *InfoTextChunk) Summary() string {
	return c.Text
}

func (c *InfoTextChunk) Items() []Item {
	return []Item{{"text", c.Text}}
}

func (c *InfoTextChunk) Encode(w io.Writer) error {
	body := append([]byte(c.Text), 0)

	return writeChunk(w, c.id, body, c.extra)
}

// Every member of a LIST-INFO decodes as a text record, known tag or not.
var infoMemberRegistry = &Registry{fallback: decodeInfoText}

// ListInfoChunk is a LIST chunk with subtype INFO: a container of
// descriptive text records.
type ListInfoChunk struct {
	chunkInfo
	Members []Chunk
}

func decodeListInfoChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	members, err := infoMemberRegistry.readMembers(cr)
	if err != nil {
		return nil, err
	}

	return &ListInfoChunk{Members: members}, nil
}

func (c *ListInfoChunk) Name() string {
	return fmt.Sprintf("%s-%s", c.chunkInfo.Name(), ListTypeInfo)
}

func (c *ListInfoChunk) Summary() string {
	names := make([]string, 0, len(c.Members))
	for _, m := range c.Members {
		names = append(names, m.ID().String())
	}

	return strings.Join(names, ", ")
}

func (c *ListInfoChunk) Items() []Item {
	items := make([]Item, 0, len(c.Members))
	for _, m := range c.Members {
		value := m.Summary()
		if t, ok := m.(*InfoTextChunk); ok {
			value = t.Text
		}

		items = append(items, Item{m.ID().String(), value})
	}

	return items
}

func (c *ListInfoChunk) Encode(w io.Writer) error {
	body, err := encodeListBody(ListTypeInfo, c.Members)
	if err != nil {
		return err
	}

	return writeChunk(w, CIDList, body, c.extra)
}
