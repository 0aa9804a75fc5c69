package wavrw

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// CIDIxml identifies the iXML production metadata chunk, based on
// http://www.gallery.co.uk/ixml/
var CIDIxml = FourCC{'i', 'X', 'M', 'L'}

// IxmlChunk holds production workflow metadata as an XML document. The
// raw bytes are kept for round trips; Items exposes the document as
// element path / text pairs.
type IxmlChunk struct {
	chunkInfo
	Raw    []byte
	fields []Item
}

func decodeIxmlChunk(_ FourCC, _ uint32, cr *ChunkReader) (Chunk, error) {
	raw, err := cr.rest()
	if err != nil {
		return nil, fmt.Errorf("failed to read XML payload: %w", err)
	}

	fields, err := parseXMLItems(bytes.TrimRight(raw, "\x00"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML payload: %w", err)
	}

	return &IxmlChunk{Raw: raw, fields: fields}, nil
}

// parseXMLItems flattens an XML document into (element path, text) pairs,
// one per element with non-whitespace character data.
func parseXMLItems(data []byte) ([]Item, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		items []Item
		path  []string
		text  strings.Builder
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			path = append(path, t.Name.Local)
			text.Reset()
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if s := strings.TrimSpace(text.String()); s != "" {
				items = append(items, Item{strings.Join(path, "/"), s})
			}

			text.Reset()

			if len(path) > 0 {
				path = path[:len(path)-1]
			}
		}
	}

	return items, nil
}

func (c *IxmlChunk) Summary() string {
	return fmt.Sprintf("%d bytes of data", len(c.Raw))
}

func (c *IxmlChunk) Items() []Item {
	items := make([]Item, len(c.fields))
	copy(items, c.fields)

	return items
}

func (c *IxmlChunk) Encode(w io.Writer) error {
	return writeChunk(w, CIDIxml, c.Raw, c.extra)
}
