// Package wavrw reads metadata chunks from RIFF/WAVE files.
//
// The package walks the RIFF container one chunk at a time, decoding every
// chunk it recognizes into a typed value and preserving the raw bytes of
// everything else. Audio sample data is skipped, never buffered.
//
// Typical use:
//
//	w, err := wavrw.New(file)
//	if err != nil { ... }
//	for {
//		chunk, err := w.Next()
//		if errors.Is(err, io.EOF) {
//			break
//		}
//		if err != nil { ... }
//		fmt.Println(chunk.Name(), chunk.Summary())
//	}
//
// Every decoded chunk satisfies the Chunk interface: ID, Size, Offset,
// Name, Summary and Items. Unrecognized chunk IDs decode to a RawChunk
// holding the payload verbatim, so a walk never fails on an unknown chunk.
package wavrw
