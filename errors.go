package wavrw

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRIFF is returned when the outer container tag is not "RIFF".
	ErrNotRIFF = errors.New("not a RIFF file")
	// ErrFormNotWave is returned when the RIFF form type is not "WAVE".
	ErrFormNotWave = errors.New("RIFF form type is not WAVE")
	// ErrChunkBounds indicates a chunk decoder consumed more bytes than the
	// declared chunk size. The bounded reader should make this impossible,
	// the check is kept as defense in depth.
	ErrChunkBounds = errors.New("chunk decoder read past declared size")
)

// DecodeError reports a payload that did not match the shape its chunk ID
// promised. It is fatal for the walk: a matched ID is a contract, so the
// walker does not guess its way past the broken chunk.
type DecodeError struct {
	ID     FourCC
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %q chunk at offset %d: %v", e.ID, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
