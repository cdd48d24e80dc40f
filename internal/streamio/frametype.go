package streamio

import (
	"fmt"
	"io"

	"github.com/claudio382/mctf/internal/decide"
)

// ReadType reads one ASCII frame-type byte ('I' or 'B') from the type
// stream.
func ReadType(r io.Reader) (decide.Type, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("streamio: reading frame type: %w", ErrShortRead)
	}
	t := decide.Type(b[0])
	if t != decide.TypeI && t != decide.TypeB {
		return 0, fmt.Errorf("streamio: invalid frame type byte %q", b[0])
	}
	return t, nil
}

// WriteType writes one ASCII frame-type byte to the type stream.
func WriteType(w io.Writer, t decide.Type) error {
	_, err := w.Write([]byte{byte(t)})
	if err != nil {
		return fmt.Errorf("streamio: writing frame type: %w", err)
	}
	return nil
}
