// Package streamio implements the codec's I/O adapters: the raw planar
// YUV 4:2:0 plane reader/writer, the ASCII frame-type stream, and the
// motion-vector stream. File-format internals are intentionally thin,
// but each adapter still saturates at the valid pixel/residue range on
// every write rather than letting overflow propagate.
package streamio

import (
	"errors"
	"fmt"
	"io"

	"github.com/claudio382/mctf/internal/plane"
)

// ErrShortRead is returned when a stream ends before a full plane, motion
// field or type byte has been read.
var ErrShortRead = errors.New("streamio: short read")

// ReadPlane reads h*w raw 8-bit samples into the top-left of p, row-major.
func ReadPlane(r io.Reader, p *plane.Plane, h, w int) error {
	buf := make([]byte, w)
	for y := 0; y < h; y++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("streamio: reading row %d: %w", y, ErrShortRead)
			}
			return fmt.Errorf("streamio: reading row %d: %w", y, err)
		}
		for x := 0; x < w; x++ {
			p.Set(y, x, int16(buf[x]))
		}
	}
	return nil
}

// WritePlane writes the inner h*w region of p as raw 8-bit samples,
// clipping every sample to [0, 255].
func WritePlane(w io.Writer, p *plane.Plane, h, width int) error {
	buf := make([]byte, width)
	for y := 0; y < h; y++ {
		for x := 0; x < width; x++ {
			v := p.At(y, x)
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			buf[x] = byte(v)
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("streamio: writing row %d: %w", y, err)
		}
	}
	return nil
}
