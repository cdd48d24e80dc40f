package streamio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/claudio382/mctf/internal/mvfield"
)

// MotionWriter frames each motion-vector field as a zstd-compressed,
// length-prefixed record rather than a raw byte dump.
type MotionWriter struct {
	w   io.Writer
	enc *zstd.Encoder
}

// NewMotionWriter wraps w for writing motion fields.
func NewMotionWriter(w io.Writer) (*MotionWriter, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		return nil, fmt.Errorf("streamio: creating zstd encoder: %w", err)
	}
	return &MotionWriter{w: w, enc: enc}, nil
}

// Close releases the encoder; it does not close the underlying writer.
func (mw *MotionWriter) Close() error {
	return mw.enc.Close()
}

// WriteField serializes f in [dir][axis][by][bx] order, zstd-compresses it
// and writes a uint32-length-prefixed record.
func (mw *MotionWriter) WriteField(f *mvfield.Field) error {
	raw := serializeField(f)
	compressed := mw.enc.EncodeAll(raw, nil)

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(compressed)))
	if _, err := mw.w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("streamio: writing motion record length: %w", err)
	}
	if _, err := mw.w.Write(compressed); err != nil {
		return fmt.Errorf("streamio: writing motion record: %w", err)
	}
	return nil
}

// MotionReader reads back what MotionWriter wrote.
type MotionReader struct {
	r   io.Reader
	dec *zstd.Decoder
}

// NewMotionReader wraps r for reading motion fields.
func NewMotionReader(r io.Reader) (*MotionReader, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("streamio: creating zstd decoder: %w", err)
	}
	return &MotionReader{r: r, dec: dec}, nil
}

// Close releases the decoder; it does not close the underlying reader.
func (mr *MotionReader) Close() {
	mr.dec.Close()
}

// ReadField reads one motion field record into f.
func (mr *MotionReader) ReadField(f *mvfield.Field) error {
	var lenBuf [4]byte
	if _, err := io.ReadFull(mr.r, lenBuf[:]); err != nil {
		return fmt.Errorf("streamio: reading motion record length: %w", ErrShortRead)
	}
	n := binary.BigEndian.Uint32(lenBuf[:])

	compressed := make([]byte, n)
	if _, err := io.ReadFull(mr.r, compressed); err != nil {
		return fmt.Errorf("streamio: reading motion record: %w", ErrShortRead)
	}

	raw, err := mr.dec.DecodeAll(compressed, nil)
	if err != nil {
		return fmt.Errorf("streamio: decompressing motion record: %w", err)
	}
	return deserializeField(raw, f)
}

func serializeField(f *mvfield.Field) []byte {
	n := f.BlocksInY * f.BlocksInX
	out := make([]byte, 0, 4*n)
	for d := 0; d < 2; d++ {
		for a := 0; a < 2; a++ {
			for by := 0; by < f.BlocksInY; by++ {
				for bx := 0; bx < f.BlocksInX; bx++ {
					out = append(out, int8ToByte(f.Get(mvfield.Direction(d), mvfield.Axis(a), by, bx)))
				}
			}
		}
	}
	return out
}

func deserializeField(raw []byte, f *mvfield.Field) error {
	want := 4 * f.BlocksInY * f.BlocksInX
	if len(raw) != want {
		return fmt.Errorf("streamio: motion record has %d bytes, want %d", len(raw), want)
	}
	i := 0
	for d := 0; d < 2; d++ {
		for a := 0; a < 2; a++ {
			for by := 0; by < f.BlocksInY; by++ {
				for bx := 0; bx < f.BlocksInX; bx++ {
					f.Set(mvfield.Direction(d), mvfield.Axis(a), by, bx, byteToInt8(raw[i]))
					i++
				}
			}
		}
	}
	return nil
}

func int8ToByte(v int) byte {
	if v < -128 {
		v = -128
	} else if v > 127 {
		v = 127
	}
	return byte(int8(v))
}

func byteToInt8(b byte) int {
	return int(int8(b))
}
