package streamio

import (
	"bytes"
	"errors"
	"testing"

	"github.com/claudio382/mctf/internal/plane"
)

func TestWritePlaneReadPlaneRoundTrip(t *testing.T) {
	h, w := 2, 3
	p := plane.Alloc(h, w, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.Set(y, x, int16(y*w+x))
		}
	}

	var buf bytes.Buffer
	if err := WritePlane(&buf, p, h, w); err != nil {
		t.Fatalf("WritePlane: %v", err)
	}

	got := plane.Alloc(h, w, 0)
	if err := ReadPlane(&buf, got, h, w); err != nil {
		t.Fatalf("ReadPlane: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if v := got.At(y, x); v != p.At(y, x) {
				t.Fatalf("(%d,%d) = %d, want %d", y, x, v, p.At(y, x))
			}
		}
	}
}

func TestWritePlaneClips(t *testing.T) {
	p := plane.Alloc(1, 2, 0)
	p.Set(0, 0, -5)
	p.Set(0, 1, 300)

	var buf bytes.Buffer
	if err := WritePlane(&buf, p, 1, 2); err != nil {
		t.Fatalf("WritePlane: %v", err)
	}

	want := []byte{0, 255}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got %v, want %v", buf.Bytes(), want)
	}
}

func TestReadPlaneShortRead(t *testing.T) {
	p := plane.Alloc(2, 2, 0)
	buf := bytes.NewReader([]byte{1, 2})
	err := ReadPlane(buf, p, 2, 2)
	if !errors.Is(err, ErrShortRead) {
		t.Fatalf("ReadPlane error = %v, want ErrShortRead", err)
	}
}
