package streamio

import (
	"bytes"
	"testing"

	"github.com/claudio382/mctf/internal/mvfield"
)

func TestMotionWriterReaderRoundTrip(t *testing.T) {
	f := mvfield.Alloc(2, 3)
	f.Set(mvfield.Prev, mvfield.Y, 0, 0, -128)
	f.Set(mvfield.Prev, mvfield.X, 0, 1, 127)
	f.Set(mvfield.Next, mvfield.Y, 1, 2, 5)

	var buf bytes.Buffer

	w, err := NewMotionWriter(&buf)
	if err != nil {
		t.Fatalf("NewMotionWriter: %v", err)
	}
	if err := w.WriteField(f); err != nil {
		t.Fatalf("WriteField: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := NewMotionReader(&buf)
	if err != nil {
		t.Fatalf("NewMotionReader: %v", err)
	}
	defer r.Close()

	got := mvfield.Alloc(2, 3)
	if err := r.ReadField(got); err != nil {
		t.Fatalf("ReadField: %v", err)
	}

	if v := got.Get(mvfield.Prev, mvfield.Y, 0, 0); v != -128 {
		t.Errorf("Prev/Y/0/0 = %d, want -128", v)
	}
	if v := got.Get(mvfield.Prev, mvfield.X, 0, 1); v != 127 {
		t.Errorf("Prev/X/0/1 = %d, want 127", v)
	}
	if v := got.Get(mvfield.Next, mvfield.Y, 1, 2); v != 5 {
		t.Errorf("Next/Y/1/2 = %d, want 5", v)
	}
}

func TestMotionReaderShortRead(t *testing.T) {
	r, err := NewMotionReader(bytes.NewReader([]byte{0, 0}))
	if err != nil {
		t.Fatalf("NewMotionReader: %v", err)
	}
	defer r.Close()

	f := mvfield.Alloc(1, 1)
	if err := r.ReadField(f); err == nil {
		t.Fatal("expected error on short motion record")
	}
}
