package plane

import "testing"

func TestAllocAtSet(t *testing.T) {
	p := Alloc(4, 4, 2)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p.Set(y, x, int16(y*4+x))
		}
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got, want := p.At(y, x), int16(y*4+x); got != want {
				t.Fatalf("At(%d,%d) = %d, want %d", y, x, got, want)
			}
		}
	}
}

func TestFillBorderEdges(t *testing.T) {
	p := Alloc(3, 3, 2)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			p.Set(y, x, int16(10+y*3+x))
		}
	}
	p.FillBorder()

	for y := 0; y < 3; y++ {
		if got, want := p.At(y, -1), p.At(y, 0); got != want {
			t.Errorf("left halo row %d = %d, want %d", y, got, want)
		}
		if got, want := p.At(y, -2), p.At(y, 0); got != want {
			t.Errorf("left halo row %d col -2 = %d, want %d", y, got, want)
		}
		if got, want := p.At(y, 3), p.At(y, 2); got != want {
			t.Errorf("right halo row %d = %d, want %d", y, got, want)
		}
	}
	for x := 0; x < 3; x++ {
		if got, want := p.At(-1, x), p.At(0, x); got != want {
			t.Errorf("top halo col %d = %d, want %d", x, got, want)
		}
		if got, want := p.At(3, x), p.At(2, x); got != want {
			t.Errorf("bottom halo col %d = %d, want %d", x, got, want)
		}
	}
}

func TestFillBorderCorners(t *testing.T) {
	p := Alloc(2, 2, 1)
	p.Set(0, 0, 7)
	p.Set(0, 1, 8)
	p.Set(1, 0, 9)
	p.Set(1, 1, 10)
	p.FillBorder()

	if got, want := p.At(-1, -1), int16(7); got != want {
		t.Errorf("top-left corner = %d, want %d", got, want)
	}
	if got, want := p.At(-1, 2), int16(8); got != want {
		t.Errorf("top-right corner = %d, want %d", got, want)
	}
	if got, want := p.At(2, -1), int16(9); got != want {
		t.Errorf("bottom-left corner = %d, want %d", got, want)
	}
	if got, want := p.At(2, 2), int16(10); got != want {
		t.Errorf("bottom-right corner = %d, want %d", got, want)
	}
}

func TestClip(t *testing.T) {
	p := Alloc(1, 4, 0)
	p.Set(0, 0, -50)
	p.Set(0, 1, 0)
	p.Set(0, 2, 200)
	p.Set(0, 3, 300)
	p.Clip(0, 255)

	want := []int16{0, 0, 200, 255}
	for x, w := range want {
		if got := p.At(0, x); got != w {
			t.Errorf("At(0,%d) = %d, want %d", x, got, w)
		}
	}
}

func TestRowAddressing(t *testing.T) {
	p := Alloc(2, 3, 1)
	p.Set(0, 0, 1)
	p.Set(0, 1, 2)
	p.Set(0, 2, 3)

	row := p.Row(0)
	if got, want := row[p.Border], int16(1); got != want {
		t.Errorf("Row(0)[Border] = %d, want %d", got, want)
	}
	if got, want := row[p.Border+2], int16(3); got != want {
		t.Errorf("Row(0)[Border+2] = %d, want %d", got, want)
	}
}
