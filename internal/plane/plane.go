// Package plane implements the bordered 2D sample buffer the rest of the
// MCTF core shares: pictures, blocks and DWT scratch are all a Plane with a
// different border size.
package plane

import "fmt"

// Plane is a dense H x W grid of 16-bit working samples surrounded by a
// symmetric border (halo) of Border samples on every side. Negative
// coordinates and coordinates >= the inner dimension, down to -Border and up
// to dim+Border-1, address the halo.
type Plane struct {
	H, W   int
	Border int
	stride int
	data   []int16
}

// Alloc allocates a Plane of inner size h x w with the given border.
func Alloc(h, w, border int) *Plane {
	stride := w + 2*border
	return &Plane{
		H:      h,
		W:      w,
		Border: border,
		stride: stride,
		data:   make([]int16, (h+2*border)*stride),
	}
}

func (p *Plane) index(y, x int) int {
	return (y+p.Border)*p.stride + (x + p.Border)
}

// At returns the sample at (y, x); y and x may range over [-Border, dim+Border).
func (p *Plane) At(y, x int) int16 {
	return p.data[p.index(y, x)]
}

// Set stores a sample at (y, x); y and x may range over [-Border, dim+Border).
func (p *Plane) Set(y, x int, v int16) {
	p.data[p.index(y, x)] = v
}

// Row returns the inner-plus-border row y as a slice addressable with an
// offset of Border (Row(y)[Border+x] == At(y, x)).
func (p *Plane) Row(y int) []int16 {
	start := (y + p.Border) * p.stride
	return p.data[start : start+p.stride]
}

// FillBorder replicates the nearest edge sample into the whole halo,
// corners included.
func (p *Plane) FillBorder() {
	b := p.Border
	if b == 0 {
		return
	}

	for y := 0; y < p.H; y++ {
		left := p.At(y, 0)
		right := p.At(y, p.W-1)
		for x := 1; x <= b; x++ {
			p.Set(y, -x, left)
			p.Set(y, p.W-1+x, right)
		}
	}

	for x := -b; x < p.W+b; x++ {
		top := p.At(0, x)
		bottom := p.At(p.H-1, x)
		for y := 1; y <= b; y++ {
			p.Set(-y, x, top)
			p.Set(p.H-1+y, x, bottom)
		}
	}
}

// Clip saturates every inner sample to [lo, hi].
func (p *Plane) Clip(lo, hi int16) {
	for y := 0; y < p.H; y++ {
		row := p.Row(y)
		for x := p.Border; x < p.Border+p.W; x++ {
			if v := row[x]; v < lo {
				row[x] = lo
			} else if v > hi {
				row[x] = hi
			}
		}
	}
}

func (p *Plane) String() string {
	return fmt.Sprintf("plane(%dx%d border=%d)", p.H, p.W, p.Border)
}
